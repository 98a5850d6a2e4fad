package rpc

import (
	"time"

	"github.com/daniilsolovey/church-portal/internal/church"
)

type CalendarFilter struct {
	//year optional year filter
	Year *int `json:"year,omitempty"`
	//month optional month filter, 1-12
	Month *int `json:"month,omitempty"`
	//type optional entry type: event or program
	Type *string `json:"type,omitempty"`
}

func (f CalendarFilter) ToModel() church.CalendarFilter {
	var filter church.CalendarFilter
	if f.Year != nil {
		filter.Year = *f.Year
	}
	if f.Month != nil {
		filter.Month = *f.Month
	}
	if f.Type != nil {
		filter.Type = *f.Type
	}

	return filter
}

type ProgramRequest struct {
	ID int `json:"id"`
}

type Event struct {
	EventID     int       `json:"eventId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	ImageURL    *string   `json:"imageUrl"`
}

type Announcement struct {
	AnnouncementID int       `json:"announcementId"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Date           time.Time `json:"date"`
}

type ProgramItem struct {
	ProgramItemID int     `json:"programItemId"`
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	Presenter     *string `json:"presenter"`
	Time          *string `json:"time"`
	Order         int     `json:"order"`
}

type ProgramSummary struct {
	ProgramID int       `json:"programId"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Theme     *string   `json:"theme"`
	ImageURL  *string   `json:"imageUrl"`
}

type Program struct {
	ProgramSummary
	Items []ProgramItem `json:"items"`
}

type CalendarEntry struct {
	Type        string    `json:"type"`
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Theme       *string   `json:"theme,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}

type Summary struct {
	UpcomingProgram     *Program       `json:"upcomingProgram"`
	RecentAnnouncements []Announcement `json:"recentAnnouncements"`
	UpcomingEvents      []Event        `json:"upcomingEvents"`
}
