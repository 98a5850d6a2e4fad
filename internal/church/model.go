package church

import (
	"time"

	"github.com/daniilsolovey/church-portal/internal/db"
)

type Event struct {
	db.Event
}

type Announcement struct {
	db.Announcement
}

type ProgramItem struct {
	db.ProgramItem
}

type Program struct {
	db.ServiceProgram
	// Items are in display order; nil when not loaded.
	Items []ProgramItem
}

const (
	EntryTypeEvent   = "event"
	EntryTypeProgram = "program"
)

// CalendarEntry is an event or a program placed on the calendar.
type CalendarEntry struct {
	Type        string
	ID          int
	Title       string
	Date        time.Time
	Description *string
	Location    *string
	Theme       *string
	ImageURL    *string
}

// CalendarFilter limits calendar entries; zero fields match everything.
type CalendarFilter struct {
	Year  int
	Month int
	Type  string
}

// Summary is the data of the public home page.
type Summary struct {
	UpcomingProgram     *Program
	RecentAnnouncements []Announcement
	UpcomingEvents      []Event
}
