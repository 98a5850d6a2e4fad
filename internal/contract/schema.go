package contract

import "time"

type Event struct {
	ID          int       `json:"id" validate:"gt=0"`
	Title       string    `json:"title" validate:"notblank"`
	Description string    `json:"description" validate:"notblank"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"notblank"`
	ImageURL    *string   `json:"imageUrl"`
}

type Announcement struct {
	ID      int       `json:"id" validate:"gt=0"`
	Title   string    `json:"title" validate:"notblank"`
	Content string    `json:"content" validate:"notblank"`
	Date    time.Time `json:"date" validate:"required"`
}

type Program struct {
	ID       int       `json:"id" validate:"gt=0"`
	Title    string    `json:"title" validate:"notblank"`
	Date     time.Time `json:"date" validate:"required"`
	Theme    *string   `json:"theme"`
	ImageURL *string   `json:"imageUrl"`
}

type ProgramItem struct {
	ID          int     `json:"id" validate:"gt=0"`
	ProgramID   int     `json:"programId" validate:"gt=0"`
	Title       string  `json:"title" validate:"notblank"`
	Description *string `json:"description"`
	Presenter   *string `json:"presenter"`
	Time        *string `json:"time"`
	Order       int     `json:"order"`
}

// ProgramWithItems is a program with its items in display order.
type ProgramWithItems struct {
	Program
	Items []ProgramItem `json:"items" validate:"dive"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"notblank,max=200"`
	Description string    `json:"description" validate:"notblank"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"notblank,max=200"`
	ImageURL    *string   `json:"imageUrl,omitempty" validate:"omitempty,max=2048"`
}

type UpdateEventRequest struct {
	Title       *string          `json:"title,omitempty" validate:"omitempty,notblank,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitempty,notblank"`
	Date        *time.Time       `json:"date,omitempty"`
	Location    *string          `json:"location,omitempty" validate:"omitempty,notblank,max=200"`
	ImageURL    Nullable[string] `json:"imageUrl,omitzero"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"notblank,max=200"`
	Content string `json:"content" validate:"notblank"`
	// Date defaults to the creation time.
	Date *time.Time `json:"date,omitempty"`
}

type UpdateAnnouncementRequest struct {
	Title   *string    `json:"title,omitempty" validate:"omitempty,notblank,max=200"`
	Content *string    `json:"content,omitempty" validate:"omitempty,notblank"`
	Date    *time.Time `json:"date,omitempty"`
}

type CreateProgramRequest struct {
	Title    string    `json:"title" validate:"notblank,max=200"`
	Date     time.Time `json:"date" validate:"required"`
	Theme    *string   `json:"theme,omitempty" validate:"omitempty,max=200"`
	ImageURL *string   `json:"imageUrl,omitempty" validate:"omitempty,max=2048"`
}

type UpdateProgramRequest struct {
	Title    *string          `json:"title,omitempty" validate:"omitempty,notblank,max=200"`
	Date     *time.Time       `json:"date,omitempty"`
	Theme    Nullable[string] `json:"theme,omitzero"`
	ImageURL Nullable[string] `json:"imageUrl,omitzero"`
}

type CreateProgramItemRequest struct {
	Title       string  `json:"title" validate:"notblank,max=200"`
	Description *string `json:"description,omitempty"`
	Presenter   *string `json:"presenter,omitempty" validate:"omitempty,max=200"`
	Time        *string `json:"time,omitempty" validate:"omitempty,max=32"`
	// Order defaults to the position after the last item.
	Order *int `json:"order,omitempty" validate:"omitempty,min=0"`
}

type UpdateProgramItemRequest struct {
	ProgramID   *int             `json:"programId,omitempty" validate:"omitempty,gt=0"`
	Title       *string          `json:"title,omitempty" validate:"omitempty,notblank,max=200"`
	Description Nullable[string] `json:"description,omitzero"`
	Presenter   Nullable[string] `json:"presenter,omitzero"`
	Time        Nullable[string] `json:"time,omitzero"`
	Order       *int             `json:"order,omitempty" validate:"omitempty,min=0"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CheckResponse struct {
	Authenticated bool `json:"authenticated"`
}

type UploadResponse struct {
	ImageURL string `json:"imageUrl" validate:"required,startswith=/uploads/"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

const (
	EntryTypeEvent   = "event"
	EntryTypeProgram = "program"
)

// CalendarQuery filters calendar entries. Zero values mean no filter.
type CalendarQuery struct {
	Year  int    `json:"year" urlstruct:"year" validate:"omitempty,min=1900,max=9999"`
	Month int    `json:"month" urlstruct:"month" validate:"omitempty,min=1,max=12"`
	Type  string `json:"type" urlstruct:"type" validate:"omitempty,oneof=event program"`
}

// CalendarEntry is an event or a program on the merged calendar.
type CalendarEntry struct {
	Type        string    `json:"type" validate:"oneof=event program"`
	ID          int       `json:"id" validate:"gt=0"`
	Title       string    `json:"title" validate:"notblank"`
	Date        time.Time `json:"date" validate:"required"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Theme       *string   `json:"theme,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
}

type HomeSummary struct {
	UpcomingProgram     *ProgramWithItems `json:"upcomingProgram"`
	RecentAnnouncements []Announcement    `json:"recentAnnouncements" validate:"dive"`
	UpcomingEvents      []Event           `json:"upcomingEvents" validate:"dive"`
}
