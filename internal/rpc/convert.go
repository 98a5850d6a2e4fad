package rpc

import "github.com/daniilsolovey/church-portal/internal/church"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewEvent(e church.Event) Event {
	return Event{
		EventID:     e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
	}
}

func NewAnnouncement(a church.Announcement) Announcement {
	return Announcement{
		AnnouncementID: a.ID,
		Title:          a.Title,
		Content:        a.Content,
		Date:           a.Date,
	}
}

func NewProgramItem(i church.ProgramItem) ProgramItem {
	return ProgramItem{
		ProgramItemID: i.ID,
		Title:         i.Title,
		Description:   i.Description,
		Presenter:     i.Presenter,
		Time:          i.Time,
		Order:         i.Order,
	}
}

func NewProgramSummary(p church.Program) ProgramSummary {
	return ProgramSummary{
		ProgramID: p.ID,
		Title:     p.Title,
		Date:      p.Date,
		Theme:     p.Theme,
		ImageURL:  p.ImageURL,
	}
}

func NewProgram(p church.Program) Program {
	return Program{
		ProgramSummary: NewProgramSummary(p),
		Items:          Map(p.Items, NewProgramItem),
	}
}

func NewCalendarEntry(e church.CalendarEntry) CalendarEntry {
	return CalendarEntry{
		Type:        e.Type,
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Description: e.Description,
		Location:    e.Location,
		Theme:       e.Theme,
		ImageURL:    e.ImageURL,
	}
}

func NewSummary(s church.Summary) Summary {
	summary := Summary{
		RecentAnnouncements: Map(s.RecentAnnouncements, NewAnnouncement),
		UpcomingEvents:      Map(s.UpcomingEvents, NewEvent),
	}

	if s.UpcomingProgram != nil {
		program := NewProgram(*s.UpcomingProgram)
		summary.UpcomingProgram = &program
	}

	return summary
}
