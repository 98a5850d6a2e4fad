package rest

import (
	"github.com/daniilsolovey/church-portal/internal/church"
	"github.com/daniilsolovey/church-portal/internal/contract"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewEvent(e church.Event) contract.Event {
	return contract.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		ImageURL:    e.ImageURL,
	}
}

func NewAnnouncement(a church.Announcement) contract.Announcement {
	return contract.Announcement{
		ID:      a.ID,
		Title:   a.Title,
		Content: a.Content,
		Date:    a.Date,
	}
}

func NewProgram(p church.Program) contract.Program {
	return contract.Program{
		ID:       p.ID,
		Title:    p.Title,
		Date:     p.Date,
		Theme:    p.Theme,
		ImageURL: p.ImageURL,
	}
}

func NewProgramItem(i church.ProgramItem) contract.ProgramItem {
	return contract.ProgramItem{
		ID:          i.ID,
		ProgramID:   i.ProgramID,
		Title:       i.Title,
		Description: i.Description,
		Presenter:   i.Presenter,
		Time:        i.Time,
		Order:       i.Order,
	}
}

func NewProgramWithItems(p church.Program) contract.ProgramWithItems {
	return contract.ProgramWithItems{
		Program: NewProgram(p),
		Items:   Map(p.Items, NewProgramItem),
	}
}

func NewCalendarEntry(e church.CalendarEntry) contract.CalendarEntry {
	return contract.CalendarEntry{
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

func NewHomeSummary(s church.Summary) contract.HomeSummary {
	summary := contract.HomeSummary{
		RecentAnnouncements: Map(s.RecentAnnouncements, NewAnnouncement),
		UpcomingEvents:      Map(s.UpcomingEvents, NewEvent),
	}

	if s.UpcomingProgram != nil {
		program := NewProgramWithItems(*s.UpcomingProgram)
		summary.UpcomingProgram = &program
	}

	return summary
}

func newCalendarFilter(q contract.CalendarQuery) church.CalendarFilter {
	return church.CalendarFilter{
		Year:  q.Year,
		Month: q.Month,
		Type:  q.Type,
	}
}
