package church

import "github.com/daniilsolovey/church-portal/internal/db"

func Map[From, To any](list []From, converter func(*From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(&list[i])
	}
	return result
}

func NewEvent(e *db.Event) Event {
	return Event{Event: *e}
}

func NewEvents(list []db.Event) []Event {
	return Map(list, NewEvent)
}

func NewAnnouncement(a *db.Announcement) Announcement {
	return Announcement{Announcement: *a}
}

func NewAnnouncements(list []db.Announcement) []Announcement {
	return Map(list, NewAnnouncement)
}

func NewProgram(p *db.ServiceProgram) Program {
	return Program{ServiceProgram: *p}
}

func NewPrograms(list []db.ServiceProgram) []Program {
	return Map(list, NewProgram)
}

func NewProgramItem(i *db.ProgramItem) ProgramItem {
	return ProgramItem{ProgramItem: *i}
}

func NewProgramItems(list []db.ProgramItem) []ProgramItem {
	return Map(list, NewProgramItem)
}

func newEventEntry(e *Event) CalendarEntry {
	return CalendarEntry{
		Type:        EntryTypeEvent,
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Description: &e.Description,
		Location:    &e.Location,
		ImageURL:    e.ImageURL,
	}
}

func newProgramEntry(p *Program) CalendarEntry {
	return CalendarEntry{
		Type:     EntryTypeProgram,
		ID:       p.ID,
		Title:    p.Title,
		Date:     p.Date,
		Theme:    p.Theme,
		ImageURL: p.ImageURL,
	}
}
