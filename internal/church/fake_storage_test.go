package church

import (
	"context"
	"errors"
	"sort"

	"github.com/daniilsolovey/church-portal/internal/db"
)

// fakeStorage is an in-memory Storage with the same ordering rules as db.Repository.
type fakeStorage struct {
	nextID        int
	events        map[int]db.Event
	announcements map[int]db.Announcement
	programs      map[int]db.ServiceProgram
	items         map[int]db.ProgramItem

	err error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		events:        map[int]db.Event{},
		announcements: map[int]db.Announcement{},
		programs:      map[int]db.ServiceProgram{},
		items:         map[int]db.ProgramItem{},
	}
}

func (s *fakeStorage) id() int {
	s.nextID++
	return s.nextID
}

func (s *fakeStorage) Events(context.Context) ([]db.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	list := values(s.events)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	return list, nil
}

func (s *fakeStorage) EventByID(_ context.Context, id int) (*db.Event, error) {
	if e, ok := s.events[id]; ok {
		return &e, nil
	}
	return nil, s.err
}

func (s *fakeStorage) AddEvent(_ context.Context, e *db.Event) (*db.Event, error) {
	e.ID = s.id()
	s.events[e.ID] = *e
	return e, nil
}

func (s *fakeStorage) UpdateEvent(_ context.Context, e *db.Event) error {
	if _, ok := s.events[e.ID]; !ok {
		return db.ErrNotFound
	}
	s.events[e.ID] = *e
	return nil
}

func (s *fakeStorage) DeleteEvent(_ context.Context, id int) error {
	delete(s.events, id)
	return nil
}

func (s *fakeStorage) Announcements(context.Context) ([]db.Announcement, error) {
	list := values(s.announcements)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (s *fakeStorage) AnnouncementByID(_ context.Context, id int) (*db.Announcement, error) {
	if a, ok := s.announcements[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (s *fakeStorage) AddAnnouncement(_ context.Context, a *db.Announcement) (*db.Announcement, error) {
	a.ID = s.id()
	s.announcements[a.ID] = *a
	return a, nil
}

func (s *fakeStorage) UpdateAnnouncement(_ context.Context, a *db.Announcement) error {
	if _, ok := s.announcements[a.ID]; !ok {
		return db.ErrNotFound
	}
	s.announcements[a.ID] = *a
	return nil
}

func (s *fakeStorage) DeleteAnnouncement(_ context.Context, id int) error {
	delete(s.announcements, id)
	return nil
}

func (s *fakeStorage) Programs(context.Context) ([]db.ServiceProgram, error) {
	list := values(s.programs)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (s *fakeStorage) ProgramsCount(context.Context) (int, error) {
	return len(s.programs), s.err
}

func (s *fakeStorage) ProgramByID(_ context.Context, id int) (*db.ServiceProgram, error) {
	if p, ok := s.programs[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *fakeStorage) AddProgram(_ context.Context, p *db.ServiceProgram) (*db.ServiceProgram, error) {
	p.ID = s.id()
	s.programs[p.ID] = *p
	return p, nil
}

func (s *fakeStorage) UpdateProgram(_ context.Context, p *db.ServiceProgram) error {
	if _, ok := s.programs[p.ID]; !ok {
		return db.ErrNotFound
	}
	s.programs[p.ID] = *p
	return nil
}

func (s *fakeStorage) DeleteProgram(_ context.Context, id int) error {
	for itemID, item := range s.items {
		if item.ProgramID == id {
			delete(s.items, itemID)
		}
	}
	delete(s.programs, id)
	return nil
}

func (s *fakeStorage) ProgramItems(_ context.Context, programID int) ([]db.ProgramItem, error) {
	var list []db.ProgramItem
	for _, item := range s.items {
		if item.ProgramID == programID {
			list = append(list, item)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Order != list[j].Order {
			return list[i].Order < list[j].Order
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *fakeStorage) ProgramItemByID(_ context.Context, id int) (*db.ProgramItem, error) {
	if item, ok := s.items[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (s *fakeStorage) MaxItemOrder(_ context.Context, programID int) (int, error) {
	maxOrder := 0
	for _, item := range s.items {
		if item.ProgramID == programID && item.Order > maxOrder {
			maxOrder = item.Order
		}
	}
	return maxOrder, nil
}

func (s *fakeStorage) AddProgramItem(_ context.Context, item *db.ProgramItem) (*db.ProgramItem, error) {
	if _, ok := s.programs[item.ProgramID]; !ok {
		return nil, errors.New("foreign key violation")
	}
	item.ID = s.id()
	s.items[item.ID] = *item
	return item, nil
}

func (s *fakeStorage) UpdateProgramItem(_ context.Context, item *db.ProgramItem) error {
	if _, ok := s.items[item.ID]; !ok {
		return db.ErrNotFound
	}
	s.items[item.ID] = *item
	return nil
}

func (s *fakeStorage) DeleteProgramItem(_ context.Context, id int) error {
	delete(s.items, id)
	return nil
}

func values[T any](m map[int]T) []T {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	list := make([]T, 0, len(m))
	for _, k := range keys {
		list = append(list, m[k])
	}
	return list
}
