package church

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/daniilsolovey/church-portal/internal/db"
)

var (
	ErrNotFound = errors.New("not found")

	ErrEventNotFound        = fmt.Errorf("event %w", ErrNotFound)
	ErrAnnouncementNotFound = fmt.Errorf("announcement %w", ErrNotFound)
	ErrProgramNotFound      = fmt.Errorf("program %w", ErrNotFound)
	ErrProgramItemNotFound  = fmt.Errorf("program item %w", ErrNotFound)
)

// Storage is the persistence used by Manager; *db.Repository implements it.
type Storage interface {
	Events(ctx context.Context) ([]db.Event, error)
	EventByID(ctx context.Context, id int) (*db.Event, error)
	AddEvent(ctx context.Context, event *db.Event) (*db.Event, error)
	UpdateEvent(ctx context.Context, event *db.Event) error
	DeleteEvent(ctx context.Context, id int) error

	Announcements(ctx context.Context) ([]db.Announcement, error)
	AnnouncementByID(ctx context.Context, id int) (*db.Announcement, error)
	AddAnnouncement(ctx context.Context, announcement *db.Announcement) (*db.Announcement, error)
	UpdateAnnouncement(ctx context.Context, announcement *db.Announcement) error
	DeleteAnnouncement(ctx context.Context, id int) error

	Programs(ctx context.Context) ([]db.ServiceProgram, error)
	ProgramsCount(ctx context.Context) (int, error)
	ProgramByID(ctx context.Context, id int) (*db.ServiceProgram, error)
	AddProgram(ctx context.Context, program *db.ServiceProgram) (*db.ServiceProgram, error)
	UpdateProgram(ctx context.Context, program *db.ServiceProgram) error
	DeleteProgram(ctx context.Context, id int) error

	ProgramItems(ctx context.Context, programID int) ([]db.ProgramItem, error)
	ProgramItemByID(ctx context.Context, id int) (*db.ProgramItem, error)
	MaxItemOrder(ctx context.Context, programID int) (int, error)
	AddProgramItem(ctx context.Context, item *db.ProgramItem) (*db.ProgramItem, error)
	UpdateProgramItem(ctx context.Context, item *db.ProgramItem) error
	DeleteProgramItem(ctx context.Context, id int) error
}

type Manager struct {
	db  Storage
	now func() time.Time
}

func NewManager(storage Storage) *Manager {
	return &Manager{
		db:  storage,
		now: time.Now,
	}
}

func (m *Manager) Events(ctx context.Context) ([]Event, error) {
	list, err := m.db.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get events: %w", err)
	}

	return NewEvents(list), nil
}

// EventByID returns nil when the event does not exist.
func (m *Manager) EventByID(ctx context.Context, id int) (*Event, error) {
	dbEvent, err := m.db.EventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get event by id: %w", err)
	} else if dbEvent == nil {
		return nil, nil
	}

	event := NewEvent(dbEvent)
	return &event, nil
}

func (m *Manager) CreateEvent(ctx context.Context, req contract.CreateEventRequest) (*Event, error) {
	dbEvent, err := m.db.AddEvent(ctx, &db.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("db add event: %w", err)
	}

	event := NewEvent(dbEvent)
	return &event, nil
}

// UpdateEvent changes only the fields present in req.
func (m *Manager) UpdateEvent(ctx context.Context, id int, req contract.UpdateEventRequest) (*Event, error) {
	dbEvent, err := m.db.EventByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get event by id: %w", err)
	} else if dbEvent == nil {
		return nil, ErrEventNotFound
	}

	setValue(&dbEvent.Title, req.Title)
	setValue(&dbEvent.Description, req.Description)
	setValue(&dbEvent.Date, req.Date)
	setValue(&dbEvent.Location, req.Location)
	req.ImageURL.Apply(&dbEvent.ImageURL)

	if err := m.db.UpdateEvent(ctx, dbEvent); errors.Is(err, db.ErrNotFound) {
		return nil, ErrEventNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db update event: %w", err)
	}

	event := NewEvent(dbEvent)
	return &event, nil
}

func (m *Manager) DeleteEvent(ctx context.Context, id int) error {
	if err := m.db.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("db delete event: %w", err)
	}

	return nil
}

func (m *Manager) Announcements(ctx context.Context) ([]Announcement, error) {
	list, err := m.db.Announcements(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get announcements: %w", err)
	}

	return NewAnnouncements(list), nil
}

func (m *Manager) CreateAnnouncement(ctx context.Context, req contract.CreateAnnouncementRequest) (*Announcement, error) {
	date := m.now()
	if req.Date != nil {
		date = *req.Date
	}

	dbAnnouncement, err := m.db.AddAnnouncement(ctx, &db.Announcement{
		Title:   req.Title,
		Content: req.Content,
		Date:    date,
	})
	if err != nil {
		return nil, fmt.Errorf("db add announcement: %w", err)
	}

	announcement := NewAnnouncement(dbAnnouncement)
	return &announcement, nil
}

func (m *Manager) UpdateAnnouncement(ctx context.Context, id int, req contract.UpdateAnnouncementRequest) (*Announcement, error) {
	dbAnnouncement, err := m.db.AnnouncementByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get announcement by id: %w", err)
	} else if dbAnnouncement == nil {
		return nil, ErrAnnouncementNotFound
	}

	setValue(&dbAnnouncement.Title, req.Title)
	setValue(&dbAnnouncement.Content, req.Content)
	setValue(&dbAnnouncement.Date, req.Date)

	if err := m.db.UpdateAnnouncement(ctx, dbAnnouncement); errors.Is(err, db.ErrNotFound) {
		return nil, ErrAnnouncementNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db update announcement: %w", err)
	}

	announcement := NewAnnouncement(dbAnnouncement)
	return &announcement, nil
}

func (m *Manager) DeleteAnnouncement(ctx context.Context, id int) error {
	if err := m.db.DeleteAnnouncement(ctx, id); err != nil {
		return fmt.Errorf("db delete announcement: %w", err)
	}

	return nil
}

// Programs returns programs newest first, without items.
func (m *Manager) Programs(ctx context.Context) ([]Program, error) {
	list, err := m.db.Programs(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get programs: %w", err)
	}

	return NewPrograms(list), nil
}

// ProgramByID returns the program with its ordered items, nil when it does not exist.
func (m *Manager) ProgramByID(ctx context.Context, id int) (*Program, error) {
	dbProgram, err := m.db.ProgramByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get program by id: %w", err)
	} else if dbProgram == nil {
		return nil, nil
	}

	program := NewProgram(dbProgram)
	if err := m.fillItems(ctx, &program); err != nil {
		return nil, err
	}

	return &program, nil
}

func (m *Manager) CreateProgram(ctx context.Context, req contract.CreateProgramRequest) (*Program, error) {
	dbProgram, err := m.db.AddProgram(ctx, &db.ServiceProgram{
		Title:    req.Title,
		Date:     req.Date,
		Theme:    req.Theme,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("db add program: %w", err)
	}

	program := NewProgram(dbProgram)
	return &program, nil
}

func (m *Manager) UpdateProgram(ctx context.Context, id int, req contract.UpdateProgramRequest) (*Program, error) {
	dbProgram, err := m.db.ProgramByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get program by id: %w", err)
	} else if dbProgram == nil {
		return nil, ErrProgramNotFound
	}

	setValue(&dbProgram.Title, req.Title)
	setValue(&dbProgram.Date, req.Date)
	req.Theme.Apply(&dbProgram.Theme)
	req.ImageURL.Apply(&dbProgram.ImageURL)

	if err := m.db.UpdateProgram(ctx, dbProgram); errors.Is(err, db.ErrNotFound) {
		return nil, ErrProgramNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db update program: %w", err)
	}

	program := NewProgram(dbProgram)
	return &program, nil
}

// DeleteProgram removes the program together with its items.
func (m *Manager) DeleteProgram(ctx context.Context, id int) error {
	if err := m.db.DeleteProgram(ctx, id); err != nil {
		return fmt.Errorf("db delete program: %w", err)
	}

	return nil
}

// CreateProgramItem adds an item to an existing program. Without an explicit
// order the item goes after the current last one.
func (m *Manager) CreateProgramItem(ctx context.Context, programID int, req contract.CreateProgramItemRequest) (*ProgramItem, error) {
	if err := m.ensureProgram(ctx, programID); err != nil {
		return nil, err
	}

	var order int
	if req.Order != nil {
		order = *req.Order
	} else {
		maxOrder, err := m.db.MaxItemOrder(ctx, programID)
		if err != nil {
			return nil, fmt.Errorf("db get max item order: %w", err)
		}
		order = maxOrder + 1
	}

	dbItem, err := m.db.AddProgramItem(ctx, &db.ProgramItem{
		ProgramID:   programID,
		Title:       req.Title,
		Description: req.Description,
		Presenter:   req.Presenter,
		Time:        req.Time,
		Order:       order,
	})
	if err != nil {
		return nil, fmt.Errorf("db add program item: %w", err)
	}

	item := NewProgramItem(dbItem)
	return &item, nil
}

func (m *Manager) UpdateProgramItem(ctx context.Context, id int, req contract.UpdateProgramItemRequest) (*ProgramItem, error) {
	dbItem, err := m.db.ProgramItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get program item by id: %w", err)
	} else if dbItem == nil {
		return nil, ErrProgramItemNotFound
	}

	if req.ProgramID != nil && *req.ProgramID != dbItem.ProgramID {
		if err := m.ensureProgram(ctx, *req.ProgramID); err != nil {
			return nil, err
		}
		dbItem.ProgramID = *req.ProgramID
	}

	setValue(&dbItem.Title, req.Title)
	setValue(&dbItem.Order, req.Order)
	req.Description.Apply(&dbItem.Description)
	req.Presenter.Apply(&dbItem.Presenter)
	req.Time.Apply(&dbItem.Time)

	if err := m.db.UpdateProgramItem(ctx, dbItem); errors.Is(err, db.ErrNotFound) {
		return nil, ErrProgramItemNotFound
	} else if err != nil {
		return nil, fmt.Errorf("db update program item: %w", err)
	}

	item := NewProgramItem(dbItem)
	return &item, nil
}

func (m *Manager) DeleteProgramItem(ctx context.Context, id int) error {
	if err := m.db.DeleteProgramItem(ctx, id); err != nil {
		return fmt.Errorf("db delete program item: %w", err)
	}

	return nil
}

func (m *Manager) ensureProgram(ctx context.Context, id int) error {
	dbProgram, err := m.db.ProgramByID(ctx, id)
	if err != nil {
		return fmt.Errorf("db get program by id: %w", err)
	} else if dbProgram == nil {
		return ErrProgramNotFound
	}

	return nil
}

func (m *Manager) fillItems(ctx context.Context, program *Program) error {
	items, err := m.db.ProgramItems(ctx, program.ID)
	if err != nil {
		return fmt.Errorf("db get program items: %w", err)
	}

	program.Items = NewProgramItems(items)
	return nil
}

func setValue[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
