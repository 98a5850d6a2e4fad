package rpc

import (
	"context"

	"github.com/daniilsolovey/church-portal/internal/church"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// Reader is the read side of the church content; *church.Manager implements it.
type Reader interface {
	Events(ctx context.Context) ([]church.Event, error)
	Announcements(ctx context.Context) ([]church.Announcement, error)
	Programs(ctx context.Context) ([]church.Program, error)
	ProgramByID(ctx context.Context, id int) (*church.Program, error)
	Calendar(ctx context.Context, filter church.CalendarFilter) ([]church.CalendarEntry, error)
	Summary(ctx context.Context) (*church.Summary, error)
}

// ChurchService provides read-only RPC methods for public church content.
type ChurchService struct {
	zenrpc.Service
	reader Reader
}

func NewChurchService(reader Reader) *ChurchService {
	return &ChurchService{reader: reader}
}

// Events returns all events ordered by date, earliest first.
//
//zenrpc:return list of events
//zenrpc:500 internal server error
func (s *ChurchService) Events(ctx context.Context) ([]Event, error) {
	events, err := s.reader.Events(ctx)
	if err != nil {
		return nil, err
	}

	return Map(events, NewEvent), nil
}

// Announcements returns all announcements, newest first.
//
//zenrpc:return list of announcements
//zenrpc:500 internal server error
func (s *ChurchService) Announcements(ctx context.Context) ([]Announcement, error) {
	announcements, err := s.reader.Announcements(ctx)
	if err != nil {
		return nil, err
	}

	return Map(announcements, NewAnnouncement), nil
}

// Programs returns service programs without items, newest first.
//
//zenrpc:return list of programs
//zenrpc:500 internal server error
func (s *ChurchService) Programs(ctx context.Context) ([]ProgramSummary, error) {
	programs, err := s.reader.Programs(ctx)
	if err != nil {
		return nil, err
	}

	return Map(programs, NewProgramSummary), nil
}

// Program returns a service program with its items in display order.
//
//zenrpc:id program numeric ID
//zenrpc:return program with items
//zenrpc:400 id must be positive
//zenrpc:404 program not found
//zenrpc:500 internal server error
func (s *ChurchService) Program(ctx context.Context, req ProgramRequest) (*Program, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	churchProgram, err := s.reader.ProgramByID(ctx, req.ID)
	if err != nil {
		return nil, err
	} else if churchProgram == nil {
		return nil, zenrpc.NewStringError(404, "program not found")
	}

	program := NewProgram(*churchProgram)
	return &program, nil
}

// Calendar returns events and programs merged and ordered by date.
//
//zenrpc:year optional year filter
//zenrpc:month optional month filter
//zenrpc:type optional entry type filter
//zenrpc:return calendar entries
//zenrpc:400 invalid filter
//zenrpc:500 internal server error
func (s *ChurchService) Calendar(ctx context.Context, filter CalendarFilter) ([]CalendarEntry, error) {
	if filter.Month != nil && (*filter.Month < 1 || *filter.Month > 12) {
		return nil, zenrpc.NewStringError(400, "month must be between 1 and 12")
	}
	if filter.Type != nil && *filter.Type != church.EntryTypeEvent && *filter.Type != church.EntryTypeProgram {
		return nil, zenrpc.NewStringError(400, "type must be event or program")
	}

	entries, err := s.reader.Calendar(ctx, filter.ToModel())
	if err != nil {
		return nil, err
	}

	return Map(entries, NewCalendarEntry), nil
}

// Summary returns the home page data: the upcoming program, latest announcements and next events.
//
//zenrpc:return home page summary
//zenrpc:500 internal server error
func (s *ChurchService) Summary(ctx context.Context) (*Summary, error) {
	churchSummary, err := s.reader.Summary(ctx)
	if err != nil {
		return nil, err
	}

	summary := NewSummary(*churchSummary)
	return &summary, nil
}
