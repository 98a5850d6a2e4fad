package rest

import (
	"context"
	"mime/multipart"

	"github.com/daniilsolovey/church-portal/internal/church"
	"github.com/daniilsolovey/church-portal/internal/contract"
)

// mockChurchService is a manual stub implementation of ChurchService for testing
type mockChurchService struct {
	eventsFunc             func(ctx context.Context) ([]church.Event, error)
	eventByIDFunc          func(ctx context.Context, id int) (*church.Event, error)
	createEventFunc        func(ctx context.Context, req contract.CreateEventRequest) (*church.Event, error)
	updateEventFunc        func(ctx context.Context, id int, req contract.UpdateEventRequest) (*church.Event, error)
	deleteEventFunc        func(ctx context.Context, id int) error
	announcementsFunc      func(ctx context.Context) ([]church.Announcement, error)
	createAnnouncementFunc func(ctx context.Context, req contract.CreateAnnouncementRequest) (*church.Announcement, error)
	updateAnnouncementFunc func(ctx context.Context, id int, req contract.UpdateAnnouncementRequest) (*church.Announcement, error)
	deleteAnnouncementFunc func(ctx context.Context, id int) error
	programsFunc           func(ctx context.Context) ([]church.Program, error)
	programByIDFunc        func(ctx context.Context, id int) (*church.Program, error)
	createProgramFunc      func(ctx context.Context, req contract.CreateProgramRequest) (*church.Program, error)
	updateProgramFunc      func(ctx context.Context, id int, req contract.UpdateProgramRequest) (*church.Program, error)
	deleteProgramFunc      func(ctx context.Context, id int) error
	createProgramItemFunc  func(ctx context.Context, programID int, req contract.CreateProgramItemRequest) (*church.ProgramItem, error)
	updateProgramItemFunc  func(ctx context.Context, id int, req contract.UpdateProgramItemRequest) (*church.ProgramItem, error)
	deleteProgramItemFunc  func(ctx context.Context, id int) error
	calendarFunc           func(ctx context.Context, filter church.CalendarFilter) ([]church.CalendarEntry, error)
	summaryFunc            func(ctx context.Context) (*church.Summary, error)
}

func (m *mockChurchService) Events(ctx context.Context) ([]church.Event, error) {
	if m.eventsFunc != nil {
		return m.eventsFunc(ctx)
	}
	return nil, nil
}

func (m *mockChurchService) EventByID(ctx context.Context, id int) (*church.Event, error) {
	if m.eventByIDFunc != nil {
		return m.eventByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockChurchService) CreateEvent(ctx context.Context, req contract.CreateEventRequest) (*church.Event, error) {
	if m.createEventFunc != nil {
		return m.createEventFunc(ctx, req)
	}
	return &church.Event{}, nil
}

func (m *mockChurchService) UpdateEvent(ctx context.Context, id int, req contract.UpdateEventRequest) (*church.Event, error) {
	if m.updateEventFunc != nil {
		return m.updateEventFunc(ctx, id, req)
	}
	return &church.Event{}, nil
}

func (m *mockChurchService) DeleteEvent(ctx context.Context, id int) error {
	if m.deleteEventFunc != nil {
		return m.deleteEventFunc(ctx, id)
	}
	return nil
}

func (m *mockChurchService) Announcements(ctx context.Context) ([]church.Announcement, error) {
	if m.announcementsFunc != nil {
		return m.announcementsFunc(ctx)
	}
	return nil, nil
}

func (m *mockChurchService) CreateAnnouncement(ctx context.Context, req contract.CreateAnnouncementRequest) (*church.Announcement, error) {
	if m.createAnnouncementFunc != nil {
		return m.createAnnouncementFunc(ctx, req)
	}
	return &church.Announcement{}, nil
}

func (m *mockChurchService) UpdateAnnouncement(ctx context.Context, id int, req contract.UpdateAnnouncementRequest) (*church.Announcement, error) {
	if m.updateAnnouncementFunc != nil {
		return m.updateAnnouncementFunc(ctx, id, req)
	}
	return &church.Announcement{}, nil
}

func (m *mockChurchService) DeleteAnnouncement(ctx context.Context, id int) error {
	if m.deleteAnnouncementFunc != nil {
		return m.deleteAnnouncementFunc(ctx, id)
	}
	return nil
}

func (m *mockChurchService) Programs(ctx context.Context) ([]church.Program, error) {
	if m.programsFunc != nil {
		return m.programsFunc(ctx)
	}
	return nil, nil
}

func (m *mockChurchService) ProgramByID(ctx context.Context, id int) (*church.Program, error) {
	if m.programByIDFunc != nil {
		return m.programByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockChurchService) CreateProgram(ctx context.Context, req contract.CreateProgramRequest) (*church.Program, error) {
	if m.createProgramFunc != nil {
		return m.createProgramFunc(ctx, req)
	}
	return &church.Program{}, nil
}

func (m *mockChurchService) UpdateProgram(ctx context.Context, id int, req contract.UpdateProgramRequest) (*church.Program, error) {
	if m.updateProgramFunc != nil {
		return m.updateProgramFunc(ctx, id, req)
	}
	return &church.Program{}, nil
}

func (m *mockChurchService) DeleteProgram(ctx context.Context, id int) error {
	if m.deleteProgramFunc != nil {
		return m.deleteProgramFunc(ctx, id)
	}
	return nil
}

func (m *mockChurchService) CreateProgramItem(ctx context.Context, programID int, req contract.CreateProgramItemRequest) (*church.ProgramItem, error) {
	if m.createProgramItemFunc != nil {
		return m.createProgramItemFunc(ctx, programID, req)
	}
	return &church.ProgramItem{}, nil
}

func (m *mockChurchService) UpdateProgramItem(ctx context.Context, id int, req contract.UpdateProgramItemRequest) (*church.ProgramItem, error) {
	if m.updateProgramItemFunc != nil {
		return m.updateProgramItemFunc(ctx, id, req)
	}
	return &church.ProgramItem{}, nil
}

func (m *mockChurchService) DeleteProgramItem(ctx context.Context, id int) error {
	if m.deleteProgramItemFunc != nil {
		return m.deleteProgramItemFunc(ctx, id)
	}
	return nil
}

func (m *mockChurchService) Calendar(ctx context.Context, filter church.CalendarFilter) ([]church.CalendarEntry, error) {
	if m.calendarFunc != nil {
		return m.calendarFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockChurchService) Summary(ctx context.Context) (*church.Summary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx)
	}
	return &church.Summary{}, nil
}

// mockUploader is a manual stub implementation of Uploader for testing
type mockUploader struct {
	dir      string
	saveFunc func(fh *multipart.FileHeader) (string, error)
}

func (m *mockUploader) Save(fh *multipart.FileHeader) (string, error) {
	if m.saveFunc != nil {
		return m.saveFunc(fh)
	}
	return "/uploads/image.png", nil
}

func (m *mockUploader) Dir() string {
	return m.dir
}
