// Package contract declares the HTTP API shared by the server and the client:
// operations with their method, path, input and responses, plus the payload schema.
package contract

import (
	"fmt"
	"net/http"
	"strings"
)

// Operation is one logical API call.
type Operation struct {
	Name   string
	Method string
	// Path may contain :param placeholders.
	Path string
	// Admin operations require an authenticated admin session.
	Admin bool
	// Input is the zero value of the request body or query type, nil when there is none.
	Input any
	// Responses maps HTTP status to the zero value of the response body.
	Responses map[int]any
}

// URL substitutes path params of the operation.
func (o Operation) URL(params map[string]any) string {
	return BuildURL(o.Path, params)
}

// Responds reports whether status is declared for the operation.
func (o Operation) Responds(status int) bool {
	_, ok := o.Responses[status]
	return ok
}

// BuildURL replaces every :key in path with the matching value from params.
func BuildURL(path string, params map[string]any) string {
	url := path
	for k, v := range params {
		placeholder := ":" + k
		if strings.Contains(url, placeholder) {
			url = strings.ReplaceAll(url, placeholder, fmt.Sprint(v))
		}
	}

	return url
}

type EventOperations struct {
	List, Get, Create, Update, Delete Operation
}

type AnnouncementOperations struct {
	List, Create, Update, Delete Operation
}

type ProgramOperations struct {
	List, Get, Create, Update, Delete Operation
}

type ProgramItemOperations struct {
	Create, Update, Delete Operation
}

type AdminOperations struct {
	Login, Check, Logout Operation
}

type UploadOperations struct {
	Image Operation
}

type CalendarOperations struct {
	List, ICS Operation
}

type HomeOperations struct {
	Summary Operation
}

// API is the full operation table.
var API = struct {
	Events        EventOperations
	Announcements AnnouncementOperations
	Programs      ProgramOperations
	ProgramItems  ProgramItemOperations
	Admin         AdminOperations
	Upload        UploadOperations
	Calendar      CalendarOperations
	Home          HomeOperations
}{
	Events: EventOperations{
		List: Operation{
			Name:      "events.list",
			Method:    http.MethodGet,
			Path:      "/api/events",
			Responses: map[int]any{http.StatusOK: []Event{}},
		},
		Get: Operation{
			Name:      "events.get",
			Method:    http.MethodGet,
			Path:      "/api/events/:id",
			Responses: map[int]any{http.StatusOK: Event{}, http.StatusNotFound: ErrorResponse{}},
		},
		Create: Operation{
			Name:   "events.create",
			Method: http.MethodPost,
			Path:   "/api/events",
			Admin:  true,
			Input:  CreateEventRequest{},
			Responses: map[int]any{
				http.StatusCreated:      Event{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
		Update: Operation{
			Name:   "events.update",
			Method: http.MethodPut,
			Path:   "/api/events/:id",
			Admin:  true,
			Input:  UpdateEventRequest{},
			Responses: map[int]any{
				http.StatusOK:           Event{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
				http.StatusNotFound:     ErrorResponse{},
			},
		},
		Delete: Operation{
			Name:   "events.delete",
			Method: http.MethodDelete,
			Path:   "/api/events/:id",
			Admin:  true,
			Responses: map[int]any{
				http.StatusNoContent:    nil,
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
	},
	Announcements: AnnouncementOperations{
		List: Operation{
			Name:      "announcements.list",
			Method:    http.MethodGet,
			Path:      "/api/announcements",
			Responses: map[int]any{http.StatusOK: []Announcement{}},
		},
		Create: Operation{
			Name:   "announcements.create",
			Method: http.MethodPost,
			Path:   "/api/announcements",
			Admin:  true,
			Input:  CreateAnnouncementRequest{},
			Responses: map[int]any{
				http.StatusCreated:      Announcement{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
		Update: Operation{
			Name:   "announcements.update",
			Method: http.MethodPut,
			Path:   "/api/announcements/:id",
			Admin:  true,
			Input:  UpdateAnnouncementRequest{},
			Responses: map[int]any{
				http.StatusOK:           Announcement{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
				http.StatusNotFound:     ErrorResponse{},
			},
		},
		Delete: Operation{
			Name:   "announcements.delete",
			Method: http.MethodDelete,
			Path:   "/api/announcements/:id",
			Admin:  true,
			Responses: map[int]any{
				http.StatusNoContent:    nil,
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
	},
	Programs: ProgramOperations{
		List: Operation{
			Name:      "programs.list",
			Method:    http.MethodGet,
			Path:      "/api/programs",
			Responses: map[int]any{http.StatusOK: []Program{}},
		},
		Get: Operation{
			Name:      "programs.get",
			Method:    http.MethodGet,
			Path:      "/api/programs/:id",
			Responses: map[int]any{http.StatusOK: ProgramWithItems{}, http.StatusNotFound: ErrorResponse{}},
		},
		Create: Operation{
			Name:   "programs.create",
			Method: http.MethodPost,
			Path:   "/api/programs",
			Admin:  true,
			Input:  CreateProgramRequest{},
			Responses: map[int]any{
				http.StatusCreated:      Program{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
		Update: Operation{
			Name:   "programs.update",
			Method: http.MethodPut,
			Path:   "/api/programs/:id",
			Admin:  true,
			Input:  UpdateProgramRequest{},
			Responses: map[int]any{
				http.StatusOK:           Program{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
				http.StatusNotFound:     ErrorResponse{},
			},
		},
		Delete: Operation{
			Name:   "programs.delete",
			Method: http.MethodDelete,
			Path:   "/api/programs/:id",
			Admin:  true,
			Responses: map[int]any{
				http.StatusNoContent:    nil,
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
	},
	ProgramItems: ProgramItemOperations{
		Create: Operation{
			Name:   "programItems.create",
			Method: http.MethodPost,
			Path:   "/api/programs/:programId/items",
			Admin:  true,
			Input:  CreateProgramItemRequest{},
			Responses: map[int]any{
				http.StatusCreated:      ProgramItem{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
				http.StatusNotFound:     ErrorResponse{},
			},
		},
		Update: Operation{
			Name:   "programItems.update",
			Method: http.MethodPut,
			Path:   "/api/items/:id",
			Admin:  true,
			Input:  UpdateProgramItemRequest{},
			Responses: map[int]any{
				http.StatusOK:           ProgramItem{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
				http.StatusNotFound:     ErrorResponse{},
			},
		},
		Delete: Operation{
			Name:   "programItems.delete",
			Method: http.MethodDelete,
			Path:   "/api/items/:id",
			Admin:  true,
			Responses: map[int]any{
				http.StatusNoContent:    nil,
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
	},
	Admin: AdminOperations{
		Login: Operation{
			Name:   "admin.login",
			Method: http.MethodPost,
			Path:   "/api/admin/login",
			Input:  LoginRequest{},
			Responses: map[int]any{
				http.StatusOK:           SuccessResponse{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
		Check: Operation{
			Name:   "admin.check",
			Method: http.MethodGet,
			Path:   "/api/admin/check",
			Responses: map[int]any{
				http.StatusOK:           CheckResponse{},
				http.StatusUnauthorized: CheckResponse{},
			},
		},
		Logout: Operation{
			Name:      "admin.logout",
			Method:    http.MethodPost,
			Path:      "/api/admin/logout",
			Responses: map[int]any{http.StatusOK: SuccessResponse{}},
		},
	},
	Upload: UploadOperations{
		Image: Operation{
			Name:   "upload.image",
			Method: http.MethodPost,
			Path:   "/api/upload/image",
			Admin:  true,
			Responses: map[int]any{
				http.StatusOK:           UploadResponse{},
				http.StatusBadRequest:   ErrorResponse{},
				http.StatusUnauthorized: ErrorResponse{},
			},
		},
	},
	Calendar: CalendarOperations{
		List: Operation{
			Name:   "calendar.list",
			Method: http.MethodGet,
			Path:   "/api/calendar",
			Input:  CalendarQuery{},
			Responses: map[int]any{
				http.StatusOK:         []CalendarEntry{},
				http.StatusBadRequest: ErrorResponse{},
			},
		},
		ICS: Operation{
			Name:   "calendar.ics",
			Method: http.MethodGet,
			Path:   "/api/calendar.ics",
			Input:  CalendarQuery{},
			Responses: map[int]any{
				http.StatusOK:         "",
				http.StatusBadRequest: ErrorResponse{},
			},
		},
	},
	Home: HomeOperations{
		Summary: Operation{
			Name:      "home.summary",
			Method:    http.MethodGet,
			Path:      "/api/home",
			Responses: map[int]any{http.StatusOK: HomeSummary{}},
		},
	},
}

// Operations returns every operation of API.
func Operations() []Operation {
	return []Operation{
		API.Events.List, API.Events.Get, API.Events.Create, API.Events.Update, API.Events.Delete,
		API.Announcements.List, API.Announcements.Create, API.Announcements.Update, API.Announcements.Delete,
		API.Programs.List, API.Programs.Get, API.Programs.Create, API.Programs.Update, API.Programs.Delete,
		API.ProgramItems.Create, API.ProgramItems.Update, API.ProgramItems.Delete,
		API.Admin.Login, API.Admin.Check, API.Admin.Logout,
		API.Upload.Image,
		API.Calendar.List, API.Calendar.ICS,
		API.Home.Summary,
	}
}
