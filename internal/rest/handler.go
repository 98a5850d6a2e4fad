package rest

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/daniilsolovey/church-portal/internal/church"
	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/labstack/echo/v4"
)

// ChurchService is the content API used by the handlers; *church.Manager implements it.
type ChurchService interface {
	Events(ctx context.Context) ([]church.Event, error)
	EventByID(ctx context.Context, id int) (*church.Event, error)
	CreateEvent(ctx context.Context, req contract.CreateEventRequest) (*church.Event, error)
	UpdateEvent(ctx context.Context, id int, req contract.UpdateEventRequest) (*church.Event, error)
	DeleteEvent(ctx context.Context, id int) error

	Announcements(ctx context.Context) ([]church.Announcement, error)
	CreateAnnouncement(ctx context.Context, req contract.CreateAnnouncementRequest) (*church.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id int, req contract.UpdateAnnouncementRequest) (*church.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id int) error

	Programs(ctx context.Context) ([]church.Program, error)
	ProgramByID(ctx context.Context, id int) (*church.Program, error)
	CreateProgram(ctx context.Context, req contract.CreateProgramRequest) (*church.Program, error)
	UpdateProgram(ctx context.Context, id int, req contract.UpdateProgramRequest) (*church.Program, error)
	DeleteProgram(ctx context.Context, id int) error

	CreateProgramItem(ctx context.Context, programID int, req contract.CreateProgramItemRequest) (*church.ProgramItem, error)
	UpdateProgramItem(ctx context.Context, id int, req contract.UpdateProgramItemRequest) (*church.ProgramItem, error)
	DeleteProgramItem(ctx context.Context, id int) error

	Calendar(ctx context.Context, filter church.CalendarFilter) ([]church.CalendarEntry, error)
	Summary(ctx context.Context) (*church.Summary, error)
}

// SessionManager is the admin gate; *auth.Manager implements it.
type SessionManager interface {
	Login(ctx context.Context, password string) (string, error)
	Authenticated(ctx context.Context, token string) (bool, error)
	Logout(ctx context.Context, token string) error
	TTL() time.Duration
}

// Uploader stores uploaded images; *upload.Storage implements it.
type Uploader interface {
	Save(fh *multipart.FileHeader) (string, error)
	Dir() string
}

type Options struct {
	// Production enables secure cross-site cookies and proxy IP extraction.
	Production  bool
	CookieName  string
	FrontendDir string
}

type Handler struct {
	church   ChurchService
	sessions SessionManager
	uploads  Uploader
	log      *slog.Logger
	opts     Options
	now      func() time.Time
}

func NewHandler(cs ChurchService, sessions SessionManager, uploads Uploader, log *slog.Logger, opts Options) *Handler {
	return &Handler{
		church:   cs,
		sessions: sessions,
		uploads:  uploads,
		log:      log,
		opts:     opts,
		now:      time.Now,
	}
}

const (
	msgInternal     = "Internal server error"
	msgUnauthorized = "Unauthorized"
	msgInvalidID    = "invalid id"
)

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	} else {
		h.log.Debug("handleError", "error", err, "statusCode", statusCode, "message", message)
	}

	return c.JSON(statusCode, contract.ErrorResponse{Message: message})
}

// handleManagerError maps church errors to HTTP responses.
func (h *Handler) handleManagerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, church.ErrEventNotFound):
		return h.handleError(c, err, http.StatusNotFound, "Event not found")
	case errors.Is(err, church.ErrAnnouncementNotFound):
		return h.handleError(c, err, http.StatusNotFound, "Announcement not found")
	case errors.Is(err, church.ErrProgramNotFound):
		return h.handleError(c, err, http.StatusNotFound, "Program not found")
	case errors.Is(err, church.ErrProgramItemNotFound):
		return h.handleError(c, err, http.StatusNotFound, "Program item not found")
	case errors.Is(err, church.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "Not found")
	default:
		return h.handleError(c, err, http.StatusInternalServerError, msgInternal)
	}
}

// bind decodes the request body into req and validates it against the contract.
// On failure the 400 response is already written and ok is false.
func (h *Handler) bind(c echo.Context, req any) (bool, error) {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return false, h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := contract.Validate(req); err != nil {
		return false, h.handleValidationError(c, err)
	}

	return true, nil
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var verr *contract.ValidationError
	if !errors.As(err, &verr) {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	h.log.Debug("validation failed", "field", verr.Field, "error", verr.Message)
	return c.JSON(http.StatusBadRequest, contract.ErrorResponse{Message: verr.Message, Field: verr.Field})
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
