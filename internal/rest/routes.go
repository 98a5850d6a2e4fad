package rest

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
	uploadsPath = "/uploads"
	apiPrefix   = "/api/"

	indexHTML = "index.html"
	bodyLimit = "10M"
)

// RegisterRoutes builds the echo instance serving the API, uploaded files and the frontend.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = h.httpErrorHandler
	if h.opts.Production {
		// Running behind a TLS-terminating proxy.
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	}

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(h.loggingMiddleware)

	h.registerAPIRoutes(e)

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerPath, h.handleSwagger)
	e.Static(uploadsPath, h.uploads.Dir())
	e.GET("/*", h.handleFrontend)

	return e
}

func (h *Handler) operationHandlers() map[string]echo.HandlerFunc {
	return map[string]echo.HandlerFunc{
		contract.API.Events.List.Name:   h.ListEvents,
		contract.API.Events.Get.Name:    h.GetEvent,
		contract.API.Events.Create.Name: h.CreateEvent,
		contract.API.Events.Update.Name: h.UpdateEvent,
		contract.API.Events.Delete.Name: h.DeleteEvent,

		contract.API.Announcements.List.Name:   h.ListAnnouncements,
		contract.API.Announcements.Create.Name: h.CreateAnnouncement,
		contract.API.Announcements.Update.Name: h.UpdateAnnouncement,
		contract.API.Announcements.Delete.Name: h.DeleteAnnouncement,

		contract.API.Programs.List.Name:   h.ListPrograms,
		contract.API.Programs.Get.Name:    h.GetProgram,
		contract.API.Programs.Create.Name: h.CreateProgram,
		contract.API.Programs.Update.Name: h.UpdateProgram,
		contract.API.Programs.Delete.Name: h.DeleteProgram,

		contract.API.ProgramItems.Create.Name: h.CreateProgramItem,
		contract.API.ProgramItems.Update.Name: h.UpdateProgramItem,
		contract.API.ProgramItems.Delete.Name: h.DeleteProgramItem,

		contract.API.Admin.Login.Name:  h.Login,
		contract.API.Admin.Check.Name:  h.Check,
		contract.API.Admin.Logout.Name: h.Logout,

		contract.API.Upload.Image.Name: h.UploadImage,

		contract.API.Calendar.List.Name: h.Calendar,
		contract.API.Calendar.ICS.Name:  h.CalendarICS,

		contract.API.Home.Summary.Name: h.Home,
	}
}

// registerAPIRoutes mounts every contract operation. A missing handler is a programming error.
func (h *Handler) registerAPIRoutes(e *echo.Echo) {
	handlers := h.operationHandlers()
	for _, op := range contract.Operations() {
		handler, ok := handlers[op.Name]
		if !ok {
			panic(fmt.Sprintf("rest: no handler for operation %q", op.Name))
		}

		var mw []echo.MiddlewareFunc
		if op.Admin {
			mw = append(mw, h.requireAdmin)
		}

		e.Add(op.Method, op.Path, handler, mw...)
	}
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgInternal)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

// handleFrontend serves built frontend files and falls back to index.html for client-side routes.
func (h *Handler) handleFrontend(c echo.Context) error {
	p := c.Request().URL.Path
	if strings.HasPrefix(p, apiPrefix) {
		return c.JSON(http.StatusNotFound, contract.ErrorResponse{Message: "Not found"})
	}

	p = strings.TrimPrefix(filepath.Clean("/"+p), "/")
	if p != "" {
		filePath := filepath.Join(h.opts.FrontendDir, p)
		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			return c.File(filePath)
		}
	}

	return c.File(filepath.Join(h.opts.FrontendDir, indexHTML))
}

func (h *Handler) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := msgInternal

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", "error", err, "path", c.Request().URL.Path)
	}

	if err := c.JSON(status, contract.ErrorResponse{Message: message}); err != nil {
		h.log.Error("failed to write error response", "error", err)
	}
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}

// requireAdmin rejects requests without a valid admin session cookie.
func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.isAdmin(c) {
			return c.JSON(http.StatusUnauthorized, contract.ErrorResponse{Message: msgUnauthorized})
		}

		return next(c)
	}
}

func (h *Handler) isAdmin(c echo.Context) bool {
	cookie, err := c.Cookie(h.opts.CookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	ok, err := h.sessions.Authenticated(c.Request().Context(), cookie.Value)
	if err != nil {
		h.log.Error("session lookup failed", "error", err)
		return false
	}

	return ok
}
