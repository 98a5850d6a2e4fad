package rest

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/daniilsolovey/church-portal/internal/church"
	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/daniilsolovey/church-portal/internal/ical"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

const (
	icsContentType = "text/calendar; charset=utf-8"
	icsProductID   = "-//Church Portal//Calendar//EN"
	icsName        = "Church Calendar"
)

// Calendar godoc
// @Summary Calendar entries
// @Description Events and service programs merged and ordered by date
// @Tags calendar
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month 1-12"
// @Param type query string false "event or program"
// @Success 200 {array} contract.CalendarEntry
// @Failure 400 {object} contract.ErrorResponse
// @Router /api/calendar [get]
func (h *Handler) Calendar(c echo.Context) error {
	entries, ok, err := h.calendarEntries(c)
	if !ok {
		return err
	}

	return c.JSON(http.StatusOK, Map(entries, NewCalendarEntry))
}

// CalendarICS godoc
// @Summary Calendar feed
// @Description The calendar entries as an iCalendar feed
// @Tags calendar
// @Produce text/calendar
// @Param year query int false "Year"
// @Param month query int false "Month 1-12"
// @Param type query string false "event or program"
// @Success 200 {string} string
// @Failure 400 {object} contract.ErrorResponse
// @Router /api/calendar.ics [get]
func (h *Handler) CalendarICS(c echo.Context) error {
	entries, ok, err := h.calendarEntries(c)
	if !ok {
		return err
	}

	cal := ical.Calendar{
		ProductID: icsProductID,
		Name:      icsName,
		Events:    make([]ical.Event, 0, len(entries)),
	}
	host := c.Request().Host
	for _, e := range entries {
		cal.Events = append(cal.Events, newICalEvent(e, host))
	}

	var buf bytes.Buffer
	if err := ical.Write(&buf, cal, h.now()); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgInternal)
	}

	return c.Blob(http.StatusOK, icsContentType, buf.Bytes())
}

// calendarEntries decodes the query and loads matching entries.
// When ok is false the error response is already written.
func (h *Handler) calendarEntries(c echo.Context) ([]church.CalendarEntry, bool, error) {
	var q contract.CalendarQuery
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &q); err != nil {
		return nil, false, h.handleError(c, err, http.StatusBadRequest, "invalid query")
	}

	if err := contract.Validate(q); err != nil {
		return nil, false, h.handleValidationError(c, err)
	}

	entries, err := h.church.Calendar(c.Request().Context(), newCalendarFilter(q))
	if err != nil {
		return nil, false, h.handleManagerError(c, err)
	}

	return entries, true, nil
}

func newICalEvent(e church.CalendarEntry, host string) ical.Event {
	event := ical.Event{
		UID:     fmt.Sprintf("%s-%d@%s", e.Type, e.ID, host),
		Summary: e.Title,
		Start:   e.Date,
	}

	if e.Description != nil {
		event.Description = *e.Description
	} else if e.Theme != nil {
		event.Description = *e.Theme
	}

	if e.Location != nil {
		event.Location = *e.Location
	}

	return event
}

// Home godoc
// @Summary Home page summary
// @Description Upcoming service program with items, three latest announcements and the next three events
// @Tags home
// @Produce json
// @Success 200 {object} contract.HomeSummary
// @Failure 500 {object} contract.ErrorResponse
// @Router /api/home [get]
func (h *Handler) Home(c echo.Context) error {
	summary, err := h.church.Summary(c.Request().Context())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewHomeSummary(*summary))
}
