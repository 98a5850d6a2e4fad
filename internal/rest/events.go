package rest

import (
	"net/http"

	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/labstack/echo/v4"
)

// ListEvents godoc
// @Summary List events
// @Description Returns all events ordered by date, earliest first
// @Tags events
// @Produce json
// @Success 200 {array} contract.Event
// @Failure 500 {object} contract.ErrorResponse
// @Router /api/events [get]
func (h *Handler) ListEvents(c echo.Context) error {
	events, err := h.church.Events(c.Request().Context())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, Map(events, NewEvent))
}

// GetEvent godoc
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} contract.Event
// @Failure 400 {object} contract.ErrorResponse
// @Failure 404 {object} contract.ErrorResponse
// @Failure 500 {object} contract.ErrorResponse
// @Router /api/events/{id} [get]
func (h *Handler) GetEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	event, err := h.church.EventByID(c.Request().Context(), id)
	if err != nil {
		return h.handleManagerError(c, err)
	} else if event == nil {
		return h.handleError(c, nil, http.StatusNotFound, "Event not found")
	}

	return c.JSON(http.StatusOK, NewEvent(*event))
}

// CreateEvent godoc
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param event body contract.CreateEventRequest true "Event"
// @Success 201 {object} contract.Event
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/events [post]
func (h *Handler) CreateEvent(c echo.Context) error {
	var req contract.CreateEventRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	event, err := h.church.CreateEvent(c.Request().Context(), req)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewEvent(*event))
}

// UpdateEvent godoc
// @Summary Update event
// @Description Partial update, absent fields keep their value; imageUrl null clears the image
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body contract.UpdateEventRequest true "Changed fields"
// @Success 200 {object} contract.Event
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Failure 404 {object} contract.ErrorResponse
// @Router /api/events/{id} [put]
func (h *Handler) UpdateEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	var req contract.UpdateEventRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	event, err := h.church.UpdateEvent(c.Request().Context(), id, req)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewEvent(*event))
}

// DeleteEvent godoc
// @Summary Delete event
// @Description Deleting a missing event still succeeds
// @Tags events
// @Param id path int true "Event ID"
// @Success 204
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/events/{id} [delete]
func (h *Handler) DeleteEvent(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	if err := h.church.DeleteEvent(c.Request().Context(), id); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
