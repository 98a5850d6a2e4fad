package rest

import (
	"net/http"

	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/labstack/echo/v4"
)

// ListAnnouncements godoc
// @Summary List announcements
// @Description Returns all announcements, newest first
// @Tags announcements
// @Produce json
// @Success 200 {array} contract.Announcement
// @Failure 500 {object} contract.ErrorResponse
// @Router /api/announcements [get]
func (h *Handler) ListAnnouncements(c echo.Context) error {
	announcements, err := h.church.Announcements(c.Request().Context())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, Map(announcements, NewAnnouncement))
}

// CreateAnnouncement godoc
// @Summary Create announcement
// @Description date defaults to the current time
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body contract.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} contract.Announcement
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/announcements [post]
func (h *Handler) CreateAnnouncement(c echo.Context) error {
	var req contract.CreateAnnouncementRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	announcement, err := h.church.CreateAnnouncement(c.Request().Context(), req)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewAnnouncement(*announcement))
}

// UpdateAnnouncement godoc
// @Summary Update announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path int true "Announcement ID"
// @Param announcement body contract.UpdateAnnouncementRequest true "Changed fields"
// @Success 200 {object} contract.Announcement
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Failure 404 {object} contract.ErrorResponse
// @Router /api/announcements/{id} [put]
func (h *Handler) UpdateAnnouncement(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	var req contract.UpdateAnnouncementRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	announcement, err := h.church.UpdateAnnouncement(c.Request().Context(), id, req)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewAnnouncement(*announcement))
}

// DeleteAnnouncement godoc
// @Summary Delete announcement
// @Tags announcements
// @Param id path int true "Announcement ID"
// @Success 204
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/announcements/{id} [delete]
func (h *Handler) DeleteAnnouncement(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	if err := h.church.DeleteAnnouncement(c.Request().Context(), id); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
