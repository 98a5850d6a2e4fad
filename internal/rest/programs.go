package rest

import (
	"net/http"

	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/labstack/echo/v4"
)

// ListPrograms godoc
// @Summary List service programs
// @Description Returns programs without items, newest first
// @Tags programs
// @Produce json
// @Success 200 {array} contract.Program
// @Failure 500 {object} contract.ErrorResponse
// @Router /api/programs [get]
func (h *Handler) ListPrograms(c echo.Context) error {
	programs, err := h.church.Programs(c.Request().Context())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, Map(programs, NewProgram))
}

// GetProgram godoc
// @Summary Get service program with its items
// @Tags programs
// @Produce json
// @Param id path int true "Program ID"
// @Success 200 {object} contract.ProgramWithItems
// @Failure 400 {object} contract.ErrorResponse
// @Failure 404 {object} contract.ErrorResponse
// @Failure 500 {object} contract.ErrorResponse
// @Router /api/programs/{id} [get]
func (h *Handler) GetProgram(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	program, err := h.church.ProgramByID(c.Request().Context(), id)
	if err != nil {
		return h.handleManagerError(c, err)
	} else if program == nil {
		return h.handleError(c, nil, http.StatusNotFound, "Program not found")
	}

	return c.JSON(http.StatusOK, NewProgramWithItems(*program))
}

// CreateProgram godoc
// @Summary Create service program
// @Tags programs
// @Accept json
// @Produce json
// @Param program body contract.CreateProgramRequest true "Program"
// @Success 201 {object} contract.Program
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/programs [post]
func (h *Handler) CreateProgram(c echo.Context) error {
	var req contract.CreateProgramRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	program, err := h.church.CreateProgram(c.Request().Context(), req)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewProgram(*program))
}

// UpdateProgram godoc
// @Summary Update service program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path int true "Program ID"
// @Param program body contract.UpdateProgramRequest true "Changed fields"
// @Success 200 {object} contract.Program
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Failure 404 {object} contract.ErrorResponse
// @Router /api/programs/{id} [put]
func (h *Handler) UpdateProgram(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	var req contract.UpdateProgramRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	program, err := h.church.UpdateProgram(c.Request().Context(), id, req)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewProgram(*program))
}

// DeleteProgram godoc
// @Summary Delete service program and all its items
// @Tags programs
// @Param id path int true "Program ID"
// @Success 204
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/programs/{id} [delete]
func (h *Handler) DeleteProgram(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	if err := h.church.DeleteProgram(c.Request().Context(), id); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateProgramItem godoc
// @Summary Add item to a service program
// @Description order defaults to one past the current last item
// @Tags programItems
// @Accept json
// @Produce json
// @Param programId path int true "Program ID"
// @Param item body contract.CreateProgramItemRequest true "Item"
// @Success 201 {object} contract.ProgramItem
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Failure 404 {object} contract.ErrorResponse
// @Router /api/programs/{programId}/items [post]
func (h *Handler) CreateProgramItem(c echo.Context) error {
	programID, ok := pathID(c, "programId")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	var req contract.CreateProgramItemRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	item, err := h.church.CreateProgramItem(c.Request().Context(), programID, req)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewProgramItem(*item))
}

// UpdateProgramItem godoc
// @Summary Update program item
// @Tags programItems
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body contract.UpdateProgramItemRequest true "Changed fields"
// @Success 200 {object} contract.ProgramItem
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Failure 404 {object} contract.ErrorResponse
// @Router /api/items/{id} [put]
func (h *Handler) UpdateProgramItem(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	var req contract.UpdateProgramItemRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	item, err := h.church.UpdateProgramItem(c.Request().Context(), id, req)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewProgramItem(*item))
}

// DeleteProgramItem godoc
// @Summary Delete program item
// @Tags programItems
// @Param id path int true "Item ID"
// @Success 204
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/items/{id} [delete]
func (h *Handler) DeleteProgramItem(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return h.handleError(c, nil, http.StatusBadRequest, msgInvalidID)
	}

	if err := h.church.DeleteProgramItem(c.Request().Context(), id); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
