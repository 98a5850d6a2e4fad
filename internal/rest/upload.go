package rest

import (
	"errors"
	"net/http"

	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/daniilsolovey/church-portal/internal/upload"
	"github.com/labstack/echo/v4"
)

const uploadField = "image"

// UploadImage godoc
// @Summary Upload image
// @Description Stores a jpeg, png, webp or gif image up to 5MB and returns its public URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} contract.UploadResponse
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/upload/image [post]
func (h *Handler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "No file uploaded")
	}

	url, err := h.uploads.Save(fh)
	switch {
	case errors.Is(err, upload.ErrTooLarge),
		errors.Is(err, upload.ErrUnsupportedType),
		errors.Is(err, upload.ErrEmpty):
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, msgInternal)
	}

	h.log.Info("image uploaded", "url", url, "size", fh.Size)
	return c.JSON(http.StatusOK, contract.UploadResponse{ImageURL: url})
}
