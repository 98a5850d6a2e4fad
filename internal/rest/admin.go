package rest

import (
	"errors"
	"net/http"

	"github.com/daniilsolovey/church-portal/internal/auth"
	"github.com/daniilsolovey/church-portal/internal/contract"
	"github.com/labstack/echo/v4"
)

// Login godoc
// @Summary Admin login
// @Description Opens an admin session and sets the session cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body contract.LoginRequest true "Admin password"
// @Success 200 {object} contract.SuccessResponse
// @Failure 400 {object} contract.ErrorResponse
// @Failure 401 {object} contract.ErrorResponse
// @Router /api/admin/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req contract.LoginRequest
	if ok, err := h.bind(c, &req); !ok {
		return err
	}

	token, err := h.sessions.Login(c.Request().Context(), req.Password)
	if errors.Is(err, auth.ErrInvalidPassword) {
		return h.handleError(c, err, http.StatusUnauthorized, "Invalid password")
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, msgInternal)
	}

	c.SetCookie(h.sessionCookie(token, int(h.sessions.TTL().Seconds())))
	return c.JSON(http.StatusOK, contract.SuccessResponse{Success: true})
}

// Check godoc
// @Summary Check admin session
// @Tags admin
// @Produce json
// @Success 200 {object} contract.CheckResponse
// @Failure 401 {object} contract.CheckResponse
// @Router /api/admin/check [get]
func (h *Handler) Check(c echo.Context) error {
	if !h.isAdmin(c) {
		return c.JSON(http.StatusUnauthorized, contract.CheckResponse{Authenticated: false})
	}

	return c.JSON(http.StatusOK, contract.CheckResponse{Authenticated: true})
}

// Logout godoc
// @Summary Admin logout
// @Description Destroys the session and clears the cookie; succeeds without a session too
// @Tags admin
// @Produce json
// @Success 200 {object} contract.SuccessResponse
// @Router /api/admin/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.opts.CookieName); err == nil {
		if err := h.sessions.Logout(c.Request().Context(), cookie.Value); err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, msgInternal)
		}
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, contract.SuccessResponse{Success: true})
}

// sessionCookie builds the admin cookie. Production cookies are Secure and
// SameSite=None so the admin UI keeps working across origins behind a proxy.
func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if h.opts.Production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}
