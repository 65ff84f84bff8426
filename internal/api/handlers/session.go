package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cloudquota/cfpanel/internal/api/models"
	"github.com/cloudquota/cfpanel/internal/database"
	"github.com/cloudquota/cfpanel/internal/session"
)

// sessionCookieMaxAge bounds the cookie lifetime; the store's own TTL is
// authoritative and renews on use.
const sessionCookieMaxAge = 24 * 60 * 60

// CreateSession godoc
// @Summary Open a session
// @Description Verifies the Cloudflare API token against the provider and issues a session cookie. The token is held in memory only.
// @Tags session
// @Accept json
// @Produce json
// @Param credentials body models.SessionCreateRequest true "API token"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /session [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var req models.SessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "API token is required"})
		return
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "API token is required"})
		return
	}

	// Reject bad tokens up front so the UI can show the provider's own
	// message on the login form.
	if err := h.client(token).VerifyToken(c.Request.Context()); err != nil {
		h.renderProviderError(c, err)
		return
	}

	id, err := h.sessions.Create(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(session.CookieName, id, sessionCookieMaxAge, "/", "", false, true)

	h.audit(database.AuditEntry{Action: database.ActionSessionOpen})
	c.JSON(http.StatusOK, models.SessionResponse{Authenticated: true})
}

// GetSession godoc
// @Summary Check session
// @Description Reports whether the browser holds a live session.
// @Tags session
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Router /session [get]
func (h *Handler) GetSession(c *gin.Context) {
	id, err := c.Cookie(session.CookieName)
	if err != nil || id == "" {
		c.JSON(http.StatusOK, models.SessionResponse{Authenticated: false})
		return
	}
	_, ok := h.sessions.Token(id)
	c.JSON(http.StatusOK, models.SessionResponse{Authenticated: ok})
}

// DeleteSession godoc
// @Summary Close the session
// @Description Drops the session and discards the API token.
// @Tags session
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /session [delete]
func (h *Handler) DeleteSession(c *gin.Context) {
	if id, err := c.Cookie(session.CookieName); err == nil && id != "" {
		h.sessions.Delete(id)
		h.audit(database.AuditEntry{Action: database.ActionSessionClose})
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}
