// Package middleware provides HTTP middleware for the cfpanel REST API,
// including session resolution and request logging.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudquota/cfpanel/internal/api/models"
	"github.com/cloudquota/cfpanel/internal/session"
)

// ContextKeyToken is the gin context key under which the resolved
// Cloudflare API token is stored for the duration of the request.
const ContextKeyToken = "cf_token"

// RequireSession resolves the session cookie to an API token and aborts
// with 401 when the browser has no live session.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(session.CookieName)
		if err != nil || id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "no active session, submit your API token first"})
			return
		}
		token, ok := store.Token(id)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: "session expired, submit your API token again"})
			return
		}
		c.Set(ContextKeyToken, token)
		c.Next()
	}
}

// Token returns the API token placed in the context by RequireSession.
func Token(c *gin.Context) string {
	return c.GetString(ContextKeyToken)
}
