package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudquota/cfpanel/internal/api/models"
	"github.com/cloudquota/cfpanel/internal/cloudflare"
)

// renderProviderError maps a provider client error onto an HTTP response.
//
// API errors keep their upstream status and message verbatim, so the
// operator sees exactly what Cloudflare said. Transport failures become a
// generic 502; nothing is retried.
func (h *Handler) renderProviderError(c *gin.Context, err error) {
	var apiErr *cloudflare.APIError
	switch {
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, models.ErrorResponse{Error: apiErr.Error()})
	case errors.Is(err, cloudflare.ErrNetwork):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "could not reach the DNS provider"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
	}
}
