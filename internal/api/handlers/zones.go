package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cloudquota/cfpanel/internal/api/middleware"
	"github.com/cloudquota/cfpanel/internal/api/models"
)

// ListZones godoc
// @Summary List all zones
// @Description Returns all zones the token can read, fetched live from the provider and sorted by name
// @Tags zones
// @Produce json
// @Success 200 {object} models.ZoneListResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones [get]
func (h *Handler) ListZones(c *gin.Context) {
	zones, err := h.client(middleware.Token(c)).ListZones(c.Request.Context())
	if err != nil {
		h.renderProviderError(c, err)
		return
	}

	summaries := make([]models.ZoneSummary, 0, len(zones))
	for _, z := range zones {
		summaries = append(summaries, models.ZoneSummary{
			ID:     z.ID,
			Name:   z.Name,
			Status: z.Status,
		})
	}

	c.JSON(http.StatusOK, models.ZoneListResponse{
		Zones: summaries,
		Count: len(summaries),
	})
}
