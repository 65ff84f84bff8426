package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cloudquota/cfpanel/internal/api/middleware"
	"github.com/cloudquota/cfpanel/internal/api/models"
	"github.com/cloudquota/cfpanel/internal/cloudflare"
	"github.com/cloudquota/cfpanel/internal/database"
)

// ListRecords godoc
// @Summary List DNS records
// @Description Returns the zone's records, fetched live from the provider. Supports a case-insensitive search over name/content and a proxied-only filter.
// @Tags records
// @Produce json
// @Param zoneID path string true "Zone ID"
// @Param search query string false "Substring match on record name or content"
// @Param proxied query bool false "Only return proxied records"
// @Success 200 {object} models.RecordListResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones/{zoneID}/records [get]
func (h *Handler) ListRecords(c *gin.Context) {
	zoneID := c.Param("zoneID")

	records, err := h.client(middleware.Token(c)).ListRecords(c.Request.Context(), zoneID)
	if err != nil {
		h.renderProviderError(c, err)
		return
	}

	onlyProxied := c.Query("proxied") == "true"
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	out := make([]models.RecordResponse, 0, len(records))
	for _, r := range records {
		if onlyProxied && !r.Proxied {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.Content), search) {
			continue
		}
		out = append(out, recordResponse(r))
	}

	c.JSON(http.StatusOK, models.RecordListResponse{Records: out, Count: len(out)})
}

// CreateRecord godoc
// @Summary Create a DNS record
// @Description Creates a record in the zone. Type, name and content are required; validation failures never reach the provider.
// @Tags records
// @Accept json
// @Produce json
// @Param zoneID path string true "Zone ID"
// @Param record body models.RecordWriteRequest true "Record to create"
// @Success 201 {object} models.RecordOperationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones/{zoneID}/records [post]
func (h *Handler) CreateRecord(c *gin.Context) {
	zoneID := c.Param("zoneID")

	req, ok := bindRecordRequest(c)
	if !ok {
		return
	}

	created, err := h.client(middleware.Token(c)).CreateRecord(c.Request.Context(), zoneID, cloudflare.Record{
		Type:    req.Type,
		Name:    req.Name,
		Content: req.Content,
		TTL:     req.TTL,
		Proxied: req.Proxied,
	})
	if err != nil {
		h.renderProviderError(c, err)
		return
	}

	h.audit(database.AuditEntry{
		Action:     database.ActionRecordCreate,
		ZoneID:     zoneID,
		ZoneName:   h.zoneName(c, zoneID),
		RecordID:   created.ID,
		RecordType: created.Type,
		RecordName: created.Name,
		Detail:     created.Content,
	})

	resp := recordResponse(*created)
	c.JSON(http.StatusCreated, models.RecordOperationResponse{
		Message: "record created",
		Record:  &resp,
	})
}

// UpdateRecord godoc
// @Summary Update a DNS record
// @Description Replaces the record's fields. Same validation and failure handling as create.
// @Tags records
// @Accept json
// @Produce json
// @Param zoneID path string true "Zone ID"
// @Param recordID path string true "Record ID"
// @Param record body models.RecordWriteRequest true "Updated record"
// @Success 200 {object} models.RecordOperationResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones/{zoneID}/records/{recordID} [put]
func (h *Handler) UpdateRecord(c *gin.Context) {
	zoneID := c.Param("zoneID")
	recordID := c.Param("recordID")

	req, ok := bindRecordRequest(c)
	if !ok {
		return
	}

	updated, err := h.client(middleware.Token(c)).UpdateRecord(c.Request.Context(), zoneID, recordID, cloudflare.Record{
		Type:    req.Type,
		Name:    req.Name,
		Content: req.Content,
		TTL:     req.TTL,
		Proxied: req.Proxied,
	})
	if err != nil {
		h.renderProviderError(c, err)
		return
	}

	h.audit(database.AuditEntry{
		Action:     database.ActionRecordUpdate,
		ZoneID:     zoneID,
		ZoneName:   h.zoneName(c, zoneID),
		RecordID:   recordID,
		RecordType: updated.Type,
		RecordName: updated.Name,
		Detail:     updated.Content,
	})

	resp := recordResponse(*updated)
	c.JSON(http.StatusOK, models.RecordOperationResponse{
		Message: "record updated",
		Record:  &resp,
	})
}

// DeleteRecord godoc
// @Summary Delete a DNS record
// @Description Deletes the record. The browser UI asks for confirmation before calling this.
// @Tags records
// @Produce json
// @Param zoneID path string true "Zone ID"
// @Param recordID path string true "Record ID"
// @Success 200 {object} models.RecordOperationResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /zones/{zoneID}/records/{recordID} [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	zoneID := c.Param("zoneID")
	recordID := c.Param("recordID")

	if err := h.client(middleware.Token(c)).DeleteRecord(c.Request.Context(), zoneID, recordID); err != nil {
		h.renderProviderError(c, err)
		return
	}

	h.audit(database.AuditEntry{
		Action:   database.ActionRecordDelete,
		ZoneID:   zoneID,
		ZoneName: h.zoneName(c, zoneID),
		RecordID: recordID,
	})

	c.JSON(http.StatusOK, models.RecordOperationResponse{Message: "record deleted"})
}

// bindRecordRequest parses and validates a create/update body. On failure it
// writes the 400 response and returns ok=false; no provider call happens.
func bindRecordRequest(c *gin.Context) (models.RecordWriteRequest, bool) {
	var req models.RecordWriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "type, name and content are required"})
		return req, false
	}

	req.Type = strings.TrimSpace(req.Type)
	req.Name = strings.TrimSpace(req.Name)
	req.Content = strings.TrimSpace(req.Content)

	if req.Type == "" || req.Name == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "type, name and content are required"})
		return req, false
	}
	if !cloudflare.IsValidRecordType(req.Type) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unsupported record type: " + req.Type})
		return req, false
	}
	if req.TTL == 0 {
		req.TTL = 1 // automatic
	}
	return req, true
}

func recordResponse(r cloudflare.Record) models.RecordResponse {
	return models.RecordResponse{
		ID:      r.ID,
		Type:    r.Type,
		Name:    r.Name,
		Content: r.Content,
		TTL:     r.TTL,
		Proxied: r.Proxied,
	}
}
