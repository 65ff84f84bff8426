package handlers

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/cloudquota/cfpanel/internal/api/models"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, models.StatusResponse{Status: "audit database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines, live sessions and host metrics
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		Sessions:      h.sessions.Len(),
	}

	if h.db != nil {
		if n, err := h.db.CountAudit(); err == nil {
			resp.AuditEntries = n
		}
	}

	// Host metrics are best effort; the panel works without them.
	if vm, err := mem.VirtualMemory(); err == nil {
		host := &models.HostStatsResponse{
			MemoryTotalMB: float64(vm.Total) / 1024 / 1024,
			MemoryUsedPct: vm.UsedPercent,
		}
		if n, err := cpu.Counts(true); err == nil {
			host.LogicalCPUCount = n
		}
		resp.Host = host
	}

	c.JSON(http.StatusOK, resp)
}

// Audit godoc
// @Summary Recent audit entries
// @Description Returns the newest panel mutations, most recent first
// @Tags system
// @Produce json
// @Param limit query int false "Maximum entries to return (default 100)"
// @Success 200 {object} models.AuditListResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /audit [get]
func (h *Handler) Audit(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, models.AuditListResponse{Entries: []models.AuditEntry{}, Count: 0})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	entries, err := h.db.RecentAudit(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read audit log"})
		return
	}

	out := make([]models.AuditEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.AuditEntry{
			ID:         e.ID,
			Action:     e.Action,
			ZoneID:     e.ZoneID,
			ZoneName:   e.ZoneName,
			RecordID:   e.RecordID,
			RecordType: e.RecordType,
			RecordName: e.RecordName,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, models.AuditListResponse{Entries: out, Count: len(out)})
}
