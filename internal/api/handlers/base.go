// Package handlers implements the REST API endpoint handlers for cfpanel.
//
// REST API Endpoints:
//
// Session (credential lifecycle, token never persisted):
//   - POST /api/v1/session - Verify an API token and open a session
//   - GET /api/v1/session - Check whether the browser has a live session
//   - DELETE /api/v1/session - Drop the session and its token
//
// Zones and records (live views of provider state):
//   - GET /api/v1/zones - List all zones on the account
//   - GET /api/v1/zones/:zoneID/records - List records (search/proxied filters)
//   - POST /api/v1/zones/:zoneID/records - Create a record
//   - PUT /api/v1/zones/:zoneID/records/:recordID - Update a record
//   - DELETE /api/v1/zones/:zoneID/records/:recordID - Delete a record
//
// System:
//   - GET /api/v1/health - Health check status
//   - GET /api/v1/stats - Runtime statistics (uptime, memory, sessions)
//   - GET /api/v1/audit - Recent audit log entries
//
// All zone, record, stats and audit endpoints require a session cookie
// obtained from POST /session. Every record listing is fetched from the
// provider on demand; the panel holds no copy of DNS state.
//
// @title cfpanel Management API
// @version 1.0
// @description REST API backing the Cloudflare DNS panel UI.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8080
// @BasePath /api/v1
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cloudquota/cfpanel/internal/api/middleware"
	"github.com/cloudquota/cfpanel/internal/cloudflare"
	"github.com/cloudquota/cfpanel/internal/config"
	"github.com/cloudquota/cfpanel/internal/database"
	"github.com/cloudquota/cfpanel/internal/session"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	cfg       *config.Config
	db        *database.DB
	sessions  *session.Store
	logger    *slog.Logger
	startTime time.Time

	// httpClient is shared by all per-token provider clients.
	httpClient *http.Client
}

// New creates a new Handler. db may be nil when the audit log is disabled.
func New(cfg *config.Config, db *database.DB, sessions *session.Store, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:        cfg,
		db:         db,
		sessions:   sessions,
		logger:     logger,
		startTime:  time.Now(),
		httpClient: &http.Client{Timeout: cfg.CloudflareTimeout()},
	}
}

// client builds a provider client bound to the given session token.
func (h *Handler) client(token string) *cloudflare.Client {
	return cloudflare.New(h.cfg.Cloudflare.APIBase, token, cloudflare.WithHTTPClient(h.httpClient))
}

// audit appends an audit entry, logging instead of failing the request
// when the log is unavailable.
func (h *Handler) audit(e database.AuditEntry) {
	if h.db == nil {
		return
	}
	if err := h.db.AppendAudit(e); err != nil && h.logger != nil {
		h.logger.Warn("audit append failed", "action", e.Action, "err", err)
	}
}

// zoneName resolves a zone ID to its name for audit entries. Best effort:
// the lookup is skipped when the audit log is disabled and an unreachable
// provider yields an empty name, never a failed request.
func (h *Handler) zoneName(c *gin.Context, zoneID string) string {
	if h.db == nil {
		return ""
	}
	zone, err := h.client(middleware.Token(c)).GetZone(c.Request.Context(), zoneID)
	if err != nil {
		return ""
	}
	return zone.Name
}
