// Package handlers_test provides behavior tests for the API handlers,
// backed by an in-memory fake of the provider API.
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/cloudquota/cfpanel/internal/api/handlers"
	"github.com/cloudquota/cfpanel/internal/api/middleware"
	"github.com/cloudquota/cfpanel/internal/config"
	"github.com/cloudquota/cfpanel/internal/database"
	"github.com/cloudquota/cfpanel/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testToken = "valid-token"

type fakeRecord struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	TTL     int    `json:"ttl"`
	Proxied bool   `json:"proxied"`
}

// fakeProvider emulates the provider API: bearer auth, v4 envelopes, and an
// in-memory record set per zone. Mutations are counted so tests can assert
// that invalid panel input never reaches the provider.
type fakeProvider struct {
	mu        sync.Mutex
	zones     []map[string]string
	records   map[string][]fakeRecord
	nextID    int
	mutations int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		zones: []map[string]string{
			{"id": "zone-1", "name": "example.com", "status": "active"},
			{"id": "zone-2", "name": "example.org", "status": "active"},
		},
		records: map[string][]fakeRecord{},
	}
}

func (f *fakeProvider) mutationCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mutations
}

func (f *fakeProvider) recordCount(zoneID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records[zoneID])
}

func (f *fakeProvider) seed(zoneID string, recs ...fakeRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records[zoneID] = append(f.records[zoneID], recs...)
}

func writeEnvelope(w http.ResponseWriter, status int, result any, pages int) {
	body := map[string]any{
		"success":  status < 400,
		"errors":   []any{},
		"messages": []any{},
		"result":   result,
	}
	if pages > 0 {
		body["result_info"] = map[string]any{"page": 1, "per_page": 100, "total_pages": pages}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeAPIError(w http.ResponseWriter, status, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"errors":  []map[string]any{{"code": code, "message": message}},
	})
}

func (f *fakeProvider) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		writeAPIError(w, http.StatusUnauthorized, 10000, "Invalid API Token")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/")
	parts := strings.Split(path, "/")

	switch {
	case r.Method == http.MethodGet && path == "zones":
		writeEnvelope(w, http.StatusOK, f.zones, 1)

	case r.Method == http.MethodGet && len(parts) == 2 && parts[0] == "zones":
		for _, z := range f.zones {
			if z["id"] == parts[1] {
				writeEnvelope(w, http.StatusOK, z, 0)
				return
			}
		}
		writeAPIError(w, http.StatusNotFound, 7003, "No route for that URI")

	case len(parts) == 3 && parts[0] == "zones" && parts[2] == "dns_records":
		zoneID := parts[1]
		switch r.Method {
		case http.MethodGet:
			recs := f.records[zoneID]
			if recs == nil {
				recs = []fakeRecord{}
			}
			writeEnvelope(w, http.StatusOK, recs, 1)
		case http.MethodPost:
			f.mutations++
			var rec fakeRecord
			if err := json.NewDecoder(r.Body).Decode(&rec); err != nil || rec.Content == "" || rec.Content == "reject-me" {
				writeAPIError(w, http.StatusBadRequest, 9005, "Content for A record is invalid")
				return
			}
			// A failed envelope on a 200 response, as some provider
			// endpoints produce.
			if rec.Content == "stale-view" {
				writeAPIError(w, http.StatusOK, 9103, "temporarily unavailable")
				return
			}
			f.nextID++
			rec.ID = fmt.Sprintf("rec-%d", f.nextID)
			f.records[zoneID] = append(f.records[zoneID], rec)
			writeEnvelope(w, http.StatusOK, rec, 0)
		default:
			writeAPIError(w, http.StatusMethodNotAllowed, 7000, "method not allowed")
		}

	case len(parts) == 4 && parts[0] == "zones" && parts[2] == "dns_records":
		zoneID, recordID := parts[1], parts[3]
		switch r.Method {
		case http.MethodPut:
			f.mutations++
			var rec fakeRecord
			if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
				writeAPIError(w, http.StatusBadRequest, 9005, "invalid record body")
				return
			}
			for i, existing := range f.records[zoneID] {
				if existing.ID == recordID {
					rec.ID = recordID
					f.records[zoneID][i] = rec
					writeEnvelope(w, http.StatusOK, rec, 0)
					return
				}
			}
			writeAPIError(w, http.StatusNotFound, 81044, "Record does not exist")
		case http.MethodDelete:
			f.mutations++
			for i, existing := range f.records[zoneID] {
				if existing.ID == recordID {
					f.records[zoneID] = append(f.records[zoneID][:i], f.records[zoneID][i+1:]...)
					writeEnvelope(w, http.StatusOK, map[string]string{"id": recordID}, 0)
					return
				}
			}
			writeAPIError(w, http.StatusNotFound, 81044, "Record does not exist")
		default:
			writeAPIError(w, http.StatusMethodNotAllowed, 7000, "method not allowed")
		}

	default:
		writeAPIError(w, http.StatusNotFound, 7003, "No route for that URI")
	}
}

// testEnv wires a router the same way api.RegisterRoutes does, against the
// fake provider.
type testEnv struct {
	router   *gin.Engine
	provider *fakeProvider
	server   *httptest.Server
	sessions *session.Store
	cookie   *http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithDB(t, nil)
}

func newTestEnvWithDB(t *testing.T, db *database.DB) *testEnv {
	t.Helper()

	provider := newFakeProvider()
	srv := httptest.NewServer(provider)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Cloudflare.APIBase = srv.URL
	require.NoError(t, cfg.Validate())

	sessions := session.NewStore(time.Hour)
	h := handlers.New(cfg, db, sessions, nil)

	router := gin.New()
	router.GET("/api/v1/health", h.Health)
	router.POST("/api/v1/session", h.CreateSession)
	router.GET("/api/v1/session", h.GetSession)
	router.DELETE("/api/v1/session", h.DeleteSession)

	authed := router.Group("/api/v1")
	authed.Use(middleware.RequireSession(sessions))
	authed.GET("/stats", h.Stats)
	authed.GET("/audit", h.Audit)
	authed.GET("/zones", h.ListZones)
	authed.GET("/zones/:zoneID/records", h.ListRecords)
	authed.POST("/zones/:zoneID/records", h.CreateRecord)
	authed.PUT("/zones/:zoneID/records/:recordID", h.UpdateRecord)
	authed.DELETE("/zones/:zoneID/records/:recordID", h.DeleteRecord)

	return &testEnv{router: router, provider: provider, server: srv, sessions: sessions}
}

// login opens a session with the valid token and keeps the cookie for
// subsequent requests.
func (env *testEnv) login(t *testing.T) {
	t.Helper()
	w := env.perform(t, http.MethodPost, "/api/v1/session", `{"token":"`+testToken+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			env.cookie = c
			return
		}
	}
	t.Fatal("no session cookie issued")
}

func (env *testEnv) perform(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if env.cookie != nil {
		req.AddCookie(env.cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
