package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudquota/cfpanel/internal/api/models"
)

// ============================================================================
// Listing Tests
// ============================================================================

func TestListRecords_MatchesProviderState(t *testing.T) {
	env := newTestEnv(t)
	env.provider.seed("zone-1",
		fakeRecord{ID: "rec-a", Type: "A", Name: "www.example.com", Content: "1.2.3.4", TTL: 300, Proxied: true},
		fakeRecord{ID: "rec-b", Type: "TXT", Name: "example.com", Content: "v=spf1 -all", TTL: 1},
	)
	env.login(t)

	w := env.perform(t, http.MethodGet, "/api/v1/zones/zone-1/records", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.RecordListResponse](t, w)
	assert.Equal(t, env.provider.recordCount("zone-1"), resp.Count)
	require.Len(t, resp.Records, 2)
	assert.Equal(t, "rec-a", resp.Records[0].ID)
}

func TestListRecords_EmptyZone(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	w := env.perform(t, http.MethodGet, "/api/v1/zones/zone-2/records", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.RecordListResponse](t, w)
	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Records)
}

func TestListRecords_SearchFilter(t *testing.T) {
	env := newTestEnv(t)
	env.provider.seed("zone-1",
		fakeRecord{ID: "rec-a", Type: "A", Name: "blog.example.com", Content: "1.2.3.4", TTL: 300},
		fakeRecord{ID: "rec-b", Type: "A", Name: "shop.example.com", Content: "5.6.7.8", TTL: 300},
		fakeRecord{ID: "rec-c", Type: "TXT", Name: "example.com", Content: "includes BLOG token", TTL: 1},
	)
	env.login(t)

	w := env.perform(t, http.MethodGet, "/api/v1/zones/zone-1/records?search=blog", "")
	require.Equal(t, http.StatusOK, w.Code)

	// Case-insensitive, matches name or content.
	resp := decode[models.RecordListResponse](t, w)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "rec-a", resp.Records[0].ID)
	assert.Equal(t, "rec-c", resp.Records[1].ID)
}

func TestListRecords_ProxiedFilter(t *testing.T) {
	env := newTestEnv(t)
	env.provider.seed("zone-1",
		fakeRecord{ID: "rec-a", Type: "A", Name: "www.example.com", Content: "1.2.3.4", TTL: 300, Proxied: true},
		fakeRecord{ID: "rec-b", Type: "A", Name: "direct.example.com", Content: "5.6.7.8", TTL: 300},
	)
	env.login(t)

	w := env.perform(t, http.MethodGet, "/api/v1/zones/zone-1/records?proxied=true", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.RecordListResponse](t, w)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "rec-a", resp.Records[0].ID)
	assert.True(t, resp.Records[0].Proxied)
}

// ============================================================================
// Create Tests
// ============================================================================

func TestCreateRecord_ThenListIncludesItOnce(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	w := env.perform(t, http.MethodPost, "/api/v1/zones/zone-1/records",
		`{"type":"A","name":"test.example.com","content":"1.2.3.4","ttl":300}`)
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode[models.RecordOperationResponse](t, w)
	require.NotNil(t, created.Record)
	assert.NotEmpty(t, created.Record.ID)
	assert.Equal(t, "test.example.com", created.Record.Name)
	assert.Equal(t, "1.2.3.4", created.Record.Content)
	assert.Equal(t, 300, created.Record.TTL)

	w = env.perform(t, http.MethodGet, "/api/v1/zones/zone-1/records", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.RecordListResponse](t, w)
	matches := 0
	for _, r := range resp.Records {
		if r.Name == "test.example.com" && r.Content == "1.2.3.4" && r.TTL == 300 {
			assert.Equal(t, created.Record.ID, r.ID)
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestCreateRecord_EmptyFieldNeverReachesProvider(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	bodies := []string{
		`{"type":"","name":"test.example.com","content":"1.2.3.4"}`,
		`{"type":"A","name":"","content":"1.2.3.4"}`,
		`{"type":"A","name":"test.example.com","content":""}`,
		`{"type":"A","name":"   ","content":"1.2.3.4"}`,
		`{}`,
		`not even json`,
	}
	for _, body := range bodies {
		w := env.perform(t, http.MethodPost, "/api/v1/zones/zone-1/records", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}

	assert.Equal(t, 0, env.provider.mutationCount())
	assert.Zero(t, env.provider.recordCount("zone-1"))
}

func TestCreateRecord_UnsupportedType(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	w := env.perform(t, http.MethodPost, "/api/v1/zones/zone-1/records",
		`{"type":"PTR","name":"4.3.2.1.in-addr.arpa","content":"test.example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, env.provider.mutationCount())
}

func TestCreateRecord_ZeroTTLBecomesAutomatic(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	w := env.perform(t, http.MethodPost, "/api/v1/zones/zone-1/records",
		`{"type":"A","name":"auto.example.com","content":"1.2.3.4"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decode[models.RecordOperationResponse](t, w)
	require.NotNil(t, resp.Record)
	assert.Equal(t, 1, resp.Record.TTL)
}

func TestCreateRecord_ProviderErrorSurfacedVerbatim(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	// "reject-me" passes panel validation but the provider refuses it.
	w := env.perform(t, http.MethodPost, "/api/v1/zones/zone-1/records",
		`{"type":"A","name":"bad.example.com","content":"reject-me","ttl":300}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "[9005] Content for A record is invalid", resp.Error)
}

// ============================================================================
// Update Tests
// ============================================================================

func TestUpdateRecord_ChangesFields(t *testing.T) {
	env := newTestEnv(t)
	env.provider.seed("zone-1",
		fakeRecord{ID: "rec-a", Type: "A", Name: "www.example.com", Content: "1.2.3.4", TTL: 300},
	)
	env.login(t)

	w := env.perform(t, http.MethodPut, "/api/v1/zones/zone-1/records/rec-a",
		`{"type":"A","name":"www.example.com","content":"9.9.9.9","ttl":600,"proxied":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.RecordOperationResponse](t, w)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "9.9.9.9", resp.Record.Content)
	assert.Equal(t, 600, resp.Record.TTL)
	assert.True(t, resp.Record.Proxied)

	list := decode[models.RecordListResponse](t, env.perform(t, http.MethodGet, "/api/v1/zones/zone-1/records", ""))
	require.Len(t, list.Records, 1)
	assert.Equal(t, "9.9.9.9", list.Records[0].Content)
}

func TestUpdateRecord_EmptyFieldNeverReachesProvider(t *testing.T) {
	env := newTestEnv(t)
	env.provider.seed("zone-1",
		fakeRecord{ID: "rec-a", Type: "A", Name: "www.example.com", Content: "1.2.3.4", TTL: 300},
	)
	env.login(t)

	w := env.perform(t, http.MethodPut, "/api/v1/zones/zone-1/records/rec-a",
		`{"type":"A","name":"www.example.com","content":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, env.provider.mutationCount())
}

func TestUpdateRecord_MissingRecord(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	w := env.perform(t, http.MethodPut, "/api/v1/zones/zone-1/records/nope",
		`{"type":"A","name":"www.example.com","content":"1.2.3.4"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Contains(t, resp.Error, "Record does not exist")
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestDeleteRecord_RemovedFromNextListing(t *testing.T) {
	env := newTestEnv(t)
	env.provider.seed("zone-1",
		fakeRecord{ID: "rec-a", Type: "A", Name: "www.example.com", Content: "1.2.3.4", TTL: 300},
		fakeRecord{ID: "rec-b", Type: "A", Name: "mail.example.com", Content: "5.6.7.8", TTL: 300},
	)
	env.login(t)

	w := env.perform(t, http.MethodDelete, "/api/v1/zones/zone-1/records/rec-a", "")
	require.Equal(t, http.StatusOK, w.Code)

	list := decode[models.RecordListResponse](t, env.perform(t, http.MethodGet, "/api/v1/zones/zone-1/records", ""))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "rec-b", list.Records[0].ID)
}

func TestDeleteRecord_MissingRecord(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	w := env.perform(t, http.MethodDelete, "/api/v1/zones/zone-1/records/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
