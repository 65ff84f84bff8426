// Package cloudflare implements the subset of the Cloudflare v4 API the
// panel consumes: zone listing and DNS record CRUD.
//
// Every call is a live round trip. The panel holds no copy of provider
// state, so there is no cache and no retry here; failures are returned to
// the caller for display.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

const (
	zonesPerPage   = 50
	recordsPerPage = 100
)

// Client is a Cloudflare API client bound to a single API token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a client for the given API base URL and bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one API round trip and returns the decoded envelope.
// A transport or decode failure wraps ErrNetwork; a non-success envelope
// or HTTP status becomes an *APIError carrying the provider's messages.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (*envelope, error) {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		return nil, &APIError{StatusCode: resp.StatusCode, Messages: env.Errors}
	}
	return &env, nil
}

// VerifyToken checks the token by listing the first page of zones.
// A token without Zone:Read scope fails here instead of later.
func (c *Client) VerifyToken(ctx context.Context) error {
	q := url.Values{}
	q.Set("page", "1")
	q.Set("per_page", "1")
	_, err := c.do(ctx, http.MethodGet, "/zones", q, nil)
	return err
}

// ListZones fetches all zones on the account, walking every page.
// The result is sorted by zone name.
func (c *Client) ListZones(ctx context.Context) ([]Zone, error) {
	var zones []Zone
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(zonesPerPage))

		env, err := c.do(ctx, http.MethodGet, "/zones", q, nil)
		if err != nil {
			return nil, err
		}

		var batch []Zone
		if err := json.Unmarshal(env.Result, &batch); err != nil {
			return nil, fmt.Errorf("%w: decode zones: %v", ErrNetwork, err)
		}
		zones = append(zones, batch...)

		if env.ResultInfo == nil || page >= env.ResultInfo.TotalPages {
			break
		}
	}

	sort.Slice(zones, func(i, j int) bool { return zones[i].Name < zones[j].Name })
	return zones, nil
}

// GetZone fetches a single zone's details.
func (c *Client) GetZone(ctx context.Context, zoneID string) (*Zone, error) {
	env, err := c.do(ctx, http.MethodGet, "/zones/"+zoneID, nil, nil)
	if err != nil {
		return nil, err
	}
	var zone Zone
	if err := json.Unmarshal(env.Result, &zone); err != nil {
		return nil, fmt.Errorf("%w: decode zone: %v", ErrNetwork, err)
	}
	return &zone, nil
}

// ListRecords fetches the DNS records of a zone.
func (c *Client) ListRecords(ctx context.Context, zoneID string) ([]Record, error) {
	var records []Record
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(recordsPerPage))

		env, err := c.do(ctx, http.MethodGet, "/zones/"+zoneID+"/dns_records", q, nil)
		if err != nil {
			return nil, err
		}

		var batch []Record
		if err := json.Unmarshal(env.Result, &batch); err != nil {
			return nil, fmt.Errorf("%w: decode records: %v", ErrNetwork, err)
		}
		records = append(records, batch...)

		if env.ResultInfo == nil || page >= env.ResultInfo.TotalPages {
			break
		}
	}
	return records, nil
}

// CreateRecord creates a DNS record and returns it with its assigned ID.
func (c *Client) CreateRecord(ctx context.Context, zoneID string, record Record) (*Record, error) {
	record.ID = ""
	env, err := c.do(ctx, http.MethodPost, "/zones/"+zoneID+"/dns_records", nil, record)
	if err != nil {
		return nil, err
	}
	var created Record
	if err := json.Unmarshal(env.Result, &created); err != nil {
		return nil, fmt.Errorf("%w: decode created record: %v", ErrNetwork, err)
	}
	return &created, nil
}

// UpdateRecord replaces an existing record's fields.
func (c *Client) UpdateRecord(ctx context.Context, zoneID, recordID string, record Record) (*Record, error) {
	record.ID = ""
	env, err := c.do(ctx, http.MethodPut, "/zones/"+zoneID+"/dns_records/"+recordID, nil, record)
	if err != nil {
		return nil, err
	}
	var updated Record
	if err := json.Unmarshal(env.Result, &updated); err != nil {
		return nil, fmt.Errorf("%w: decode updated record: %v", ErrNetwork, err)
	}
	return &updated, nil
}

// DeleteRecord removes a record from the zone.
func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/zones/"+zoneID+"/dns_records/"+recordID, nil, nil)
	return err
}
