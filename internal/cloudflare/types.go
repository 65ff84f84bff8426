package cloudflare

import "encoding/json"

// RecordTypes lists the DNS record types the panel can manage.
var RecordTypes = []string{"A", "AAAA", "CNAME", "TXT", "MX", "NS", "SRV", "CAA"}

// TTLOptions lists the TTL values Cloudflare accepts through the panel.
// A TTL of 1 means "automatic".
var TTLOptions = []int{1, 60, 120, 300, 600, 1800, 3600, 7200, 86400}

// IsValidRecordType reports whether t is a record type the panel manages.
func IsValidRecordType(t string) bool {
	for _, rt := range RecordTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Zone is a managed domain within the Cloudflare account.
type Zone struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// Record is a single DNS entry within a zone.
type Record struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	TTL     int    `json:"ttl"`
	Proxied bool   `json:"proxied"`
}

// apiMessage is a single entry in the envelope's errors/messages arrays.
type apiMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// envelope is the Cloudflare v4 response wrapper. Result stays raw until
// the caller knows its concrete shape.
type envelope struct {
	Success    bool            `json:"success"`
	Errors     []apiMessage    `json:"errors"`
	Messages   []apiMessage    `json:"messages"`
	Result     json.RawMessage `json:"result"`
	ResultInfo *resultInfo     `json:"result_info,omitempty"`
}

// resultInfo carries pagination metadata for list responses.
type resultInfo struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	Count      int `json:"count"`
	TotalCount int `json:"total_count"`
}
