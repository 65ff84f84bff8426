package models

// RecordResponse is one DNS record as returned by the provider.
type RecordResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Content string `json:"content"`
	TTL     int    `json:"ttl"`
	Proxied bool   `json:"proxied"`
}

// RecordListResponse contains a zone's records after server-side filtering.
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
	Count   int              `json:"count"`
}

// RecordWriteRequest is the body for creating or updating a record.
// Type, name and content must be non-empty; an invalid body never reaches
// the provider.
type RecordWriteRequest struct {
	Type    string `json:"type" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
	TTL     int    `json:"ttl"`
	Proxied bool   `json:"proxied"`
}

// RecordOperationResponse reports a successful mutation.
type RecordOperationResponse struct {
	Message string          `json:"message"`
	Record  *RecordResponse `json:"record,omitempty"`
}
