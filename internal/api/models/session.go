package models

// SessionCreateRequest carries the operator's Cloudflare API token.
// The token is verified against the provider before a session is issued
// and is never persisted.
type SessionCreateRequest struct {
	Token string `json:"token" binding:"required"`
}

// SessionResponse reports the outcome of opening or checking a session.
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}
