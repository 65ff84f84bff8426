package database

import (
	"fmt"
	"time"
)

// Audit actions recorded by the panel.
const (
	ActionSessionOpen  = "session.open"
	ActionSessionClose = "session.close"
	ActionRecordCreate = "record.create"
	ActionRecordUpdate = "record.update"
	ActionRecordDelete = "record.delete"
)

// AuditEntry is one panel mutation.
type AuditEntry struct {
	ID         int64     `json:"id"`
	Action     string    `json:"action"`
	ZoneID     string    `json:"zone_id,omitempty"`
	ZoneName   string    `json:"zone_name,omitempty"`
	RecordID   string    `json:"record_id,omitempty"`
	RecordType string    `json:"record_type,omitempty"`
	RecordName string    `json:"record_name,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AppendAudit inserts a new audit entry.
func (db *DB) AppendAudit(e AuditEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		INSERT INTO audit_log (action, zone_id, zone_name, record_id, record_type, record_name, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.conn.Exec(query, e.Action, e.ZoneID, e.ZoneName, e.RecordID, e.RecordType, e.RecordName, e.Detail)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// RecentAudit returns the newest entries, most recent first.
func (db *DB) RecentAudit(limit int) ([]AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	query := `
		SELECT id, action, zone_id, zone_name, record_id, record_type, record_name, detail, created_at
		FROM audit_log
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := db.conn.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []AuditEntry
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.ZoneID, &e.ZoneName, &e.RecordID, &e.RecordType, &e.RecordName, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}
	return entries, nil
}

// CountAudit returns the total number of audit entries.
func (db *DB) CountAudit() (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var n int64
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM audit_log").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}
	return n, nil
}
