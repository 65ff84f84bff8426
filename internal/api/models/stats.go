package models

import "time"

// HostStatsResponse contains host-level metrics sourced from gopsutil.
type HostStatsResponse struct {
	MemoryTotalMB   float64 `json:"memory_total_mb"`
	MemoryUsedPct   float64 `json:"memory_used_pct"`
	LogicalCPUCount int     `json:"logical_cpu_count"`
}

// ServerStatsResponse contains panel runtime statistics.
type ServerStatsResponse struct {
	Uptime        string             `json:"uptime"`
	UptimeSeconds int64              `json:"uptime_seconds"`
	StartTime     time.Time          `json:"start_time"`
	GoRoutines    int                `json:"goroutines"`
	MemoryAllocMB float64            `json:"memory_alloc_mb"`
	Sessions      int                `json:"sessions"`
	AuditEntries  int64              `json:"audit_entries"`
	Host          *HostStatsResponse `json:"host,omitempty"`
}

// AuditListResponse contains recent audit log entries.
type AuditListResponse struct {
	Entries []AuditEntry `json:"entries"`
	Count   int          `json:"count"`
}

// AuditEntry is one recorded panel mutation.
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
