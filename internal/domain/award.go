package domain

import "time"

// UserStamp records that a trainer holds a stamp. Insert-only; at most one
// per (user, stamp).
type UserStamp struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	StampID      string    `json:"stamp_id"`
	CollectionID string    `json:"collection_id"`
	EventID      string    `json:"event_id"`
	AwardedBy    string    `json:"awarded_by"`
	AwardedAt    time.Time `json:"awarded_at"`
	ClaimCode    string    `json:"claim_code"`
}

// TrainerMatch is the result of resolving a trainer code during an award.
type TrainerMatch struct {
	UserID      string `json:"user_id"`
	TrainerName string `json:"trainer_name"`
}

// AuditLogFilter narrows the award log. Name filters resolve to row IDs
// before the main query runs.
type AuditLogFilter struct {
	AwardedOn      string // YYYY-MM-DD, matches the whole day
	StampName      string
	CollectionName string
	EventName      string
	DeliveredTo    string
	DeliveredBy    string
	ClaimCode      string
	Page           int
}

// AuditLogEntry is one row of the award log with every ID resolved to its
// display name.
type AuditLogEntry struct {
	ID             string    `json:"id"`
	AwardedAt      time.Time `json:"awarded_at"`
	ClaimCode      string    `json:"claim_code"`
	EventName      string    `json:"event_name"`
	CollectionName string    `json:"collection_name"`
	StampName      string    `json:"stamp_name"`
	DeliveredTo    string    `json:"delivered_to"`
	DeliveredBy    string    `json:"delivered_by"`
}

// AuditLogPage is one page of log entries plus the exact total.
type AuditLogPage struct {
	Entries    []AuditLogEntry `json:"entries"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}
