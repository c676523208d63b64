// Package storage defines persistence contracts for the console's own
// records. Flight data is never stored here; the flight API owns it.
package storage

import (
	"context"
	"time"
)

// Audit outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
	OutcomeSimulated = "simulated"
)

// AuditEntry records one admin mutation attempt.
type AuditEntry struct {
	ID        string
	Action    string
	Target    string
	Outcome   string
	Detail    string
	CreatedAt time.Time
}

// AuditStore persists admin mutation attempts.
type AuditStore interface {
	RecordAction(ctx context.Context, entry AuditEntry) error
	ListRecentActions(ctx context.Context, limit int) ([]AuditEntry, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	AuditStore
	Close() error
}
