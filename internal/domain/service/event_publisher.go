package service

import (
	"context"
	"time"
)

// ScanCompletedEvent is published after a scan reaches a terminal success
// state. Publishing is best-effort and never blocks the scan outcome.
type ScanCompletedEvent struct {
	RecordID     string    `json:"record_id"`
	IdentityKind string    `json:"identity_kind"`
	Fallback     bool      `json:"fallback"`
	CompletedAt  time.Time `json:"completed_at"`
}

// EventPublisher publishes scan lifecycle events.
type EventPublisher interface {
	PublishScanCompleted(ctx context.Context, event *ScanCompletedEvent) error
	Close() error
}
