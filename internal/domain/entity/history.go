package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is the persisted, immutable result of one completed scan.
// Append-only; at most one record is created per completed scan, even under
// retry of the upstream analysis step.
type HistoryRecord struct {
	ID          uuid.UUID        `json:"id"`                     // Unique record identifier, also the remote document key.
	ImageRef    string           `json:"image_ref"`              // Opaque handle to the stored packaged image.
	Analysis    *AnalysisPayload `json:"analysis"`               // Opaque analysis content; the engine never interprets it.
	CreatedAt   time.Time        `json:"created_at"`             // Completion time; read-time sort key.
	PendingSync bool             `json:"pending_sync,omitempty"` // Set while the record is buffered locally awaiting the remote ack.
}

// SortHistoryNewestFirst orders records for display. Records are timestamped
// and sorted at read time, not write time; IDs break ties for stability.
func SortHistoryNewestFirst(records []*HistoryRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID.String() < records[j].ID.String()
		}

		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

// NewHistoryRecord creates a record for a completed scan.
func NewHistoryRecord(imageRef string, analysis *AnalysisPayload, now time.Time) *HistoryRecord {
	return &HistoryRecord{
		ID:        uuid.New(),
		ImageRef:  imageRef,
		Analysis:  analysis,
		CreatedAt: now,
	}
}
