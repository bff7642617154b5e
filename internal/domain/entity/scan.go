package entity

import (
	"crypto/sha256"
	"encoding/hex"
)

// ScanState is a step of the scan workflow state machine.
type ScanState string

const (
	ScanStateIdle              ScanState = "idle"
	ScanStateQuotaChecked      ScanState = "quota_checked"
	ScanStatePackaged          ScanState = "packaged"
	ScanStateSubmitted         ScanState = "submitted"
	ScanStateSucceeded         ScanState = "succeeded"
	ScanStateFallbackSucceeded ScanState = "fallback_succeeded"
	ScanStateFailed            ScanState = "failed"
)

// Terminal reports whether the state ends the workflow.
func (s ScanState) Terminal() bool {
	switch s {
	case ScanStateSucceeded, ScanStateFallbackSucceeded, ScanStateFailed:
		return true
	default:
		return false
	}
}

// ScanResult is the outcome of one scan attempt. The attempt itself is
// ephemeral; only the history record persists.
type ScanResult struct {
	State    ScanState      `json:"state"`
	Fallback bool           `json:"fallback"` // True when the payload was synthesized offline.
	Record   *HistoryRecord `json:"record,omitempty"`
}

// EncodedImage is a packaged, transport-safe photo produced by the image
// packager. Data is always JPEG under the configured hard ceiling.
type EncodedImage struct {
	Data    []byte `json:"-"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Quality int    `json:"quality"` // JPEG quality of the final encode pass.
	Passes  int    `json:"passes"`  // Encode passes taken (1 or 2).
}

// Size returns the encoded payload size in bytes.
func (e *EncodedImage) Size() int {
	return len(e.Data)
}

// Digest returns the hex SHA-256 of the encoded payload. The fallback
// generator uses it as a deterministic seed.
func (e *EncodedImage) Digest() string {
	sum := sha256.Sum256(e.Data)

	return hex.EncodeToString(sum[:])
}
