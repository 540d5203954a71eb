package dto

import "encoding/json"

// SaveSnapshotRequest is the body of a save call. Both fields are stored as-is.
type SaveSnapshotRequest struct {
	Stocks    json.RawMessage `json:"stocks" swaggertype:"array,object"`
	ScanStats json.RawMessage `json:"scanStats" swaggertype:"object"`
}

// Snapshot is the envelope persisted under the snapshot key and returned by load.
// A nil Timestamp together with empty Stocks is the "no data yet" state.
type Snapshot struct {
	Timestamp *int64          `json:"timestamp"`
	Stocks    json.RawMessage `json:"stocks" swaggertype:"array,object"`
	ScanStats json.RawMessage `json:"scanStats" swaggertype:"object"`
}

// EmptySnapshot returns the canonical state for a key that has never been written.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: nil,
		Stocks:    json.RawMessage("[]"),
		ScanStats: json.RawMessage("null"),
	}
}

// IsEmpty reports whether s is the "no data yet" state.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || s.Timestamp == nil
}

// SaveSnapshotResponse is returned by a successful save.
type SaveSnapshotResponse struct {
	Success bool `json:"success"`
}

// KVResponse is the envelope of the KV REST API. Result is null for a missing key.
type KVResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error,omitempty"`
}
