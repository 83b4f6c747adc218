// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Operation is the kind of change a sync audit entry records.
type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
	OperationSync   Operation = "SYNC"
)

// Direction tells which side was written.
type Direction string

const (
	Inbound       Direction = "INBOUND"
	Outbound      Direction = "OUTBOUND"
	Bidirectional Direction = "BIDIRECTIONAL"
)

// Status is the outcome of a sync attempt.
type Status string

const (
	StatusSuccess  Status = "SUCCESS"
	StatusFailed   Status = "FAILED"
	StatusPending  Status = "PENDING"
	StatusConflict Status = "CONFLICT"
)

// ResolutionStrategy selects how an operator settles a conflict.
type ResolutionStrategy string

const (
	UseRemote ResolutionStrategy = "USE_REMOTE"
	UseLocal  ResolutionStrategy = "USE_LOCAL"
	Merge     ResolutionStrategy = "MERGE"
)

// Valid reports whether s is a known strategy.
func (s ResolutionStrategy) Valid() bool {
	switch s {
	case UseRemote, UseLocal, Merge:
		return true
	}
	return false
}

// ConflictData is persisted on CONFLICT entries. It holds everything the
// operator needs to settle the conflict later.
type ConflictData struct {
	RemoteSnapshot    Fields    `json:"remote_snapshot"`
	LocalSnapshot     Fields    `json:"local_snapshot"`
	ConflictingFields []string  `json:"conflicting_fields"`
	RemoteModifiedAt  time.Time `json:"remote_modified_at"`
}

// Value implements [driver.Valuer].
func (c *ConflictData) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements [sql.Scanner].
func (c *ConflictData) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into ConflictData", src)
	}
	return json.Unmarshal(raw, c)
}

// SyncAuditEntry is one row of the append-only sync audit log.
type SyncAuditEntry struct {
	ID             int64      `json:"id"`
	OwnerID        int64      `json:"owner_id"`
	ObjectType     ObjectType `json:"object_type"`
	RemoteObjectID string     `json:"remote_object_id,omitempty"`
	LocalObjectID  string     `json:"local_object_id,omitempty"`
	Operation      Operation  `json:"operation"`
	Direction      Direction  `json:"direction"`
	Status         Status     `json:"status"`

	ConflictData *ConflictData `json:"conflict_data,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`

	ProcessedAt time.Time `json:"processed_at"`
	CreatedAt   time.Time `json:"created_at"`

	ResolutionStrategy ResolutionStrategy `json:"resolution_strategy,omitempty"`
	ResolvedBy         string             `json:"resolved_by,omitempty"`
	ResolvedAt         *time.Time         `json:"resolved_at,omitempty"`
}

// ConflictRecord is the operator view of a CONFLICT entry.
type ConflictRecord struct {
	Entry             SyncAuditEntry `json:"entry"`
	RemoteSnapshot    Fields         `json:"remote_snapshot"`
	LocalSnapshot     Fields         `json:"local_snapshot"`
	ConflictingFields []string       `json:"conflicting_fields"`
}

// NewConflictRecord builds the view from a CONFLICT entry.
func NewConflictRecord(e SyncAuditEntry) ConflictRecord {
	rec := ConflictRecord{Entry: e}
	if e.ConflictData != nil {
		rec.RemoteSnapshot = e.ConflictData.RemoteSnapshot
		rec.LocalSnapshot = e.ConflictData.LocalSnapshot
		rec.ConflictingFields = e.ConflictData.ConflictingFields
	}
	return rec
}

// Resolution is recorded when a CONFLICT entry transitions to SUCCESS.
type Resolution struct {
	Strategy   ResolutionStrategy
	ResolvedBy string
	ResolvedAt time.Time
}

// ResolveRequest is the operator payload for resolving a conflict.
type ResolveRequest struct {
	Strategy  ResolutionStrategy `json:"strategy"`
	MergeData Fields             `json:"merge_data,omitempty"`
}

// AuditFilter narrows audit log listings.
type AuditFilter struct {
	OwnerID        int64
	Status         Status
	ObjectType     ObjectType
	RemoteObjectID string
	Limit          uint64
	Offset         uint64
}
