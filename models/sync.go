// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncMode distinguishes full and incremental runs.
type SyncMode string

const (
	FullSync        SyncMode = "full"
	IncrementalSync SyncMode = "incremental"
)

// SyncResult aggregates the outcome of one sync run for an owner.
type SyncResult struct {
	OwnerID    int64     `json:"owner_id"`
	Mode       SyncMode  `json:"mode"`
	Since      time.Time `json:"since,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Synced    int `json:"synced"`
	Conflicts int `json:"conflicts"`
	Errors    int `json:"errors"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Deleted   int `json:"deleted"`
}

// Add folds other's counters into r.
func (r *SyncResult) Add(other SyncResult) {
	r.Synced += other.Synced
	r.Conflicts += other.Conflicts
	r.Errors += other.Errors
	r.Created += other.Created
	r.Updated += other.Updated
	r.Deleted += other.Deleted
}

// Count records one audit outcome in the counters.
func (r *SyncResult) Count(op Operation, status Status) {
	switch status {
	case StatusConflict:
		r.Conflicts++
		return
	case StatusFailed:
		r.Errors++
		return
	case StatusSuccess:
		r.Synced++
	default:
		return
	}

	switch op {
	case OperationCreate:
		r.Created++
	case OperationUpdate:
		r.Updated++
	case OperationDelete:
		r.Deleted++
	}
}
