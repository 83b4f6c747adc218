// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ChangeType is the kind of remote change announced by a webhook.
type ChangeType string

const (
	ChangeCreate   ChangeType = "CREATE"
	ChangeUpdate   ChangeType = "UPDATE"
	ChangeDelete   ChangeType = "DELETE"
	ChangeUndelete ChangeType = "UNDELETE"
)

// WebhookEvent is a single decoded push notification. It is never persisted.
type WebhookEvent struct {
	EventType        string     `json:"event_type"`
	ChangeType       ChangeType `json:"change_type"`
	RemoteObjectID   string     `json:"object_id"`
	RemoteObjectType string     `json:"object_type,omitempty"`
	ChangedFields    []string   `json:"changed_fields,omitempty"`
	RemoteTimestamp  time.Time  `json:"-"`

	// CommitTimestamp is the wire form of RemoteTimestamp in Unix milliseconds.
	CommitTimestamp int64 `json:"commit_timestamp,omitempty"`
}

// VerificationResult is the outcome of webhook signature verification.
type VerificationResult struct {
	Valid  bool
	Reason string
}

// WebhookOutcome summarizes what processing one event did.
type WebhookOutcome struct {
	ObjectType ObjectType `json:"object_type,omitempty"`
	Ignored    bool       `json:"ignored"`
	Reason     string     `json:"reason,omitempty"`
	Owners     int        `json:"owners"`
	Applied    int        `json:"applied"`
	Failed     int        `json:"failed"`
}
