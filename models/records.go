// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"
)

// Fields is a flat set of field values of one CRM record. It is stored as
// JSONB locally and exchanged as JSON with the remote API.
type Fields map[string]any

// Value implements [driver.Valuer].
func (f Fields) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(f)
}

// Scan implements [sql.Scanner].
func (f *Fields) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = Fields{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Fields", src)
	}

	out := Fields{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode fields: %w", err)
	}
	*f = out
	return nil
}

// Clone returns a shallow copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Only returns the subset of f restricted to names that are present in f.
func (f Fields) Only(names []string) Fields {
	out := make(Fields, len(names))
	for _, n := range names {
		if v, ok := f[n]; ok {
			out[n] = v
		}
	}
	return out
}

// String returns the field value as a string, or "" when absent or not a string.
func (f Fields) String(name string) string {
	s, _ := f[name].(string)
	return s
}

// Diff returns the sorted names among names whose values differ between a and b.
// A field missing on one side compares equal to an explicit null.
func Diff(a, b Fields, names []string) []string {
	var out []string
	for _, n := range names {
		if !FieldEqual(a[n], b[n]) {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// FieldEqual compares two decoded JSON values.
func FieldEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(normalize(a), normalize(b))
}

// normalize folds numeric types so that values read from the database and
// values decoded from the remote API compare equal.
func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case float32:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return v
}

// LocalRecord is the local repository's representation of a business entity
// that participates in synchronization.
type LocalRecord struct {
	ID         string     `json:"id"`
	OwnerID    int64      `json:"owner_id"`
	ObjectType ObjectType `json:"object_type"`

	// NaturalKey duplicates the descriptor's natural key field for lookups.
	NaturalKey string `json:"natural_key,omitempty"`

	// RemoteID is empty until the record is linked to a remote object.
	RemoteID string `json:"remote_id,omitempty"`

	Fields Fields `json:"fields"`

	// SyncedFields is the snapshot of Fields as of the last successful sync.
	// A field whose current value differs from the snapshot was changed
	// locally since then.
	SyncedFields Fields `json:"synced_fields,omitempty"`

	Deleted      bool       `json:"deleted"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// LocallyChanged returns the fields changed locally since the last sync.
// A record that was never synced has no local changes in this sense.
func (r LocalRecord) LocallyChanged(names []string) []string {
	if r.LastSyncedAt == nil {
		return nil
	}
	return Diff(r.Fields, r.SyncedFields, names)
}

// NeedsSync reports whether the record must be pushed to the remote side.
func (r LocalRecord) NeedsSync() bool {
	if r.RemoteID == "" {
		return !r.Deleted
	}
	return r.LastSyncedAt == nil || r.UpdatedAt.After(*r.LastSyncedAt)
}

// RemoteRecord is a record as returned by the remote object API.
type RemoteRecord struct {
	ID             string     `json:"id"`
	Type           ObjectType `json:"type"`
	Fields         Fields     `json:"fields"`
	LastModifiedAt time.Time  `json:"last_modified_at"`
	Deleted        bool       `json:"deleted"`
}

// RecordResult is the per-record outcome of a bulk remote call.
type RecordResult struct {
	// Index is the position of the record in the request batch.
	Index   int
	ID      string
	Success bool
	Error   string
}
