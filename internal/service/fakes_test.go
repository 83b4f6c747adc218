// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/models"
)

// ── clock ─────────────────────────────────────────────────────────────────────

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ── credentials ───────────────────────────────────────────────────────────────

type memCredentials struct {
	mu     sync.Mutex
	rows   []models.Credential
	nextID int64
}

func (m *memCredentials) ReplaceActive(_ context.Context, cred models.Credential) (models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.rows {
		if m.rows[i].OwnerID == cred.OwnerID && m.rows[i].IsActive {
			m.rows[i].IsActive = false
			m.rows[i].DeactivationReason = models.DeactivationReplaced
		}
	}
	m.nextID++
	cred.ID = m.nextID
	cred.IsActive = true
	m.rows = append(m.rows, cred)
	return cred, nil
}

func (m *memCredentials) FindActive(_ context.Context, ownerID int64) (models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.rows {
		if c.OwnerID == ownerID && c.IsActive {
			return c, nil
		}
	}
	return models.Credential{}, store.ErrCredentialNotFound
}

func (m *memCredentials) UpdateTokens(_ context.Context, cred models.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.rows {
		if m.rows[i].ID == cred.ID && m.rows[i].IsActive {
			m.rows[i].AccessToken = cred.AccessToken
			m.rows[i].RefreshToken = cred.RefreshToken
			m.rows[i].RemoteBaseURL = cred.RemoteBaseURL
			m.rows[i].IssuedAt = cred.IssuedAt
			m.rows[i].ExpiresAt = cred.ExpiresAt
			return nil
		}
	}
	return store.ErrCredentialNotFound
}

func (m *memCredentials) TouchLastUsed(_ context.Context, credentialID int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.rows {
		if m.rows[i].ID == credentialID {
			m.rows[i].LastUsedAt = &at
		}
	}
	return nil
}

func (m *memCredentials) Deactivate(_ context.Context, ownerID int64, reason string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.rows {
		if m.rows[i].OwnerID == ownerID && m.rows[i].IsActive {
			m.rows[i].IsActive = false
			m.rows[i].DeactivationReason = reason
			m.rows[i].DeactivatedAt = &at
		}
	}
	return nil
}

func (m *memCredentials) ListActiveOwners(_ context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []int64
	for _, c := range m.rows {
		if c.IsActive {
			out = append(out, c.OwnerID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (m *memCredentials) activeCount(ownerID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.rows {
		if c.OwnerID == ownerID && c.IsActive {
			n++
		}
	}
	return n
}

// ── local records ─────────────────────────────────────────────────────────────

type memRecords struct {
	mu   sync.Mutex
	rows map[string]models.LocalRecord
}

func newMemRecords(records ...models.LocalRecord) *memRecords {
	m := &memRecords{rows: make(map[string]models.LocalRecord)}
	for _, r := range records {
		m.rows[r.ID] = r
	}
	return m
}

func (m *memRecords) FindByID(_ context.Context, ownerID int64, id string) (models.LocalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rows[id]
	if !ok || r.OwnerID != ownerID {
		return models.LocalRecord{}, store.ErrLocalRecordNotFound
	}
	return r, nil
}

func (m *memRecords) FindByRemoteID(_ context.Context, ownerID int64, objectType models.ObjectType, remoteID string) (models.LocalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.rows {
		if r.OwnerID == ownerID && r.ObjectType == objectType && r.RemoteID != "" && r.RemoteID == remoteID {
			return r, nil
		}
	}
	return models.LocalRecord{}, store.ErrLocalRecordNotFound
}

func (m *memRecords) FindByNaturalKey(_ context.Context, ownerID int64, objectType models.ObjectType, key string) (models.LocalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.rows {
		if r.OwnerID == ownerID && r.ObjectType == objectType && r.RemoteID == "" && strings.EqualFold(r.NaturalKey, key) {
			return r, nil
		}
	}
	return models.LocalRecord{}, store.ErrLocalRecordNotFound
}

func (m *memRecords) Create(_ context.Context, record models.LocalRecord) (models.LocalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.rows {
		if record.RemoteID != "" && r.OwnerID == record.OwnerID && r.ObjectType == record.ObjectType && r.RemoteID == record.RemoteID {
			return models.LocalRecord{}, store.ErrLocalRecordLinked
		}
	}
	if record.SyncedFields == nil {
		record.SyncedFields = models.Fields{}
	}
	m.rows[record.ID] = record
	return record, nil
}

func (m *memRecords) ApplyRemote(_ context.Context, record models.LocalRecord, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.rows[record.ID]
	if !ok || stored.OwnerID != record.OwnerID {
		return store.ErrLocalRecordNotFound
	}
	record.CreatedAt = stored.CreatedAt
	record.UpdatedAt = at
	m.rows[record.ID] = record
	return nil
}

func (m *memRecords) MarkSynced(_ context.Context, record models.LocalRecord, remoteID string, synced models.Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.rows[record.ID]
	if !ok || stored.OwnerID != record.OwnerID {
		return store.ErrLocalRecordNotFound
	}
	observed := record.UpdatedAt
	stored.RemoteID = remoteID
	stored.SyncedFields = synced
	stored.LastSyncedAt = &observed
	m.rows[record.ID] = stored
	return nil
}

func (m *memRecords) ListNeedingSync(_ context.Context, ownerID int64, objectType models.ObjectType, limit uint64) ([]models.LocalRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.LocalRecord
	for _, r := range m.rows {
		if r.OwnerID == ownerID && r.ObjectType == objectType && r.NeedsSync() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	if limit > 0 && uint64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memRecords) get(id string) models.LocalRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

func (m *memRecords) ofType(ownerID int64, objectType models.ObjectType) []models.LocalRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.LocalRecord
	for _, r := range m.rows {
		if r.OwnerID == ownerID && r.ObjectType == objectType {
			out = append(out, r)
		}
	}
	return out
}

// ── audit log ─────────────────────────────────────────────────────────────────

type memAudit struct {
	mu      sync.Mutex
	entries []models.SyncAuditEntry
	nextID  int64
}

func (m *memAudit) Append(_ context.Context, entry models.SyncAuditEntry) (models.SyncAuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	entry.ID = m.nextID
	entry.CreatedAt = entry.ProcessedAt
	m.entries = append(m.entries, entry)
	return entry, nil
}

func (m *memAudit) FindByID(_ context.Context, ownerID, entryID int64) (models.SyncAuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.entries {
		if e.ID == entryID && e.OwnerID == ownerID {
			return e, nil
		}
	}
	return models.SyncAuditEntry{}, store.ErrAuditEntryNotFound
}

func (m *memAudit) List(_ context.Context, filter models.AuditFilter) ([]models.SyncAuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.SyncAuditEntry
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if e.OwnerID != filter.OwnerID ||
			(filter.Status != "" && e.Status != filter.Status) ||
			(filter.ObjectType != "" && e.ObjectType != filter.ObjectType) ||
			(filter.RemoteObjectID != "" && e.RemoteObjectID != filter.RemoteObjectID) {
			continue
		}
		out = append(out, e)
	}
	if filter.Offset < uint64(len(out)) {
		out = out[filter.Offset:]
	} else {
		out = nil
	}
	if filter.Limit > 0 && uint64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *memAudit) MarkResolved(_ context.Context, ownerID, entryID int64, resolution models.Resolution) (models.SyncAuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.entries {
		if e.ID == entryID && e.OwnerID == ownerID && e.Status == models.StatusConflict {
			at := resolution.ResolvedAt
			e.Status = models.StatusSuccess
			e.ResolutionStrategy = resolution.Strategy
			e.ResolvedBy = resolution.ResolvedBy
			e.ResolvedAt = &at
			m.entries[i] = e
			return e, nil
		}
	}
	return models.SyncAuditEntry{}, store.ErrAuditEntryNotFound
}

func (m *memAudit) LastSuccessfulSync(_ context.Context, ownerID int64) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var last time.Time
	for _, e := range m.entries {
		if e.OwnerID == ownerID && e.Operation == models.OperationSync && e.Status == models.StatusSuccess && e.ProcessedAt.After(last) {
			last = e.ProcessedAt
		}
	}
	return last, nil
}

func (m *memAudit) FindOwnersByRemoteID(_ context.Context, remoteObjectID string) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[int64]struct{})
	var out []int64
	for _, e := range m.entries {
		if e.RemoteObjectID != remoteObjectID {
			continue
		}
		if _, ok := seen[e.OwnerID]; !ok {
			seen[e.OwnerID] = struct{}{}
			out = append(out, e.OwnerID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// matching returns the entries with the given operation, direction and status.
func (m *memAudit) matching(op models.Operation, dir models.Direction, status models.Status) []models.SyncAuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.SyncAuditEntry
	for _, e := range m.entries {
		if e.Operation == op && e.Direction == dir && e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

func (m *memAudit) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
