// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/models"
)

// syncOutbound pushes local records that need sync. Unlinked records are
// created remotely in bulk, linked ones updated in bulk and deleted ones
// removed one by one. Records with an unresolved conflict wait for the
// operator. Outbound writes never produce conflicts.
func (e *syncEngine) syncOutbound(ctx context.Context, ownerID int64, desc models.ObjectDescriptor) (models.SyncResult, error) {
	var result models.SyncResult

	pending, err := e.records.ListNeedingSync(ctx, ownerID, desc.Type, uint64(e.cfg.FullSyncWindow))
	if err != nil {
		e.fail(ctx, models.SyncAuditEntry{
			OwnerID:    ownerID,
			ObjectType: desc.Type,
			Operation:  models.OperationSync,
			Direction:  models.Outbound,
		}, err)
		result.Count(models.OperationSync, models.StatusFailed)
		return result, nil
	}

	blocked := e.openConflicts(ctx, ownerID, desc.Type)

	var creates, updates, deletes []models.LocalRecord
	for _, rec := range pending {
		if _, ok := blocked[rec.RemoteID]; ok && rec.RemoteID != "" {
			continue
		}
		switch {
		case rec.RemoteID == "" && !rec.Deleted:
			creates = append(creates, rec)
		case rec.RemoteID != "" && rec.Deleted:
			deletes = append(deletes, rec)
		case rec.RemoteID != "":
			updates = append(updates, rec)
		}
	}

	for _, batch := range chunk(creates, adapter.MaxBatchSize) {
		if err = e.pushCreates(ctx, ownerID, desc, batch, &result); err != nil {
			return result, err
		}
	}
	for _, batch := range chunk(updates, adapter.MaxBatchSize) {
		if err = e.pushUpdates(ctx, ownerID, desc, batch, &result); err != nil {
			return result, err
		}
	}
	for _, rec := range deletes {
		if err = e.pushDelete(ctx, ownerID, desc, rec, &result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// openConflicts returns the remote IDs of the type's unresolved conflicts.
// A failed lookup blocks nothing.
func (e *syncEngine) openConflicts(ctx context.Context, ownerID int64, objectType models.ObjectType) map[string]struct{} {
	entries, err := e.auditLog.List(ctx, models.AuditFilter{
		OwnerID:    ownerID,
		Status:     models.StatusConflict,
		ObjectType: objectType,
		Limit:      maxConflictPage,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncEngine.openConflicts").Str("object_type", string(objectType)).Msg("failed to list open conflicts")
		return nil
	}

	out := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		out[entry.RemoteObjectID] = struct{}{}
	}
	return out
}

func (e *syncEngine) pushCreates(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, batch []models.LocalRecord, result *models.SyncResult) error {
	payload := make([]models.Fields, len(batch))
	for i, rec := range batch {
		payload[i] = rec.Fields.Only(desc.Writable())
	}

	results, err := e.remote.CreateRecords(ctx, ownerID, desc.Type, payload)
	if err != nil {
		return e.failBatch(ctx, ownerID, desc, batch, models.OperationCreate, err, result)
	}

	for i, rec := range batch {
		entry := outboundEntry(ownerID, desc, rec, models.OperationCreate)
		r := results[i]
		if !r.Success {
			e.fail(ctx, entry, errors.New(r.Error))
			result.Count(entry.Operation, models.StatusFailed)
			continue
		}

		entry.RemoteObjectID = r.ID
		e.markPushed(ctx, desc, rec, r.ID, entry, result)
	}
	return nil
}

func (e *syncEngine) pushUpdates(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, batch []models.LocalRecord, result *models.SyncResult) error {
	keys := make([]objectKey, len(batch))
	for i, rec := range batch {
		keys[i] = objectKey{ownerID: ownerID, remoteID: rec.RemoteID}
	}
	unlock := e.lockObjects(keys)
	defer unlock()

	payload := make([]adapter.RecordUpdate, len(batch))
	for i, rec := range batch {
		payload[i] = adapter.RecordUpdate{ID: rec.RemoteID, Fields: rec.Fields.Only(desc.Writable())}
	}

	results, err := e.remote.UpdateRecords(ctx, ownerID, desc.Type, payload)
	if err != nil {
		return e.failBatch(ctx, ownerID, desc, batch, models.OperationUpdate, err, result)
	}

	for i, rec := range batch {
		entry := outboundEntry(ownerID, desc, rec, models.OperationUpdate)
		if r := results[i]; !r.Success {
			e.fail(ctx, entry, errors.New(r.Error))
			result.Count(entry.Operation, models.StatusFailed)
			continue
		}
		e.markPushed(ctx, desc, rec, rec.RemoteID, entry, result)
	}
	return nil
}

func (e *syncEngine) pushDelete(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, rec models.LocalRecord, result *models.SyncResult) error {
	unlock := e.objects.Lock(objectKey{ownerID: ownerID, remoteID: rec.RemoteID})
	defer unlock()

	entry := outboundEntry(ownerID, desc, rec, models.OperationDelete)

	err := e.remote.DeleteRecord(ctx, ownerID, desc.Type, rec.RemoteID)
	if err != nil && !errors.Is(err, adapter.ErrRemoteNotFound) {
		if isAbort(ctx, err) {
			return err
		}
		e.fail(ctx, entry, err)
		result.Count(entry.Operation, models.StatusFailed)
		return nil
	}

	e.markPushed(ctx, desc, rec, rec.RemoteID, entry, result)
	return nil
}

// PushLocal overwrites a linked remote record with fields and records the
// result as the record's synced state.
func (e *syncEngine) PushLocal(ctx context.Context, ownerID int64, objectType models.ObjectType, remoteID string, fields models.Fields) error {
	desc, err := e.registry.Describe(objectType)
	if err != nil {
		return err
	}

	unlock := e.objects.Lock(objectKey{ownerID: ownerID, remoteID: remoteID})
	defer unlock()

	if err = e.remote.UpdateRecord(ctx, ownerID, objectType, remoteID, fields); err != nil {
		return fmt.Errorf("pushing local state: %w", err)
	}

	rec, err := e.records.FindByRemoteID(ctx, ownerID, objectType, remoteID)
	if err != nil {
		return fmt.Errorf("loading local record: %w", err)
	}

	merged := rec.Fields.Clone()
	for _, n := range desc.Fields {
		if v, ok := fields[n]; ok {
			merged[n] = v
		}
	}
	rec.Fields = merged
	rec.SyncedFields = merged.Only(desc.Fields)
	rec.NaturalKey = naturalKey(merged, desc)
	now := e.now()
	rec.LastSyncedAt = &now

	if err = e.records.ApplyRemote(ctx, rec, now); err != nil {
		return fmt.Errorf("storing pushed state: %w", err)
	}
	return nil
}

// markPushed links rec to remoteID and snapshots the pushed fields. The
// record's observed UpdatedAt becomes its sync watermark, so a local edit
// made during the push keeps it pending.
func (e *syncEngine) markPushed(ctx context.Context, desc models.ObjectDescriptor, rec models.LocalRecord, remoteID string, entry models.SyncAuditEntry, result *models.SyncResult) {
	synced := rec.SyncedFields.Clone()
	for _, n := range desc.Writable() {
		if v, ok := rec.Fields[n]; ok {
			synced[n] = v
		}
	}

	if err := e.records.MarkSynced(ctx, rec, remoteID, synced); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncEngine.markPushed").
			Str("local_id", rec.ID).
			Str("remote_id", remoteID).
			Msg("remote write succeeded but local record was not marked synced")
		e.fail(ctx, entry, fmt.Errorf("marking local record synced: %w", err))
		result.Count(entry.Operation, models.StatusFailed)
		return
	}

	entry.Status = models.StatusSuccess
	_, _ = e.audit.Write(ctx, entry)
	result.Count(entry.Operation, models.StatusSuccess)
}

// failBatch records a FAILED entry for every record of a batch whose bulk
// call failed as a whole. Abort errors are returned instead.
func (e *syncEngine) failBatch(ctx context.Context, ownerID int64, desc models.ObjectDescriptor, batch []models.LocalRecord, op models.Operation, err error, result *models.SyncResult) error {
	if isAbort(ctx, err) {
		return err
	}
	for _, rec := range batch {
		e.fail(ctx, outboundEntry(ownerID, desc, rec, op), err)
		result.Count(op, models.StatusFailed)
	}
	return nil
}

// lockObjects takes the object locks of keys in a fixed order.
func (e *syncEngine) lockObjects(keys []objectKey) func() {
	sort.Slice(keys, func(i, j int) bool { return keys[i].remoteID < keys[j].remoteID })

	unlocks := make([]func(), 0, len(keys))
	for i, k := range keys {
		if i > 0 && keys[i-1] == k {
			continue
		}
		unlocks = append(unlocks, e.objects.Lock(k))
	}

	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}

func outboundEntry(ownerID int64, desc models.ObjectDescriptor, rec models.LocalRecord, op models.Operation) models.SyncAuditEntry {
	return models.SyncAuditEntry{
		OwnerID:        ownerID,
		ObjectType:     desc.Type,
		RemoteObjectID: rec.RemoteID,
		LocalObjectID:  rec.ID,
		Operation:      op,
		Direction:      models.Outbound,
	}
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size:size])
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
