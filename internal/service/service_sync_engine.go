// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

// objectKey identifies one remote object of one owner.
type objectKey struct {
	ownerID  int64
	remoteID string
}

// syncEngine reconciles the local record repository with the remote CRM.
//
// Locking:
//   - running holds at most one sync pass per owner; a second pass for the
//     same owner fails fast with ErrSyncInProgress.
//   - objects serializes every read-modify-write of one remote object, so
//     webhook deliveries and polled passes never interleave on a record.
//   - audit serializes audit log writes per owner.
type syncEngine struct {
	remote   adapter.RemoteAdapter
	records  store.LocalRecordRepository
	auditLog store.AuditRepository
	audit    *auditWriter
	registry *models.ObjectTypeRegistry
	ids      *utils.UUIDGenerator

	running *utils.KeyedMutex[int64]
	objects *utils.KeyedMutex[objectKey]

	cfg config.Sync
	now func() time.Time

	logger *logger.Logger
}

func newSyncEngine(
	remote adapter.RemoteAdapter,
	records store.LocalRecordRepository,
	auditLog store.AuditRepository,
	audit *auditWriter,
	registry *models.ObjectTypeRegistry,
	cfg config.Sync,
	now func() time.Time,
	logger *logger.Logger,
) *syncEngine {
	return &syncEngine{
		remote:   remote,
		records:  records,
		auditLog: auditLog,
		audit:    audit,
		registry: registry,
		ids:      utils.NewUUIDGenerator(),
		running:  utils.NewKeyedMutex[int64](),
		objects:  utils.NewKeyedMutex[objectKey](),
		cfg:      cfg,
		now:      now,
		logger:   logger,
	}
}

func (e *syncEngine) PerformFullSync(ctx context.Context, ownerID int64) (models.SyncResult, error) {
	return e.run(ctx, ownerID, models.FullSync)
}

func (e *syncEngine) PerformIncrementalSync(ctx context.Context, ownerID int64) (models.SyncResult, error) {
	return e.run(ctx, ownerID, models.IncrementalSync)
}

func (e *syncEngine) run(ctx context.Context, ownerID int64, mode models.SyncMode) (models.SyncResult, error) {
	unlock, ok := e.running.TryLock(ownerID)
	if !ok {
		return models.SyncResult{}, ErrSyncInProgress
	}
	defer unlock()

	log := logger.FromContext(ctx).ForOwner(ownerID).ForComponent("sync_engine")
	ctx = log.WithContext(ctx)

	result := models.SyncResult{OwnerID: ownerID, Mode: mode, StartedAt: e.now()}

	if mode == models.IncrementalSync {
		since, err := e.incrementalSince(ctx, ownerID)
		if err != nil {
			log.Err(err).Str("func", "syncEngine.run").Msg("failed to derive incremental window")
			return result, err
		}
		result.Since = since
	}

	types := e.registry.Types()
	perType := make([]models.SyncResult, len(types))
	queried := make([]bool, len(types))

	g, gctx := errgroup.WithContext(ctx)
	for i, objectType := range types {
		g.Go(func() error {
			r, ok, err := e.syncType(gctx, ownerID, objectType, mode, result.Since)
			perType[i] = r
			queried[i] = ok
			return err
		})
	}
	err := g.Wait()

	for _, r := range perType {
		result.Add(r)
	}
	result.FinishedAt = e.now()

	if err != nil {
		log.Err(err).Str("func", "syncEngine.run").Str("mode", string(mode)).Msg("sync attempt aborted")
		return result, err
	}

	// A type whose remote query failed has not seen the window, so the
	// marker stays where it was and the next incremental pass re-reads it.
	for i, ok := range queried {
		if !ok {
			log.Warn().
				Str("func", "syncEngine.run").
				Str("mode", string(mode)).
				Str("object_type", string(types[i])).
				Msg("remote query failed, sync marker not advanced")
			return result, nil
		}
	}

	// The marker's processed_at is the pass start: records changed remotely
	// while the pass ran fall into the next incremental window.
	if _, err = e.audit.Write(ctx, models.SyncAuditEntry{
		OwnerID:     ownerID,
		ObjectType:  models.AllTypes,
		Operation:   models.OperationSync,
		Direction:   models.Bidirectional,
		Status:      models.StatusSuccess,
		ProcessedAt: result.StartedAt,
	}); err != nil {
		return result, fmt.Errorf("recording sync completion: %w", err)
	}

	log.Info().
		Str("mode", string(mode)).
		Int("synced", result.Synced).
		Int("conflicts", result.Conflicts).
		Int("errors", result.Errors).
		Dur("took", result.FinishedAt.Sub(result.StartedAt)).
		Msg("sync pass finished")

	return result, nil
}

func (e *syncEngine) incrementalSince(ctx context.Context, ownerID int64) (time.Time, error) {
	last, err := e.audit.LastSuccessfulSync(ctx, ownerID)
	if err != nil {
		return time.Time{}, err
	}
	if last.IsZero() {
		return e.now().Add(-e.cfg.IncrementalLookback), nil
	}
	return last.Add(-e.cfg.IncrementalOverlap), nil
}

// syncType runs the inbound then the outbound pass for one object type.
// queried is false when the remote query for the type failed. Only errors
// that end the owner's attempt are returned; everything else is recorded as
// FAILED entries and counted.
func (e *syncEngine) syncType(ctx context.Context, ownerID int64, objectType models.ObjectType, mode models.SyncMode, since time.Time) (result models.SyncResult, queried bool, err error) {
	desc, err := e.registry.Describe(objectType)
	if err != nil {
		return result, false, err
	}

	var remote []models.RemoteRecord
	if mode == models.FullSync {
		remote, err = e.remote.QueryRecent(ctx, ownerID, objectType, e.cfg.FullSyncWindow)
	} else {
		remote, err = e.remote.QueryModifiedSince(ctx, ownerID, objectType, since, 0)
	}
	queried = err == nil
	if err != nil {
		if isAbort(ctx, err) {
			return result, false, err
		}
		e.fail(ctx, models.SyncAuditEntry{
			OwnerID:    ownerID,
			ObjectType: objectType,
			Operation:  models.OperationSync,
			Direction:  models.Inbound,
		}, err)
		result.Count(models.OperationSync, models.StatusFailed)
	}

	for _, rec := range remote {
		if err = ctx.Err(); err != nil {
			return result, queried, err
		}

		op, status, err := e.applyInbound(ctx, ownerID, desc, rec)
		if isAbort(ctx, err) {
			return result, queried, err
		}
		if status != "" {
			result.Count(op, status)
		}
	}

	outbound, err := e.syncOutbound(ctx, ownerID, desc)
	result.Add(outbound)
	return result, queried, err
}

// fail records a FAILED audit entry for err.
func (e *syncEngine) fail(ctx context.Context, entry models.SyncAuditEntry, err error) {
	entry.Status = models.StatusFailed
	entry.ErrorMessage = err.Error()
	_, _ = e.audit.Write(ctx, entry)
}

// isAbort reports errors that end the owner's whole attempt: the credential
// is unusable or ctx is done. A timeout of a single remote call is not one.
func isAbort(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	return ctx.Err() != nil ||
		errors.Is(err, adapter.ErrRemoteAuthFailed) ||
		errors.Is(err, ErrRefreshFailed) ||
		errors.Is(err, ErrNotConnected)
}
