// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/internal/validators"
	"github.com/MKhiriev/go-crm-sync/models"
)

// maxConflictPage bounds ListConflicts; it matches the audit page cap.
const maxConflictPage = 500

type conflictService struct {
	auditLog store.AuditRepository
	audit    *auditWriter
	engine   SyncEngine

	registry  *models.ObjectTypeRegistry
	validator validators.Validator

	// entries serializes resolutions of the same audit entry
	entries *utils.KeyedMutex[int64]

	now    func() time.Time
	logger *logger.Logger
}

func newConflictService(auditLog store.AuditRepository, audit *auditWriter, engine SyncEngine, registry *models.ObjectTypeRegistry, now func() time.Time, logger *logger.Logger) *conflictService {
	return &conflictService{
		auditLog:  auditLog,
		audit:     audit,
		engine:    engine,
		registry:  registry,
		validator: validators.NewRequestValidator(),
		entries:   utils.NewKeyedMutex[int64](),
		now:       now,
		logger:    logger,
	}
}

func (s *conflictService) ListConflicts(ctx context.Context, ownerID int64) ([]models.ConflictRecord, error) {
	entries, err := s.auditLog.List(ctx, models.AuditFilter{
		OwnerID: ownerID,
		Status:  models.StatusConflict,
		Limit:   maxConflictPage,
	})
	if err != nil {
		return nil, fmt.Errorf("listing conflicts: %w", err)
	}

	out := make([]models.ConflictRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.NewConflictRecord(e))
	}
	return out, nil
}

// ResolveConflict applies the chosen side to the records and transitions
// the entry from CONFLICT to SUCCESS.
func (s *conflictService) ResolveConflict(ctx context.Context, ownerID, entryID int64, req models.ResolveRequest, resolvedBy string) (models.SyncAuditEntry, error) {
	log := logger.FromContext(ctx)

	if err := s.validateRequest(ctx, req); err != nil {
		return models.SyncAuditEntry{}, err
	}

	unlock := s.entries.Lock(entryID)
	defer unlock()

	entry, err := s.auditLog.FindByID(ctx, ownerID, entryID)
	if errors.Is(err, store.ErrAuditEntryNotFound) {
		return models.SyncAuditEntry{}, ErrConflictNotFound
	}
	if err != nil {
		return models.SyncAuditEntry{}, fmt.Errorf("loading audit entry: %w", err)
	}
	if entry.Status != models.StatusConflict || entry.ConflictData == nil {
		return models.SyncAuditEntry{}, ErrConflictNotFound
	}

	desc, err := s.registry.Describe(entry.ObjectType)
	if err != nil {
		return models.SyncAuditEntry{}, err
	}
	if err = s.validateRequest(ctx, req, desc.Writable()...); err != nil {
		return models.SyncAuditEntry{}, err
	}

	data := entry.ConflictData
	switch req.Strategy {
	case models.UseRemote:
		err = s.engine.OverwriteLocal(ctx, ownerID, entry.ObjectType, entry.RemoteObjectID, data.RemoteSnapshot)
	case models.UseLocal:
		err = s.engine.PushLocal(ctx, ownerID, entry.ObjectType, entry.RemoteObjectID, data.LocalSnapshot)
	case models.Merge:
		merged := req.MergeData
		if len(merged) == 0 {
			merged = defaultMerge(data.LocalSnapshot, data.RemoteSnapshot)
		}
		err = s.engine.PushLocal(ctx, ownerID, entry.ObjectType, entry.RemoteObjectID, merged)
	}
	if err != nil {
		log.Err(err).
			Str("func", "conflictService.ResolveConflict").
			Int64("owner_id", ownerID).
			Int64("entry_id", entryID).
			Str("strategy", string(req.Strategy)).
			Msg("failed to apply resolution")
		return models.SyncAuditEntry{}, fmt.Errorf("applying %s: %w", req.Strategy, err)
	}

	resolved, err := s.audit.Resolve(ctx, ownerID, entryID, models.Resolution{
		Strategy:   req.Strategy,
		ResolvedBy: resolvedBy,
		ResolvedAt: s.now(),
	})
	if errors.Is(err, store.ErrAuditEntryNotFound) {
		return models.SyncAuditEntry{}, ErrConflictNotFound
	}
	if err != nil {
		return models.SyncAuditEntry{}, fmt.Errorf("recording resolution: %w", err)
	}

	log.Info().Int64("owner_id", ownerID).Int64("entry_id", entryID).Str("strategy", string(req.Strategy)).Msg("conflict resolved")
	return resolved, nil
}

func (s *conflictService) AuditLog(ctx context.Context, filter models.AuditFilter) ([]models.SyncAuditEntry, error) {
	entries, err := s.auditLog.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing audit log: %w", err)
	}
	return entries, nil
}

// validateRequest maps validation failures onto service errors.
func (s *conflictService) validateRequest(ctx context.Context, req models.ResolveRequest, fields ...string) error {
	err := s.validator.Validate(ctx, req, fields...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrUnknownStrategy):
		return fmt.Errorf("%w: %w", ErrUnsupportedStrategy, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}

// defaultMerge prefers local values for fields present locally and remote
// values otherwise.
func defaultMerge(local, remote models.Fields) models.Fields {
	merged := remote.Clone()
	for k, v := range local {
		if v != nil {
			merged[k] = v
		}
	}
	return merged
}
