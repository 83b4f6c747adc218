// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/models"
)

// auditRepository is the PostgreSQL-backed implementation of
// [AuditRepository] over the append-only "sync_audit_log" table.
type auditRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditRepository constructs an [AuditRepository].
func NewAuditRepository(db *DB, log *logger.Logger) AuditRepository {
	log.Debug().Msg("creating audit repository")
	return &auditRepository{
		DB:     db,
		logger: log,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuditEntry(s rowScanner) (models.SyncAuditEntry, error) {
	var (
		e            models.SyncAuditEntry
		objectType   string
		operation    string
		direction    string
		status       string
		strategy     string
		conflictData []byte
		resolvedAt   sql.NullTime
	)

	err := s.Scan(
		&e.ID,
		&e.OwnerID,
		&objectType,
		&e.RemoteObjectID,
		&e.LocalObjectID,
		&operation,
		&direction,
		&status,
		&conflictData,
		&e.ErrorMessage,
		&e.ProcessedAt,
		&e.CreatedAt,
		&strategy,
		&e.ResolvedBy,
		&resolvedAt,
	)
	if err != nil {
		return models.SyncAuditEntry{}, err
	}

	e.ObjectType = models.ObjectType(objectType)
	e.Operation = models.Operation(operation)
	e.Direction = models.Direction(direction)
	e.Status = models.Status(status)
	e.ResolutionStrategy = models.ResolutionStrategy(strategy)
	e.ResolvedAt = nullTimePtr(resolvedAt)

	if len(conflictData) > 0 {
		var cd models.ConflictData
		if err := json.Unmarshal(conflictData, &cd); err != nil {
			return models.SyncAuditEntry{}, fmt.Errorf("decode conflict data: %w", err)
		}
		e.ConflictData = &cd
	}

	return e, nil
}

// Append inserts entry and returns it with the database-assigned id and
// created_at. A zero ProcessedAt is replaced with the current time.
func (r *auditRepository) Append(ctx context.Context, entry models.SyncAuditEntry) (models.SyncAuditEntry, error) {
	log := logger.FromContext(ctx)

	if entry.ProcessedAt.IsZero() {
		entry.ProcessedAt = time.Now().UTC()
	}

	var conflictData any
	if entry.ConflictData != nil {
		raw, err := json.Marshal(entry.ConflictData)
		if err != nil {
			return models.SyncAuditEntry{}, fmt.Errorf("encode conflict data: %w", err)
		}
		conflictData = raw
	}

	err := r.retry(ctx, "auditRepository.Append", func() error {
		return r.QueryRowContext(ctx, insertAuditEntry,
			entry.OwnerID,
			string(entry.ObjectType),
			entry.RemoteObjectID,
			entry.LocalObjectID,
			string(entry.Operation),
			string(entry.Direction),
			string(entry.Status),
			conflictData,
			entry.ErrorMessage,
			entry.ProcessedAt,
		).Scan(&entry.ID, &entry.CreatedAt)
	})
	if err != nil {
		log.Err(err).
			Str("func", "auditRepository.Append").
			Int64("owner_id", entry.OwnerID).
			Str("object_type", string(entry.ObjectType)).
			Str("remote_object_id", entry.RemoteObjectID).
			Str("status", string(entry.Status)).
			Msg("failed to append audit entry")
		return models.SyncAuditEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (r *auditRepository) FindByID(ctx context.Context, ownerID, entryID int64) (models.SyncAuditEntry, error) {
	entry, err := scanAuditEntry(r.QueryRowContext(ctx, findAuditEntry, entryID, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncAuditEntry{}, ErrAuditEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditRepository.FindByID").
			Int64("owner_id", ownerID).
			Int64("entry_id", entryID).
			Msg("failed to scan audit entry")
		return models.SyncAuditEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return entry, nil
}

// List returns a page of the owner's audit entries, newest first.
func (r *auditRepository) List(ctx context.Context, filter models.AuditFilter) ([]models.SyncAuditEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuditQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "auditRepository.List").Int64("owner_id", filter.OwnerID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "auditRepository.List").Int64("owner_id", filter.OwnerID).Msg("failed to list audit entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.SyncAuditEntry, 0, 50)
	for rows.Next() {
		entry, err := scanAuditEntry(rows)
		if err != nil {
			log.Err(err).Str("func", "auditRepository.List").Int64("owner_id", filter.OwnerID).Msg("failed to scan audit row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "auditRepository.List").Int64("owner_id", filter.OwnerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// MarkResolved is the only mutation the audit log allows.
func (r *auditRepository) MarkResolved(ctx context.Context, ownerID, entryID int64, resolution models.Resolution) (models.SyncAuditEntry, error) {
	row := r.QueryRowContext(ctx, resolveAuditEntry,
		entryID, ownerID, string(resolution.Strategy), resolution.ResolvedBy, resolution.ResolvedAt,
	)

	entry, err := scanAuditEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncAuditEntry{}, ErrAuditEntryNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditRepository.MarkResolved").
			Int64("owner_id", ownerID).
			Int64("entry_id", entryID).
			Msg("failed to resolve conflict entry")
		return models.SyncAuditEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

func (r *auditRepository) LastSuccessfulSync(ctx context.Context, ownerID int64) (time.Time, error) {
	var last sql.NullTime
	if err := r.QueryRowContext(ctx, lastSuccessfulSync, ownerID).Scan(&last); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "auditRepository.LastSuccessfulSync").Int64("owner_id", ownerID).Msg("failed to read last sync time")
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if !last.Valid {
		return time.Time{}, nil
	}
	return last.Time, nil
}

func (r *auditRepository) FindOwnersByRemoteID(ctx context.Context, remoteObjectID string) ([]int64, error) {
	rows, err := r.QueryContext(ctx, findOwnersByRemoteID, remoteObjectID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditRepository.FindOwnersByRemoteID").
			Str("remote_object_id", remoteObjectID).
			Msg("failed to look up owners")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanInt64s(rows)
}
