// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/models"
)

// localRecordRepository keeps the local copies of CRM-shaped business
// records in "crm_local_records". The rest of the application edits the
// fields and bumps updated_at; the sync engine reads pending rows and
// records what was exchanged with the remote side.
type localRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalRecordRepository constructs a [LocalRecordRepository].
func NewLocalRecordRepository(db *DB, log *logger.Logger) LocalRecordRepository {
	log.Debug().Msg("creating local record repository")
	return &localRecordRepository{
		DB:     db,
		logger: log,
	}
}

func scanLocalRecord(s rowScanner) (models.LocalRecord, error) {
	var (
		rec          models.LocalRecord
		objectType   string
		lastSyncedAt sql.NullTime
	)

	err := s.Scan(
		&rec.ID,
		&rec.OwnerID,
		&objectType,
		&rec.NaturalKey,
		&rec.RemoteID,
		&rec.Fields,
		&rec.SyncedFields,
		&rec.Deleted,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&lastSyncedAt,
	)
	if err != nil {
		return models.LocalRecord{}, err
	}

	rec.ObjectType = models.ObjectType(objectType)
	rec.LastSyncedAt = nullTimePtr(lastSyncedAt)
	return rec, nil
}

func (r *localRecordRepository) findOne(ctx context.Context, fn string, query string, args ...any) (models.LocalRecord, error) {
	rec, err := scanLocalRecord(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalRecord{}, ErrLocalRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Interface("args", args).Msg("failed to scan local record")
		return models.LocalRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return rec, nil
}

func (r *localRecordRepository) FindByID(ctx context.Context, ownerID int64, id string) (models.LocalRecord, error) {
	return r.findOne(ctx, "localRecordRepository.FindByID", findLocalRecordByID, ownerID, id)
}

func (r *localRecordRepository) FindByRemoteID(ctx context.Context, ownerID int64, objectType models.ObjectType, remoteID string) (models.LocalRecord, error) {
	return r.findOne(ctx, "localRecordRepository.FindByRemoteID", findLocalRecordByRemoteID, ownerID, string(objectType), remoteID)
}

func (r *localRecordRepository) FindByNaturalKey(ctx context.Context, ownerID int64, objectType models.ObjectType, key string) (models.LocalRecord, error) {
	if key == "" {
		return models.LocalRecord{}, ErrLocalRecordNotFound
	}
	return r.findOne(ctx, "localRecordRepository.FindByNaturalKey", findLocalRecordByNaturalKey, ownerID, string(objectType), key)
}

// Create inserts record as given; the caller assigns the id and timestamps.
func (r *localRecordRepository) Create(ctx context.Context, record models.LocalRecord) (models.LocalRecord, error) {
	_, err := r.ExecContext(ctx, insertLocalRecord,
		record.ID,
		record.OwnerID,
		string(record.ObjectType),
		record.NaturalKey,
		record.RemoteID,
		record.Fields,
		orEmpty(record.SyncedFields),
		record.Deleted,
		record.CreatedAt,
		record.UpdatedAt,
		record.LastSyncedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecordRepository.Create").
			Int64("owner_id", record.OwnerID).
			Str("object_type", string(record.ObjectType)).
			Str("remote_id", record.RemoteID).
			Msg("failed to insert local record")
		if r.isDuplicate(err) {
			return models.LocalRecord{}, ErrLocalRecordLinked
		}
		return models.LocalRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	record.SyncedFields = orEmpty(record.SyncedFields)
	return record, nil
}

func (r *localRecordRepository) ApplyRemote(ctx context.Context, record models.LocalRecord, at time.Time) error {
	res, err := r.ExecContext(ctx, applyRemoteToLocalRecord,
		record.OwnerID,
		record.ID,
		record.NaturalKey,
		record.RemoteID,
		record.Fields,
		orEmpty(record.SyncedFields),
		record.Deleted,
		at,
		record.LastSyncedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecordRepository.ApplyRemote").
			Int64("owner_id", record.OwnerID).
			Str("local_id", record.ID).
			Msg("failed to apply remote state")
		if r.isDuplicate(err) {
			return ErrLocalRecordLinked
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, ErrLocalRecordNotFound)
}

func (r *localRecordRepository) MarkSynced(ctx context.Context, record models.LocalRecord, remoteID string, synced models.Fields) error {
	res, err := r.ExecContext(ctx, markLocalRecordSynced,
		record.OwnerID,
		record.ID,
		remoteID,
		synced,
		record.UpdatedAt,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localRecordRepository.MarkSynced").
			Int64("owner_id", record.OwnerID).
			Str("local_id", record.ID).
			Str("remote_id", remoteID).
			Msg("failed to mark local record synced")
		if r.isDuplicate(err) {
			return ErrLocalRecordLinked
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, ErrLocalRecordNotFound)
}

func (r *localRecordRepository) ListNeedingSync(ctx context.Context, ownerID int64, objectType models.ObjectType, limit uint64) ([]models.LocalRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNeedingSyncQuery(ownerID, objectType, limit)
	if err != nil {
		log.Err(err).Str("func", "localRecordRepository.ListNeedingSync").Int64("owner_id", ownerID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localRecordRepository.ListNeedingSync").
			Int64("owner_id", ownerID).
			Str("object_type", string(objectType)).
			Msg("failed to list pending records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.LocalRecord, 0, limit)
	for rows.Next() {
		rec, err := scanLocalRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "localRecordRepository.ListNeedingSync").Int64("owner_id", ownerID).Msg("failed to scan local record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "localRecordRepository.ListNeedingSync").Int64("owner_id", ownerID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func orEmpty(fields models.Fields) models.Fields {
	if fields == nil {
		return models.Fields{}
	}
	return fields
}
