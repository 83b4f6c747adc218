// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crm-sync/models"
)

const (
	credentialColumns = `id, owner_id, access_token, refresh_token, remote_base_url, remote_user_id,
		environment, issued_at, is_active, expires_at, last_used_at, deactivated_at,
		deactivation_reason, created_at`

	deactivateActiveCredentials = `UPDATE crm_credentials
		SET is_active = FALSE, deactivated_at = $2, deactivation_reason = $3
		WHERE owner_id = $1 AND is_active;`

	insertCredential = `INSERT INTO crm_credentials (
			owner_id, access_token, refresh_token, remote_base_url, remote_user_id,
			environment, issued_at, is_active, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8)
		RETURNING id, created_at;`

	findActiveCredential = `SELECT ` + credentialColumns + `
		FROM crm_credentials
		WHERE owner_id = $1 AND is_active;`

	updateCredentialTokens = `UPDATE crm_credentials
		SET access_token = $1, refresh_token = $2, remote_base_url = $3, issued_at = $4, expires_at = $5
		WHERE id = $6 AND is_active;`

	touchCredential = `UPDATE crm_credentials SET last_used_at = $2 WHERE id = $1;`

	listActiveOwners = `SELECT owner_id FROM crm_credentials WHERE is_active ORDER BY owner_id;`

	auditColumns = `id, owner_id, object_type, remote_object_id, local_object_id, operation,
		direction, status, conflict_data, error_message, processed_at, created_at,
		resolution_strategy, resolved_by, resolved_at`

	insertAuditEntry = `INSERT INTO sync_audit_log (
			owner_id, object_type, remote_object_id, local_object_id, operation,
			direction, status, conflict_data, error_message, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at;`

	findAuditEntry = `SELECT ` + auditColumns + `
		FROM sync_audit_log
		WHERE id = $1 AND owner_id = $2;`

	resolveAuditEntry = `UPDATE sync_audit_log
		SET status = 'SUCCESS', resolution_strategy = $3, resolved_by = $4, resolved_at = $5
		WHERE id = $1 AND owner_id = $2 AND status = 'CONFLICT'
		RETURNING ` + auditColumns + `;`

	lastSuccessfulSync = `SELECT MAX(processed_at)
		FROM sync_audit_log
		WHERE owner_id = $1 AND operation = 'SYNC' AND status = 'SUCCESS';`

	findOwnersByRemoteID = `SELECT DISTINCT owner_id
		FROM sync_audit_log
		WHERE remote_object_id = $1
		ORDER BY owner_id;`

	localRecordColumns = `id, owner_id, object_type, natural_key, remote_id, fields, synced_fields,
		deleted, created_at, updated_at, last_synced_at`

	findLocalRecordByID = `SELECT ` + localRecordColumns + `
		FROM crm_local_records
		WHERE owner_id = $1 AND id = $2;`

	findLocalRecordByRemoteID = `SELECT ` + localRecordColumns + `
		FROM crm_local_records
		WHERE owner_id = $1 AND object_type = $2 AND remote_id = $3;`

	findLocalRecordByNaturalKey = `SELECT ` + localRecordColumns + `
		FROM crm_local_records
		WHERE owner_id = $1 AND object_type = $2 AND remote_id = '' AND lower(natural_key) = lower($3)
		ORDER BY updated_at DESC
		LIMIT 1;`

	insertLocalRecord = `INSERT INTO crm_local_records (
			id, owner_id, object_type, natural_key, remote_id, fields, synced_fields,
			deleted, created_at, updated_at, last_synced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	applyRemoteToLocalRecord = `UPDATE crm_local_records
		SET natural_key = $3, remote_id = $4, fields = $5, synced_fields = $6,
			deleted = $7, updated_at = $8, last_synced_at = $9
		WHERE owner_id = $1 AND id = $2;`

	markLocalRecordSynced = `UPDATE crm_local_records
		SET remote_id = $3, synced_fields = $4, last_synced_at = $5
		WHERE owner_id = $1 AND id = $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListAuditQuery builds a paged audit listing, newest first.
func buildListAuditQuery(filter models.AuditFilter) (string, []any, error) {
	q := psql.Select(auditColumns).
		From("sync_audit_log").
		Where(sq.Eq{"owner_id": filter.OwnerID})

	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.ObjectType != "" {
		q = q.Where(sq.Eq{"object_type": string(filter.ObjectType)})
	}
	if filter.RemoteObjectID != "" {
		q = q.Where(sq.Eq{"remote_object_id": filter.RemoteObjectID})
	}

	limit := filter.Limit
	if limit == 0 || limit > maxAuditPage {
		limit = defaultAuditPage
	}

	return q.OrderBy("processed_at DESC", "id DESC").
		Limit(limit).
		Offset(filter.Offset).
		ToSql()
}

// buildListNeedingSyncQuery selects records that are unlinked and alive, or
// modified after their last sync.
func buildListNeedingSyncQuery(ownerID int64, objectType models.ObjectType, limit uint64) (string, []any, error) {
	return psql.Select(localRecordColumns).
		From("crm_local_records").
		Where(sq.Eq{"owner_id": ownerID, "object_type": string(objectType)}).
		Where(sq.Or{
			sq.And{sq.Eq{"remote_id": ""}, sq.Eq{"deleted": false}},
			sq.And{sq.NotEq{"remote_id": ""}, sq.Expr("(last_synced_at IS NULL OR updated_at > last_synced_at)")},
		}).
		OrderBy("updated_at ASC").
		Limit(limit).
		ToSql()
}

const (
	defaultAuditPage = 50
	maxAuditPage     = 500
)
