// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository] over the "crm_credentials" table.
//
// Access and refresh tokens are sealed with [utils.TokenCipher] bound to the
// owner id before they are written, and opened after every read.
type credentialRepository struct {
	*DB
	cipher *utils.TokenCipher
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository].
func NewCredentialRepository(db *DB, cipher *utils.TokenCipher, log *logger.Logger) CredentialRepository {
	log.Debug().Msg("creating credential repository")
	return &credentialRepository{
		DB:     db,
		cipher: cipher,
		logger: log,
	}
}

func tokenAD(ownerID int64) string {
	return "owner:" + strconv.FormatInt(ownerID, 10)
}

func (r *credentialRepository) seal(cred models.Credential) (access, refresh string, err error) {
	ad := tokenAD(cred.OwnerID)
	if access, err = r.cipher.Seal(cred.AccessToken, ad); err != nil {
		return "", "", err
	}
	if refresh, err = r.cipher.Seal(cred.RefreshToken, ad); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ReplaceActive deactivates every active credential of the owner with reason
// [models.DeactivationReplaced] and inserts cred in the same transaction.
// The partial unique index on (owner_id) WHERE is_active guarantees that no
// concurrent writer can leave two active rows behind.
func (r *credentialRepository) ReplaceActive(ctx context.Context, cred models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	access, refresh, err := r.seal(cred)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ReplaceActive").Int64("owner_id", cred.OwnerID).Msg("failed to encrypt tokens")
		return models.Credential{}, err
	}

	now := time.Now().UTC()
	err = r.inTx(ctx, "credentialRepository.ReplaceActive", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deactivateActiveCredentials, cred.OwnerID, now, models.DeactivationReplaced); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		row := tx.QueryRowContext(ctx, insertCredential,
			cred.OwnerID, access, refresh, cred.RemoteBaseURL, cred.RemoteUserID,
			string(cred.Environment), cred.IssuedAt, cred.ExpiresAt,
		)
		if err := row.Scan(&cred.ID, &cred.CreatedAt); err != nil {
			if r.isDuplicate(err) {
				return ErrActiveCredentialExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ReplaceActive").Int64("owner_id", cred.OwnerID).Msg("failed to replace active credential")
		return models.Credential{}, err
	}

	cred.IsActive = true
	cred.DeactivatedAt = nil
	cred.DeactivationReason = ""
	return cred, nil
}

// FindActive returns the owner's only active credential with decrypted tokens.
func (r *credentialRepository) FindActive(ctx context.Context, ownerID int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var (
		cred                                 models.Credential
		env                                  string
		expiresAt, lastUsedAt, deactivatedAt sql.NullTime
	)
	err := r.QueryRowContext(ctx, findActiveCredential, ownerID).Scan(
		&cred.ID,
		&cred.OwnerID,
		&cred.AccessToken,
		&cred.RefreshToken,
		&cred.RemoteBaseURL,
		&cred.RemoteUserID,
		&env,
		&cred.IssuedAt,
		&cred.IsActive,
		&expiresAt,
		&lastUsedAt,
		&deactivatedAt,
		&cred.DeactivationReason,
		&cred.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.FindActive").Int64("owner_id", ownerID).Msg("failed to scan credential row")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	cred.Environment = models.Environment(env)
	cred.ExpiresAt = nullTimePtr(expiresAt)
	cred.LastUsedAt = nullTimePtr(lastUsedAt)
	cred.DeactivatedAt = nullTimePtr(deactivatedAt)

	ad := tokenAD(ownerID)
	if cred.AccessToken, err = r.cipher.Open(cred.AccessToken, ad); err != nil {
		log.Err(err).Str("func", "credentialRepository.FindActive").Int64("owner_id", ownerID).Msg("failed to decrypt access token")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCorruptedToken, err)
	}
	if cred.RefreshToken, err = r.cipher.Open(cred.RefreshToken, ad); err != nil {
		log.Err(err).Str("func", "credentialRepository.FindActive").Int64("owner_id", ownerID).Msg("failed to decrypt refresh token")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCorruptedToken, err)
	}

	return cred, nil
}

// UpdateTokens stores refreshed tokens on the same credential row.
func (r *credentialRepository) UpdateTokens(ctx context.Context, cred models.Credential) error {
	log := logger.FromContext(ctx)

	access, refresh, err := r.seal(cred)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.UpdateTokens").Int64("owner_id", cred.OwnerID).Msg("failed to encrypt tokens")
		return err
	}

	res, err := r.ExecContext(ctx, updateCredentialTokens, access, refresh, cred.RemoteBaseURL, cred.IssuedAt, cred.ExpiresAt, cred.ID)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.UpdateTokens").Int64("owner_id", cred.OwnerID).Int64("credential_id", cred.ID).Msg("failed to update tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

func (r *credentialRepository) TouchLastUsed(ctx context.Context, credentialID int64, at time.Time) error {
	if _, err := r.ExecContext(ctx, touchCredential, credentialID, at); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "credentialRepository.TouchLastUsed").Int64("credential_id", credentialID).Msg("failed to touch credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Deactivate is idempotent: an owner without an active credential is not an error.
func (r *credentialRepository) Deactivate(ctx context.Context, ownerID int64, reason string, at time.Time) error {
	if _, err := r.ExecContext(ctx, deactivateActiveCredentials, ownerID, at, reason); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialRepository.Deactivate").
			Int64("owner_id", ownerID).
			Str("reason", reason).
			Msg("failed to deactivate credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *credentialRepository) ListActiveOwners(ctx context.Context) ([]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, listActiveOwners)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.ListActiveOwners").Msg("failed to list active owners")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanInt64s(rows)
}

func scanInt64s(rows *sql.Rows) ([]int64, error) {
	out := make([]int64, 0, 16)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return out, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
