// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

// credentialService keeps one active OAuth credential per owner.
//
// Every operation that changes the stored tokens runs under the owner's
// entry in locks, so refresh-token rotation never races with itself.
type credentialService struct {
	repo  store.CredentialRepository
	oauth adapter.OAuthAdapter

	states *stateSigner
	locks  *utils.KeyedMutex[int64]

	refreshThreshold time.Duration
	now              func() time.Time

	logger *logger.Logger
}

func NewCredentialService(repo store.CredentialRepository, oauth adapter.OAuthAdapter, cfg config.StructuredConfig, logger *logger.Logger) CredentialService {
	return &credentialService{
		repo:             repo,
		oauth:            oauth,
		states:           newStateSigner(cfg.App.StateSecret, cfg.Sync.StateTTL),
		locks:            utils.NewKeyedMutex[int64](),
		refreshThreshold: cfg.Sync.RefreshThreshold,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *credentialService) AuthorizationURL(ctx context.Context, ownerID int64, env models.Environment) (string, error) {
	log := logger.FromContext(ctx)

	state, err := s.states.Issue(ownerID, env, s.now())
	if err != nil {
		log.Err(err).Str("func", "credentialService.AuthorizationURL").Int64("owner_id", ownerID).Msg("failed to sign state")
		return "", fmt.Errorf("signing state: %w", err)
	}

	u, err := s.oauth.AuthorizeURL(env, state)
	if err != nil {
		log.Err(err).Str("func", "credentialService.AuthorizationURL").Int64("owner_id", ownerID).Msg("failed to build authorize url")
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return u, nil
}

func (s *credentialService) IssueCredential(ctx context.Context, ownerID int64, code, state string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	env, err := s.states.Verify(state, ownerID, s.now())
	if err != nil {
		log.Warn().Err(err).Str("func", "credentialService.IssueCredential").Int64("owner_id", ownerID).Msg("rejected oauth state")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	if code == "" {
		return models.Credential{}, fmt.Errorf("%w: empty authorization code", ErrTokenExchangeFailed)
	}

	grant, err := s.oauth.ExchangeCode(ctx, env, code)
	if err != nil {
		log.Err(err).Str("func", "credentialService.IssueCredential").Int64("owner_id", ownerID).Msg("code exchange failed")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrTokenExchangeFailed, err)
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	now := s.now()
	cred := models.Credential{
		OwnerID:       ownerID,
		AccessToken:   grant.AccessToken,
		RefreshToken:  grant.RefreshToken,
		RemoteBaseURL: grant.InstanceURL,
		RemoteUserID:  grant.RemoteUserID(),
		Environment:   env,
		IssuedAt:      now,
		ExpiresAt:     expiresAt(grant, now),
		IsActive:      true,
	}

	saved, err := s.repo.ReplaceActive(ctx, cred)
	if err != nil {
		log.Err(err).Str("func", "credentialService.IssueCredential").Int64("owner_id", ownerID).Msg("failed to persist credential")
		return models.Credential{}, fmt.Errorf("persisting credential: %w", err)
	}

	log.Info().Int64("owner_id", ownerID).Str("environment", string(env)).Msg("crm connection established")
	return saved, nil
}

// GetValidToken returns the owner's access token, refreshing it first when
// it is older than the refresh threshold. The age is checked again under the
// owner lock, so concurrent callers share one refresh.
func (s *credentialService) GetValidToken(ctx context.Context, ownerID int64) (models.AccessToken, error) {
	cred, err := s.findActive(ctx, ownerID)
	if err != nil {
		return models.AccessToken{}, err
	}

	if cred.Age(s.now()) <= s.refreshThreshold {
		s.touch(ctx, cred)
		return cred.Token(), nil
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	cred, err = s.findActive(ctx, ownerID)
	if err != nil {
		return models.AccessToken{}, err
	}
	if cred.Age(s.now()) <= s.refreshThreshold {
		s.touch(ctx, cred)
		return cred.Token(), nil
	}

	return s.refreshLocked(ctx, cred)
}

func (s *credentialService) Refresh(ctx context.Context, ownerID int64) (models.AccessToken, error) {
	unlock := s.locks.Lock(ownerID)
	defer unlock()

	cred, err := s.findActive(ctx, ownerID)
	if err != nil {
		return models.AccessToken{}, err
	}

	return s.refreshLocked(ctx, cred)
}

func (s *credentialService) RefreshToken(ctx context.Context, stale models.AccessToken) (models.AccessToken, error) {
	unlock := s.locks.Lock(stale.OwnerID)
	defer unlock()

	cred, err := s.findActive(ctx, stale.OwnerID)
	if err != nil {
		return models.AccessToken{}, err
	}
	if cred.AccessToken != stale.Value {
		return cred.Token(), nil
	}

	return s.refreshLocked(ctx, cred)
}

// refreshLocked must be called with the owner lock held. A grant the remote
// side rejects deactivates the credential; transport failures leave it
// active so that the next attempt can retry.
func (s *credentialService) refreshLocked(ctx context.Context, cred models.Credential) (models.AccessToken, error) {
	log := logger.FromContext(ctx)

	grant, err := s.oauth.RefreshToken(ctx, cred.Environment, cred.RefreshToken)
	if err != nil {
		log.Err(err).Str("func", "credentialService.refreshLocked").Int64("owner_id", cred.OwnerID).Msg("token refresh failed")

		if errors.Is(err, adapter.ErrOAuthRejected) {
			if deErr := s.repo.Deactivate(ctx, cred.OwnerID, models.DeactivationRefreshFailed, s.now()); deErr != nil {
				log.Err(deErr).Str("func", "credentialService.refreshLocked").Int64("owner_id", cred.OwnerID).Msg("failed to deactivate credential")
			}
		}
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	now := s.now()
	cred.AccessToken = grant.AccessToken
	cred.RefreshToken = grant.RefreshToken
	if grant.InstanceURL != "" {
		cred.RemoteBaseURL = grant.InstanceURL
	}
	cred.IssuedAt = now
	cred.ExpiresAt = expiresAt(grant, now)

	if err = s.repo.UpdateTokens(ctx, cred); err != nil {
		log.Err(err).Str("func", "credentialService.refreshLocked").Int64("owner_id", cred.OwnerID).Msg("failed to store refreshed tokens")
		if errors.Is(err, store.ErrCredentialNotFound) {
			return models.AccessToken{}, ErrNotConnected
		}
		return models.AccessToken{}, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	log.Debug().Int64("owner_id", cred.OwnerID).Msg("access token refreshed")
	return cred.Token(), nil
}

// Revoke disconnects the owner. The remote revocation is best effort; the
// local credential is deactivated whatever the remote outcome.
func (s *credentialService) Revoke(ctx context.Context, ownerID int64) error {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	cred, err := s.findActive(ctx, ownerID)
	if errors.Is(err, ErrNotConnected) {
		return nil
	}
	if err != nil {
		return err
	}

	token := cred.RefreshToken
	if token == "" {
		token = cred.AccessToken
	}
	if err = s.oauth.Revoke(ctx, cred.Environment, token); err != nil {
		log.Warn().Err(err).Str("func", "credentialService.Revoke").Int64("owner_id", ownerID).Msg("remote revocation failed, disconnecting locally")
	}

	if err = s.repo.Deactivate(ctx, ownerID, models.DeactivationDisconnected, s.now()); err != nil {
		log.Err(err).Str("func", "credentialService.Revoke").Int64("owner_id", ownerID).Msg("failed to deactivate credential")
		return fmt.Errorf("deactivating credential: %w", err)
	}

	log.Info().Int64("owner_id", ownerID).Msg("crm connection revoked")
	return nil
}

func (s *credentialService) Status(ctx context.Context, ownerID int64) (models.ConnectionStatus, error) {
	cred, err := s.findActive(ctx, ownerID)
	if errors.Is(err, ErrNotConnected) {
		return models.ConnectionStatus{Connected: false}, nil
	}
	if err != nil {
		return models.ConnectionStatus{}, err
	}

	issuedAt := cred.IssuedAt
	return models.ConnectionStatus{
		Connected:    true,
		Environment:  cred.Environment,
		RemoteUserID: cred.RemoteUserID,
		InstanceURL:  cred.RemoteBaseURL,
		IssuedAt:     &issuedAt,
		LastUsedAt:   cred.LastUsedAt,
	}, nil
}

func (s *credentialService) findActive(ctx context.Context, ownerID int64) (models.Credential, error) {
	cred, err := s.repo.FindActive(ctx, ownerID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.Credential{}, ErrNotConnected
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "credentialService.findActive").Int64("owner_id", ownerID).Msg("failed to load credential")
		return models.Credential{}, fmt.Errorf("loading credential: %w", err)
	}
	return cred, nil
}

func (s *credentialService) touch(ctx context.Context, cred models.Credential) {
	if err := s.repo.TouchLastUsed(ctx, cred.ID, s.now()); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "credentialService.touch").Int64("owner_id", cred.OwnerID).Msg("failed to record credential use")
	}
}

func expiresAt(grant models.TokenGrant, now time.Time) *time.Time {
	if grant.ExpiresIn <= 0 {
		return nil
	}
	t := now.Add(time.Duration(grant.ExpiresIn) * time.Second)
	return &t
}
