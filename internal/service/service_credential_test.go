// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/mock"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

const (
	testOwner     int64 = 7
	testThreshold       = 2 * time.Hour
)

var t0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestCredentialService(repo *memCredentials, oauth adapter.OAuthAdapter, clock *fakeClock) *credentialService {
	return &credentialService{
		repo:             repo,
		oauth:            oauth,
		states:           newStateSigner("state-secret", 10*time.Minute),
		locks:            utils.NewKeyedMutex[int64](),
		refreshThreshold: testThreshold,
		now:              clock.Now,
		logger:           logger.Nop(),
	}
}

func seedCredential(t *testing.T, repo *memCredentials, issuedAt time.Time) models.Credential {
	t.Helper()
	cred, err := repo.ReplaceActive(context.Background(), models.Credential{
		OwnerID:       testOwner,
		AccessToken:   "access-0",
		RefreshToken:  "refresh-0",
		RemoteBaseURL: "https://acme.my.example.com",
		Environment:   models.Sandbox,
		IssuedAt:      issuedAt,
	})
	require.NoError(t, err)
	return cred
}

func grant(n int) models.TokenGrant {
	return models.TokenGrant{
		AccessToken:  fmt.Sprintf("access-%d", n),
		RefreshToken: fmt.Sprintf("refresh-%d", n),
		InstanceURL:  "https://acme.my.example.com",
		ID:           "https://login.example.com/id/00D/005xx0000001",
	}
}

// ─────────────────────────────────────────────
// GetValidToken
// ─────────────────────────────────────────────

func TestGetValidToken_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestCredentialService(&memCredentials{}, mock.NewMockOAuthAdapter(ctrl), newFakeClock(t0))

	_, err := svc.GetValidToken(context.Background(), testOwner)

	require.ErrorIs(t, err, ErrNotConnected)
}

func TestGetValidToken_FreshToken_NoRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	clock := newFakeClock(t0.Add(time.Hour))
	svc := newTestCredentialService(repo, mock.NewMockOAuthAdapter(ctrl), clock)

	token, err := svc.GetValidToken(context.Background(), testOwner)

	require.NoError(t, err)
	assert.Equal(t, "access-0", token.Value)
	assert.Equal(t, "https://acme.my.example.com", token.InstanceURL)

	cred, err := repo.FindActive(context.Background(), testOwner)
	require.NoError(t, err)
	require.NotNil(t, cred.LastUsedAt)
	assert.Equal(t, clock.Now(), *cred.LastUsedAt)
}

func TestGetValidToken_OldToken_RefreshesExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	clock := newFakeClock(t0.Add(3 * time.Hour))
	svc := newTestCredentialService(repo, oauth, clock)

	oauth.EXPECT().RefreshToken(gomock.Any(), models.Sandbox, "refresh-0").Return(grant(1), nil).Times(1)

	token, err := svc.GetValidToken(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.Value)

	token, err = svc.GetValidToken(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.Value)

	cred, err := repo.FindActive(context.Background(), testOwner)
	require.NoError(t, err)
	assert.False(t, cred.IssuedAt.Before(t0.Add(3*time.Hour)))
	assert.Equal(t, "refresh-1", cred.RefreshToken)
	assert.Equal(t, 1, repo.activeCount(testOwner))
}

func TestGetValidToken_ConcurrentCallers_ShareOneRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	svc := newTestCredentialService(repo, oauth, newFakeClock(t0.Add(3*time.Hour)))

	oauth.EXPECT().RefreshToken(gomock.Any(), gomock.Any(), "refresh-0").
		DoAndReturn(func(context.Context, models.Environment, string) (models.TokenGrant, error) {
			time.Sleep(20 * time.Millisecond)
			return grant(1), nil
		}).Times(1)

	var wg sync.WaitGroup
	tokens := make([]string, 16)
	for i := range tokens {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := svc.GetValidToken(context.Background(), testOwner)
			if err == nil {
				tokens[i] = token.Value
			}
		}()
	}
	wg.Wait()

	for _, v := range tokens {
		assert.Equal(t, "access-1", v)
	}
	assert.Equal(t, 1, repo.activeCount(testOwner))
}

// ─────────────────────────────────────────────
// Refresh
// ─────────────────────────────────────────────

func TestRefresh_Concurrent_NeverOverlapsAndKeepsOneActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	svc := newTestCredentialService(repo, oauth, newFakeClock(t0))

	var inFlight, maxInFlight, calls atomic.Int32
	oauth.EXPECT().RefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Environment, string) (models.TokenGrant, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return grant(int(calls.Add(1))), nil
		}).Times(2)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Refresh(context.Background(), testOwner)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
	assert.Equal(t, 1, repo.activeCount(testOwner))
}

func TestRefresh_Rejected_DeactivatesCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	svc := newTestCredentialService(repo, oauth, newFakeClock(t0))

	oauth.EXPECT().RefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.TokenGrant{}, fmt.Errorf("%w: invalid_grant", adapter.ErrOAuthRejected))

	_, err := svc.Refresh(context.Background(), testOwner)
	require.ErrorIs(t, err, ErrRefreshFailed)

	_, err = svc.GetValidToken(context.Background(), testOwner)
	require.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, 0, repo.activeCount(testOwner))
}

func TestRefresh_TransportFailure_KeepsCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	svc := newTestCredentialService(repo, oauth, newFakeClock(t0))

	oauth.EXPECT().RefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.TokenGrant{}, adapter.ErrRemoteUnavailable)

	_, err := svc.Refresh(context.Background(), testOwner)

	require.ErrorIs(t, err, ErrRefreshFailed)
	assert.Equal(t, 1, repo.activeCount(testOwner))
}

func TestRefresh_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestCredentialService(&memCredentials{}, mock.NewMockOAuthAdapter(ctrl), newFakeClock(t0))

	_, err := svc.Refresh(context.Background(), testOwner)

	require.ErrorIs(t, err, ErrNotConnected)
}

func TestRefreshToken_StaleTokenAlreadyReplaced_NoRemoteCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	svc := newTestCredentialService(repo, mock.NewMockOAuthAdapter(ctrl), newFakeClock(t0))

	token, err := svc.RefreshToken(context.Background(), models.AccessToken{OwnerID: testOwner, Value: "older-token"})

	require.NoError(t, err)
	assert.Equal(t, "access-0", token.Value)
}

func TestRefreshToken_CurrentToken_Refreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	svc := newTestCredentialService(repo, oauth, newFakeClock(t0))

	oauth.EXPECT().RefreshToken(gomock.Any(), gomock.Any(), "refresh-0").Return(grant(1), nil)

	token, err := svc.RefreshToken(context.Background(), models.AccessToken{OwnerID: testOwner, Value: "access-0"})

	require.NoError(t, err)
	assert.Equal(t, "access-1", token.Value)
}

// ─────────────────────────────────────────────
// IssueCredential
// ─────────────────────────────────────────────

func TestIssueCredential_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	seedCredential(t, repo, t0.Add(-time.Hour))
	clock := newFakeClock(t0)
	svc := newTestCredentialService(repo, oauth, clock)

	state, err := svc.states.Issue(testOwner, models.Sandbox, clock.Now())
	require.NoError(t, err)

	g := grant(5)
	g.ExpiresIn = 3600
	oauth.EXPECT().ExchangeCode(gomock.Any(), models.Sandbox, "code-1").Return(g, nil)

	cred, err := svc.IssueCredential(context.Background(), testOwner, "code-1", state)

	require.NoError(t, err)
	assert.True(t, cred.IsActive)
	assert.Equal(t, "access-5", cred.AccessToken)
	assert.Equal(t, "005xx0000001", cred.RemoteUserID)
	assert.Equal(t, models.Sandbox, cred.Environment)
	assert.Equal(t, t0, cred.IssuedAt)
	require.NotNil(t, cred.ExpiresAt)
	assert.Equal(t, t0.Add(time.Hour), *cred.ExpiresAt)
	assert.Equal(t, 1, repo.activeCount(testOwner))
}

func TestIssueCredential_InvalidState_NoExchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	clock := newFakeClock(t0)
	svc := newTestCredentialService(&memCredentials{}, oauth, clock)

	valid, err := svc.states.Issue(testOwner, models.Sandbox, t0)
	require.NoError(t, err)
	otherOwner, err := svc.states.Issue(testOwner+1, models.Sandbox, t0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		state string
		at    time.Time
	}{
		{name: "empty", state: "", at: t0},
		{name: "tampered", state: valid + "x", at: t0},
		{name: "other owner", state: otherOwner, at: t0},
		{name: "expired", state: valid, at: t0.Add(11 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.now = tt.at

			_, err := svc.IssueCredential(context.Background(), testOwner, "code", tt.state)

			require.ErrorIs(t, err, ErrInvalidState)
		})
	}
}

func TestIssueCredential_ExchangeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	clock := newFakeClock(t0)
	svc := newTestCredentialService(repo, oauth, clock)

	state, err := svc.states.Issue(testOwner, models.Production, t0)
	require.NoError(t, err)

	oauth.EXPECT().ExchangeCode(gomock.Any(), models.Production, "bad").
		Return(models.TokenGrant{}, adapter.ErrOAuthRejected)

	_, err = svc.IssueCredential(context.Background(), testOwner, "bad", state)

	require.ErrorIs(t, err, ErrTokenExchangeFailed)
	assert.Equal(t, 0, repo.activeCount(testOwner))
}

func TestIssueCredential_EmptyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestCredentialService(&memCredentials{}, mock.NewMockOAuthAdapter(ctrl), newFakeClock(t0))

	state, err := svc.states.Issue(testOwner, models.Production, t0)
	require.NoError(t, err)

	_, err = svc.IssueCredential(context.Background(), testOwner, "", state)

	require.ErrorIs(t, err, ErrTokenExchangeFailed)
}

// TestCredentialLifecycle_AtMostOneActive runs random sequences of issue,
// refresh and revoke and checks the active credential count after each step.
func TestCredentialLifecycle_AtMostOneActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	clock := newFakeClock(t0)
	svc := newTestCredentialService(repo, oauth, clock)

	var n atomic.Int32
	next := func() models.TokenGrant { return grant(int(n.Add(1))) }

	oauth.EXPECT().ExchangeCode(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Environment, string) (models.TokenGrant, error) { return next(), nil }).AnyTimes()
	oauth.EXPECT().RefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Environment, string) (models.TokenGrant, error) { return next(), nil }).AnyTimes()
	oauth.EXPECT().Revoke(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	rng := rand.New(rand.NewSource(42))
	for step := range 200 {
		clock.Advance(time.Minute)
		ctx := context.Background()

		switch rng.Intn(3) {
		case 0:
			state, err := svc.states.Issue(testOwner, models.Sandbox, clock.Now())
			require.NoError(t, err)
			_, err = svc.IssueCredential(ctx, testOwner, "code", state)
			require.NoError(t, err)
			require.Equal(t, 1, repo.activeCount(testOwner), "step %d", step)
		case 1:
			_, err := svc.Refresh(ctx, testOwner)
			if err != nil {
				require.ErrorIs(t, err, ErrNotConnected)
			}
		case 2:
			require.NoError(t, svc.Revoke(ctx, testOwner))
			require.Equal(t, 0, repo.activeCount(testOwner), "step %d", step)
		}

		require.LessOrEqual(t, repo.activeCount(testOwner), 1, "step %d", step)
	}
}

// ─────────────────────────────────────────────
// Revoke / Status
// ─────────────────────────────────────────────

func TestRevoke_RemoteFailure_StillDisconnects(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	svc := newTestCredentialService(repo, oauth, newFakeClock(t0))

	oauth.EXPECT().Revoke(gomock.Any(), models.Sandbox, "refresh-0").Return(errors.New("connection reset"))

	require.NoError(t, svc.Revoke(context.Background(), testOwner))

	status, err := svc.Status(context.Background(), testOwner)
	require.NoError(t, err)
	assert.False(t, status.Connected)
}

func TestRevoke_NotConnected_Noop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestCredentialService(&memCredentials{}, mock.NewMockOAuthAdapter(ctrl), newFakeClock(t0))

	assert.NoError(t, svc.Revoke(context.Background(), testOwner))
}

func TestStatus_Connected(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := &memCredentials{}
	seedCredential(t, repo, t0)
	svc := newTestCredentialService(repo, mock.NewMockOAuthAdapter(ctrl), newFakeClock(t0))

	status, err := svc.Status(context.Background(), testOwner)

	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, models.Sandbox, status.Environment)
	require.NotNil(t, status.IssuedAt)
	assert.Equal(t, t0, *status.IssuedAt)
}

func TestAuthorizationURL_SignsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	oauth := mock.NewMockOAuthAdapter(ctrl)
	svc := newTestCredentialService(&memCredentials{}, oauth, newFakeClock(t0))

	var captured string
	oauth.EXPECT().AuthorizeURL(models.Sandbox, gomock.Any()).
		DoAndReturn(func(_ models.Environment, state string) (string, error) {
			captured = state
			return "https://login.example.com/authorize?state=" + state, nil
		})

	u, err := svc.AuthorizationURL(context.Background(), testOwner, models.Sandbox)

	require.NoError(t, err)
	assert.Contains(t, u, captured)
	env, err := svc.states.Verify(captured, testOwner, t0)
	require.NoError(t, err)
	assert.Equal(t, models.Sandbox, env)
}
