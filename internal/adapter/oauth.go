// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

const (
	authorizePath = "/services/oauth2/authorize"
	tokenPath     = "/services/oauth2/token"
	revokePath    = "/services/oauth2/revoke"

	oauthScope = "api refresh_token"
)

type oauthAdapter struct {
	client *utils.HTTPClient
	cfg    config.Remote
}

// NewOAuthAdapter creates an [OAuthAdapter] for the client registration in cfg.
func NewOAuthAdapter(cfg config.Remote) OAuthAdapter {
	return &oauthAdapter{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		cfg:    cfg,
	}
}

func (a *oauthAdapter) baseURL(env models.Environment) (string, error) {
	var raw string
	switch env {
	case models.Sandbox:
		raw = a.cfg.SandboxURL
	case models.Production, "":
		raw = a.cfg.ProductionURL
	default:
		return "", fmt.Errorf("unknown environment %q", env)
	}
	return normalizeBaseURL(raw), nil
}

func (a *oauthAdapter) AuthorizeURL(env models.Environment, state string) (string, error) {
	base, err := a.baseURL(env)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", a.cfg.ClientID)
	q.Set("redirect_uri", a.cfg.RedirectURI)
	q.Set("scope", oauthScope)
	q.Set("state", state)

	return base + authorizePath + "?" + q.Encode(), nil
}

func (a *oauthAdapter) ExchangeCode(ctx context.Context, env models.Environment, code string) (models.TokenGrant, error) {
	return a.grant(ctx, env, map[string]string{
		"grant_type":    "authorization_code",
		"code":          code,
		"client_id":     a.cfg.ClientID,
		"client_secret": a.cfg.ClientSecret,
		"redirect_uri":  a.cfg.RedirectURI,
	})
}

func (a *oauthAdapter) RefreshToken(ctx context.Context, env models.Environment, refreshToken string) (models.TokenGrant, error) {
	grant, err := a.grant(ctx, env, map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
		"client_id":     a.cfg.ClientID,
		"client_secret": a.cfg.ClientSecret,
	})
	if err != nil {
		return models.TokenGrant{}, err
	}

	// the refresh grant does not rotate the refresh token unless configured to
	if grant.RefreshToken == "" {
		grant.RefreshToken = refreshToken
	}
	return grant, nil
}

func (a *oauthAdapter) Revoke(ctx context.Context, env models.Environment, token string) error {
	base, err := a.baseURL(env)
	if err != nil {
		return err
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"token": token}).
		Post(base + revokePath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return mapOAuthError(mapHTTPError(resp))
}

func (a *oauthAdapter) grant(ctx context.Context, env models.Environment, form map[string]string) (models.TokenGrant, error) {
	base, err := a.baseURL(env)
	if err != nil {
		return models.TokenGrant{}, err
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(base + tokenPath)
	if err != nil {
		return models.TokenGrant{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	if err = mapOAuthError(mapHTTPError(resp)); err != nil {
		return models.TokenGrant{}, err
	}

	var grant models.TokenGrant
	if err = json.Unmarshal(resp.Body(), &grant); err != nil {
		return models.TokenGrant{}, fmt.Errorf("%w: decoding token response: %w", ErrOAuthRejected, err)
	}
	if grant.AccessToken == "" {
		return models.TokenGrant{}, fmt.Errorf("%w: token response carries no access token", ErrOAuthRejected)
	}

	return grant, nil
}

// mapOAuthError folds client errors of the token endpoint into [ErrOAuthRejected].
// The token endpoint answers invalid_grant with 400, never 401.
func mapOAuthError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errorIsAny(err, errUnauthorized, ErrRemoteBadRequest, ErrRemoteForbidden, ErrRemoteNotFound):
		return fmt.Errorf("%w: %w", ErrOAuthRejected, err)
	default:
		return err
	}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}
