// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
	"time"
)

// Environment selects which remote CRM installation a credential talks to.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

// ParseEnvironment converts raw user input into an [Environment].
// An empty string defaults to [Production].
func ParseEnvironment(raw string) (Environment, error) {
	switch Environment(raw) {
	case "":
		return Production, nil
	case Sandbox, Production:
		return Environment(raw), nil
	default:
		return "", fmt.Errorf("unknown environment %q", raw)
	}
}

// Credential is the OAuth grant an owner gave this application to act on
// the remote CRM. At most one credential per owner is active at a time;
// older ones are kept deactivated for audit purposes.
type Credential struct {
	// ID is the database identifier of the credential row.
	ID int64 `json:"id"`

	// OwnerID is the local user on whose behalf the connection exists.
	OwnerID int64 `json:"owner_id"`

	// AccessToken and RefreshToken are never serialized to API clients.
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`

	// RemoteBaseURL is the instance URL returned by the token endpoint.
	// All object API calls for this owner are addressed to it.
	RemoteBaseURL string `json:"remote_base_url"`

	// RemoteUserID identifies the remote user that authorized the grant.
	RemoteUserID string `json:"remote_user_id"`

	Environment Environment `json:"environment"`

	// IssuedAt is the moment the current access token was obtained.
	// It is reset on every refresh and drives the refresh threshold.
	IssuedAt time.Time `json:"issued_at"`

	IsActive   bool       `json:"is_active"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`

	DeactivatedAt      *time.Time `json:"deactivated_at,omitempty"`
	DeactivationReason string     `json:"deactivation_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Age reports how long ago the access token was issued relative to now.
func (c Credential) Age(now time.Time) time.Duration {
	return now.Sub(c.IssuedAt)
}

// Token returns the subset of the credential needed to authenticate a
// remote call.
func (c Credential) Token() AccessToken {
	return AccessToken{
		OwnerID:     c.OwnerID,
		Value:       c.AccessToken,
		InstanceURL: c.RemoteBaseURL,
		IssuedAt:    c.IssuedAt,
	}
}

// Deactivation reasons recorded on credentials.
const (
	DeactivationReplaced      = "replaced"
	DeactivationRefreshFailed = "refresh_failed"
	DeactivationDisconnected  = "disconnected"
)

// AccessToken is a bearer token ready to be used against the instance URL.
type AccessToken struct {
	OwnerID     int64
	Value       string
	InstanceURL string
	IssuedAt    time.Time
}

// TokenGrant is the decoded response of the remote OAuth token endpoint.
type TokenGrant struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	InstanceURL  string `json:"instance_url"`
	ID           string `json:"id"`
	IssuedAt     string `json:"issued_at"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	ExpiresIn    int64  `json:"expires_in"`
}

// ConnectionStatus is the operator-facing view of an owner's connection.
type ConnectionStatus struct {
	Connected    bool        `json:"connected"`
	Environment  Environment `json:"environment,omitempty"`
	RemoteUserID string      `json:"remote_user_id,omitempty"`
	InstanceURL  string      `json:"instance_url,omitempty"`
	IssuedAt     *time.Time  `json:"issued_at,omitempty"`
	LastUsedAt   *time.Time  `json:"last_used_at,omitempty"`
}

// RemoteUserID extracts the remote user id from the identity URL returned
// in the grant's id field (the last path segment).
func (g TokenGrant) RemoteUserID() string {
	id := strings.TrimRight(g.ID, "/")
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}
