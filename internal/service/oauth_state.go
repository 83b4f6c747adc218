// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

// statePayload is the signed content of an OAuth state parameter.
type statePayload struct {
	OwnerID     int64              `json:"o"`
	Environment models.Environment `json:"e"`
	IssuedAt    int64              `json:"t"`
	Nonce       string             `json:"n"`
}

// stateSigner issues and verifies "payload.signature" OAuth states, both
// parts base64url without padding. The signature is HMAC-SHA256 over the
// encoded payload.
type stateSigner struct {
	hasher *utils.Hasher
	ttl    time.Duration
}

func newStateSigner(secret string, ttl time.Duration) *stateSigner {
	return &stateSigner{hasher: utils.NewHasher([]byte(secret)), ttl: ttl}
}

func (s *stateSigner) Issue(ownerID int64, env models.Environment, now time.Time) (string, error) {
	raw, err := json.Marshal(statePayload{
		OwnerID:     ownerID,
		Environment: env,
		IssuedAt:    now.Unix(),
		Nonce:       uuid.NewString(),
	})
	if err != nil {
		return "", err
	}

	payload := base64.RawURLEncoding.EncodeToString(raw)
	sig := base64.RawURLEncoding.EncodeToString(s.hasher.Sum([]byte(payload)))
	return payload + "." + sig, nil
}

// Verify checks the signature, the owner and the age of state and returns
// the environment the authorization was started for.
func (s *stateSigner) Verify(state string, ownerID int64, now time.Time) (models.Environment, error) {
	payload, sigPart, ok := strings.Cut(state, ".")
	if !ok || payload == "" || sigPart == "" {
		return "", errors.New("malformed state")
	}

	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return "", fmt.Errorf("malformed state signature: %w", err)
	}
	if !s.hasher.Verify(sig, []byte(payload)) {
		return "", errors.New("state signature mismatch")
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("malformed state payload: %w", err)
	}

	var p statePayload
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&p); err != nil {
		return "", fmt.Errorf("malformed state payload: %w", err)
	}

	if p.OwnerID != ownerID {
		return "", errors.New("state issued for another owner")
	}

	age := now.Sub(time.Unix(p.IssuedAt, 0))
	if age > s.ttl {
		return "", fmt.Errorf("state expired %s ago", (age - s.ttl).Truncate(time.Second))
	}
	if age < -time.Minute {
		return "", errors.New("state issued in the future")
	}

	return p.Environment, nil
}
