// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_ParseToken(t *testing.T) {
	svc := NewAuthService(config.App{TokenSignKey: "sign-key", TokenIssuer: "crm-sync"}, logger.Nop())

	valid, err := utils.GenerateJWTToken("crm-sync", testOwner, time.Hour, "sign-key")
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken("crm-sync", testOwner, time.Hour, "other-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", testOwner, time.Hour, "sign-key")
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken("crm-sync", testOwner, -time.Minute, "sign-key")
	require.NoError(t, err)

	token, err := svc.ParseToken(context.Background(), valid.String())
	require.NoError(t, err)
	assert.Equal(t, testOwner, token.OwnerID)

	for name, raw := range map[string]string{
		"other key":    otherKey.String(),
		"other issuer": otherIssuer.String(),
		"expired":      expired.String(),
		"garbage":      "not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
