// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testMasterKey = "0123456789abcdef0123456789abcdef"

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:         db,
		classifier: NewPostgresErrorClassifier(),
		logger:     logger.Nop(),
	}
}

func newTestCipher(t *testing.T) *utils.TokenCipher {
	t.Helper()
	c, err := utils.NewTokenCipher([]byte(testMasterKey))
	require.NoError(t, err)
	return c
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}
