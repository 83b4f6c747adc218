// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the database/sql pool opened over the pgx driver.
type DB struct {
	*sql.DB
	classifier ErrorClassifier
	logger     *logger.Logger
}

// NewConnectPostgres opens the pool, pings the server and returns the handle.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(20)
	conn.SetMaxIdleConns(5)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{
		DB:         conn,
		logger:     log,
		classifier: NewPostgresErrorClassifier(),
	}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// isDuplicate reports whether err violates a unique index.
func (db *DB) isDuplicate(err error) bool {
	return db.classifier.Classify(err) == Duplicate
}

// retry runs op and, when it fails with a Transient error while ctx is
// still live, runs it exactly once more.
func (db *DB) retry(ctx context.Context, name string, op func() error) error {
	err := op()
	if err == nil || ctx.Err() != nil || db.classifier.Classify(err) != Transient {
		return err
	}

	db.logger.Warn().Err(err).Str("func", name).Msg("transient database failure, retrying once")
	return op()
}

// inTx runs fn inside a transaction that is committed when fn returns nil
// and rolled back otherwise. A transaction that fails transiently is rerun
// from the start once.
func (db *DB) inTx(ctx context.Context, name string, fn func(tx *sql.Tx) error) error {
	return db.retry(ctx, name, func() error {
		return db.runTx(ctx, fn)
	})
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
