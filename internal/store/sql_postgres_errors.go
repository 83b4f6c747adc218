// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass groups database failures by how a repository reacts to them.
type ErrorClass int

const (
	// Permanent failures are returned to the caller unchanged.
	Permanent ErrorClass = iota

	// Transient failures may succeed on a second attempt: lost connections,
	// serialization failures and deadlocks. Repositories retry them once.
	Transient

	// Duplicate failures violate a unique index, such as a second active
	// credential for an owner or a remote id linked twice.
	Duplicate
)

func (c ErrorClass) String() string {
	switch c {
	case Transient:
		return "transient"
	case Duplicate:
		return "duplicate"
	default:
		return "permanent"
	}
}

// ErrorClassifier maps a driver error to an [ErrorClass].
type ErrorClassifier interface {
	Classify(err error) ErrorClass
}

// PostgresErrorClassifier classifies errors by their SQLSTATE code.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

var transientCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
	pgerrcode.AdminShutdown:          {},
}

// Classify looks for a *pgconn.PgError anywhere in err's chain. Errors that
// carry none are Permanent.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Permanent
	}

	if pgErr.Code == pgerrcode.UniqueViolation {
		return Duplicate
	}
	if _, ok := transientCodes[pgErr.Code]; ok {
		return Transient
	}
	return Permanent
}
