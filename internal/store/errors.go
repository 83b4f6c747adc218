// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when the owner has no active credential
	// or an update targets a credential that is no longer active.
	ErrCredentialNotFound = errors.New("active credential was not found")

	// ErrActiveCredentialExists is returned when inserting a credential would
	// violate the one-active-credential-per-owner index.
	ErrActiveCredentialExists = errors.New("owner already has an active credential")

	// ErrAuditEntryNotFound is returned when an audit entry lookup or state
	// transition matches no row.
	ErrAuditEntryNotFound = errors.New("sync audit entry was not found")

	// ErrLocalRecordNotFound is returned when no local record matches.
	ErrLocalRecordNotFound = errors.New("local record was not found")

	// ErrLocalRecordLinked is returned when a remote id is already linked to
	// another local record of the same owner and type.
	ErrLocalRecordLinked = errors.New("remote object is already linked to another local record")

	// ErrCorruptedToken is returned when a stored token cannot be decrypted.
	ErrCorruptedToken = errors.New("stored token cannot be decrypted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
