// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
)

// Repositories bundles every repository the services depend on.
type Repositories struct {
	CredentialRepository  CredentialRepository
	AuditRepository       AuditRepository
	LocalRecordRepository LocalRecordRepository
}

// NewRepositories wires the PostgreSQL repositories over db.
func NewRepositories(db *DB, cipher *utils.TokenCipher, log *logger.Logger) *Repositories {
	return &Repositories{
		CredentialRepository:  NewCredentialRepository(db, cipher, log),
		AuditRepository:       NewAuditRepository(db, log),
		LocalRecordRepository: NewLocalRecordRepository(db, log),
	}
}
