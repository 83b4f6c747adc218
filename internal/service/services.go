// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/models"
)

type Services struct {
	AuthService       AuthService
	AppInfoService    AppInfoService
	CredentialService CredentialService
	SyncEngine        SyncEngine
	WebhookService    WebhookService
	ConflictService   ConflictService
}

// NewServices wires the services around one shared audit writer, so every
// audit write of an owner goes through the same lock.
func NewServices(repos *store.Repositories, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	registry := models.MustDefaultRegistry()
	now := time.Now

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	credentials := NewCredentialService(repos.CredentialRepository, adapter.NewOAuthAdapter(cfg.Remote), cfg, logger)
	remote := adapter.NewRemoteAdapter(cfg.Remote, credentials, registry)

	audit := newAuditWriter(repos.AuditRepository, now)
	engine := newSyncEngine(remote, repos.LocalRecordRepository, repos.AuditRepository, audit, registry, cfg.Sync, now, logger)

	webhooks, err := newWebhookService(cfg.Webhook, registry, repos.AuditRepository, repos.CredentialRepository, audit, engine, now, logger)
	if err != nil {
		return nil, fmt.Errorf("creating webhook service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		AppInfoService:    appInfo,
		CredentialService: credentials,
		SyncEngine:        engine,
		WebhookService:    webhooks,
		ConflictService:   newConflictService(repos.AuditRepository, audit, engine, registry, now, logger),
	}, nil
}
