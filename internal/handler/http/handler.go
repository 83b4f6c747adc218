// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/service"
	"github.com/MKhiriev/go-crm-sync/internal/validators"
	"github.com/MKhiriev/go-crm-sync/models"
)

const (
	// maxWebhookBody caps the size of an accepted webhook delivery.
	maxWebhookBody = 1 << 20

	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type Handler struct {
	services *service.Services
	registry *models.ObjectTypeRegistry

	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		registry:  models.MustDefaultRegistry(),
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}
