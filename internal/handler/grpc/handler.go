// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc serves the standard grpc.health.v1 service. The reported
// status follows the reachability of the database backing the sync service.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name probed by orchestrators.
const ServiceName = "crmsync.v1.SyncService"

const (
	defaultProbeInterval = 15 * time.Second
	probeTimeout         = 3 * time.Second
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It owns the health server and periodically probes the database. A failed
// probe flips both the overall and the [ServiceName] status to NOT_SERVING.
type Handler struct {
	health *health.Server
	pinger Pinger

	interval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting NOT_SERVING until the first
// successful probe.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:   health.NewServer(),
		pinger:   pinger,
		interval: defaultProbeInterval,
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Run probes until ctx is cancelled, then marks every service as shut down
// so that watchers are told before the listener goes away.
func (h *Handler) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return nil
		case <-ticker.C:
			h.Probe(ctx)
		}
	}
}

// Probe pings the database once and publishes the result.
func (h *Handler) Probe(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "grpc.Handler.Probe").Msg("database is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
