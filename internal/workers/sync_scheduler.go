// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/service"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
)

// TickReport summarizes the dispatch decisions of one scheduler tick.
type TickReport struct {
	Owners     int
	Dispatched int
	// Busy owners still run a sync started by an earlier tick.
	Busy int
	// Saturated owners found every pool slot taken.
	Saturated int
}

// SyncScheduler runs an incremental sync for every connected owner on a
// fixed interval. Ticks never wait for syncs: an owner whose previous
// scheduled sync is still running is skipped, and so is every owner that
// finds all poolSize slots taken. One owner's failure or slowness never
// affects the others.
type SyncScheduler struct {
	owners   OwnerLister
	engine   service.SyncEngine
	interval time.Duration
	poolSize int64

	slots   *semaphore.Weighted
	running *utils.KeyedMutex[int64]
	wg      sync.WaitGroup

	logger *logger.Logger
}

func NewSyncScheduler(owners OwnerLister, engine service.SyncEngine, cfg config.StructuredConfig, logger *logger.Logger) *SyncScheduler {
	poolSize := int64(cfg.Workers.PoolSize)
	if poolSize < 1 {
		poolSize = 1
	}

	return &SyncScheduler{
		owners:   owners,
		engine:   engine,
		interval: cfg.Sync.Interval,
		poolSize: poolSize,
		slots:    semaphore.NewWeighted(poolSize),
		running:  utils.NewKeyedMutex[int64](),
		logger:   logger,
	}
}

// Run ticks until ctx is cancelled, then waits for the syncs in flight.
func (s *SyncScheduler) Run(ctx context.Context) error {
	log := s.logger.ForComponent("sync_scheduler")
	ctx = log.WithContext(ctx)

	if s.interval <= 0 {
		log.Warn().Msg("sync interval is not positive, scheduler disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.interval).Int64("pool_size", s.poolSize).Msg("sync scheduler started")
	for {
		select {
		case <-ctx.Done():
			s.Wait()
			log.Info().Msg("sync scheduler stopped")
			return nil
		case <-ticker.C:
			report := s.Tick(ctx)
			log.Debug().
				Int("owners", report.Owners).
				Int("dispatched", report.Dispatched).
				Int("busy", report.Busy).
				Int("saturated", report.Saturated).
				Msg("sync tick dispatched")
		}
	}
}

// Tick starts an incremental sync for every connected owner that is idle
// while a pool slot is free. It returns without waiting for the syncs.
func (s *SyncScheduler) Tick(ctx context.Context) TickReport {
	log := logger.FromContext(ctx)
	if ctx.Err() != nil {
		return TickReport{}
	}

	owners, err := s.owners.ListActiveOwners(ctx)
	if err != nil {
		log.Err(err).Str("func", "SyncScheduler.Tick").Msg("failed to list connected owners")
		return TickReport{}
	}

	report := TickReport{Owners: len(owners)}
	for _, ownerID := range owners {
		unlock, ok := s.running.TryLock(ownerID)
		if !ok {
			report.Busy++
			continue
		}
		if !s.slots.TryAcquire(1) {
			unlock()
			report.Saturated++
			continue
		}

		report.Dispatched++
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.slots.Release(1)
			defer unlock()

			s.syncOwner(ctx, ownerID)
		}()
	}

	return report
}

// Wait blocks until every dispatched sync has returned.
func (s *SyncScheduler) Wait() {
	s.wg.Wait()
}

func (s *SyncScheduler) syncOwner(ctx context.Context, ownerID int64) {
	log := logger.FromContext(ctx)

	result, err := s.engine.PerformIncrementalSync(ctx, ownerID)
	switch {
	case err == nil:
		log.Debug().
			Int64("owner_id", ownerID).
			Int("synced", result.Synced).
			Int("conflicts", result.Conflicts).
			Int("errors", result.Errors).
			Msg("scheduled sync finished")
	case errors.Is(err, service.ErrSyncInProgress):
		log.Debug().Int64("owner_id", ownerID).Msg("sync already in progress, skipping")
	default:
		log.Err(err).Str("func", "SyncScheduler.syncOwner").Int64("owner_id", ownerID).Msg("scheduled sync failed")
	}
}
