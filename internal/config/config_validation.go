// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.StateSecret == "" {
		return fmt.Errorf("%w: token sign key and state secret are required", ErrInvalidAppConfigs)
	}

	if len(cfg.App.TokenEncryptionKey) < 32 {
		return fmt.Errorf("%w: token encryption key must be at least 32 bytes", ErrInvalidAppConfigs)
	}

	if cfg.Remote.ClientID == "" || cfg.Remote.ClientSecret == "" || cfg.Remote.RedirectURI == "" {
		return fmt.Errorf("%w: client id, client secret and redirect uri are required", ErrInvalidRemoteConfigs)
	}

	if cfg.Remote.RequestTimeout <= 0 || cfg.Remote.RateLimit <= 0 || cfg.Remote.RateBurst <= 0 {
		return fmt.Errorf("%w: timeout and rate limit must be positive", ErrInvalidRemoteConfigs)
	}

	if cfg.Webhook.Secret == "" || cfg.Webhook.ReplayWindow <= 0 {
		return fmt.Errorf("%w: secret and replay window are required", ErrInvalidWebhookConfigs)
	}

	if cfg.Sync.Interval <= 0 || cfg.Sync.RefreshThreshold <= 0 || cfg.Sync.StateTTL <= 0 {
		return fmt.Errorf("%w: interval, refresh threshold and state ttl must be positive", ErrInvalidSyncConfigs)
	}

	if cfg.Sync.FullSyncWindow <= 0 || cfg.Sync.FullSyncWindow > 2000 {
		return fmt.Errorf("%w: full sync window must be within 1..2000", ErrInvalidSyncConfigs)
	}

	if cfg.Workers.PoolSize <= 0 {
		return fmt.Errorf("%w: pool size must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
