// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to fields left empty by every other source.
const (
	DefaultHTTPAddress         = "0.0.0.0:8080"
	DefaultGRPCAddress         = "0.0.0.0:9090"
	DefaultServerTimeout       = 30 * time.Second
	DefaultRemoteTimeout       = 30 * time.Second
	DefaultSandboxURL          = "https://test.salesforce.com"
	DefaultProductionURL       = "https://login.salesforce.com"
	DefaultAPIVersion          = "v59.0"
	DefaultRateLimit           = 10.0
	DefaultRateBurst           = 20
	DefaultReplayWindow        = 5 * time.Minute
	DefaultSyncInterval        = 5 * time.Minute
	DefaultRefreshThreshold    = 2 * time.Hour
	DefaultStateTTL            = 10 * time.Minute
	DefaultFullSyncWindow      = 200
	DefaultIncrementalLookback = 24 * time.Hour
	DefaultIncrementalOverlap  = time.Minute
	DefaultPoolSize            = 4
	DefaultTokenIssuer         = "go-crm-sync"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: DefaultTokenIssuer,
		},
		Remote: Remote{
			SandboxURL:     DefaultSandboxURL,
			ProductionURL:  DefaultProductionURL,
			APIVersion:     DefaultAPIVersion,
			RequestTimeout: DefaultRemoteTimeout,
			RateLimit:      DefaultRateLimit,
			RateBurst:      DefaultRateBurst,
		},
		Webhook: Webhook{
			ReplayWindow: DefaultReplayWindow,
		},
		Sync: Sync{
			Interval:            DefaultSyncInterval,
			RefreshThreshold:    DefaultRefreshThreshold,
			StateTTL:            DefaultStateTTL,
			FullSyncWindow:      DefaultFullSyncWindow,
			IncrementalLookback: DefaultIncrementalLookback,
			IncrementalOverlap:  DefaultIncrementalOverlap,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Workers: Workers{
			PoolSize: DefaultPoolSize,
		},
	}
}
