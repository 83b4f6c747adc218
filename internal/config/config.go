// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-crm-sync service. It aggregates all sub-configurations and is
// populated by merging values from environment variables (optionally
// pre-seeded from a .env file), command-line flags, an optional JSON file
// and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level secrets and the application version.
	App App `envPrefix:"APP_"`

	// Remote holds OAuth client settings and remote API endpoints.
	Remote Remote `envPrefix:"REMOTE_"`

	// Webhook holds the shared secret and replay window for inbound
	// push notifications.
	Webhook Webhook `envPrefix:"WEBHOOK_"`

	// Sync holds the reconciliation tunables.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded into the process
	// environment before env parsing. Existing variables are not overridden.
	DotEnvPath string `env:"DOTENV"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control security
// and versioning.
type App struct {
	// TokenSignKey verifies operator JWT bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of operator tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// StateSecret signs the OAuth state parameter.
	// Env: APP_STATE_SECRET
	StateSecret string `env:"STATE_SECRET"`

	// TokenEncryptionKey is the master key for encrypting OAuth tokens at rest.
	// Env: APP_TOKEN_ENCRYPTION_KEY
	TokenEncryptionKey string `env:"TOKEN_ENCRYPTION_KEY"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds the OAuth client registration and API endpoints of the
// external CRM.
type Remote struct {
	// Env: REMOTE_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`
	// Env: REMOTE_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`
	// Env: REMOTE_REDIRECT_URI
	RedirectURI string `env:"REDIRECT_URI"`

	// SandboxURL and ProductionURL are the login hosts used for the OAuth
	// endpoints of each environment.
	// Env: REMOTE_SANDBOX_URL, REMOTE_PRODUCTION_URL
	SandboxURL    string `env:"SANDBOX_URL"`
	ProductionURL string `env:"PRODUCTION_URL"`

	// APIVersion is the REST API version segment, e.g. "v59.0".
	// Env: REMOTE_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// RequestTimeout bounds every outbound call.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the steady-state number of remote requests per second.
	// Env: REMOTE_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size.
	// Env: REMOTE_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Webhook holds inbound push notification settings.
type Webhook struct {
	// Env: WEBHOOK_SECRET
	Secret string `env:"SECRET"`

	// ReplayWindow is the maximum accepted clock skew of the timestamp header.
	// Env: WEBHOOK_REPLAY_WINDOW
	ReplayWindow time.Duration `env:"REPLAY_WINDOW"`
}

// Sync holds the reconciliation tunables.
type Sync struct {
	// Interval is the period of the incremental sync scheduler.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// RefreshThreshold is the credential age after which a token is refreshed
	// before use.
	// Env: SYNC_REFRESH_THRESHOLD
	RefreshThreshold time.Duration `env:"REFRESH_THRESHOLD"`

	// StateTTL is the maximum age of an OAuth state parameter.
	// Env: SYNC_STATE_TTL
	StateTTL time.Duration `env:"STATE_TTL"`

	// FullSyncWindow is the number of most recently modified remote records
	// fetched per object type by a full sync.
	// Env: SYNC_FULL_WINDOW
	FullSyncWindow int `env:"FULL_WINDOW"`

	// IncrementalLookback is used when no successful sync is recorded yet.
	// Env: SYNC_INCREMENTAL_LOOKBACK
	IncrementalLookback time.Duration `env:"INCREMENTAL_LOOKBACK"`

	// IncrementalOverlap is subtracted from the last successful sync time.
	// Env: SYNC_INCREMENTAL_OVERLAP
	IncrementalOverlap time.Duration `env:"INCREMENTAL_OVERLAP"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server listens.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL Data Source Name.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PoolSize bounds how many owners are synchronized concurrently.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first non-zero value wins, in order:
//  1. Environment variables (after loading the optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv("DOTENV")).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
