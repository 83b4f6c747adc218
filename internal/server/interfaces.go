// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the servers managed by this
// package.
type Server interface {
	// RunServer serves until ctx is cancelled or a listener fails, then
	// shuts down and returns.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops serving within ctx's deadline.
	Shutdown(ctx context.Context) error
}

// BackgroundWorker runs alongside the servers until its context ends.
type BackgroundWorker interface {
	Run(ctx context.Context) error
}
