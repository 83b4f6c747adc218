// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the transport servers and the background workers of
// the sync service until a stop signal arrives, then shuts everything down
// gracefully.
package server
