// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the CRM sync service.
//
// Two surfaces are served. The webhook endpoint receives signed push
// notifications from the remote CRM and is authenticated by its HMAC
// signature. The operator API under /api/crm is authenticated by bearer
// tokens and exposes the OAuth connection, manual sync triggers, conflict
// resolution and the audit log. Tracing, access logging and compression are
// handled here before requests reach the service layer.
package http
