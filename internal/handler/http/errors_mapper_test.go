// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/service"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not connected", err: service.ErrNotConnected, want: http.StatusConflict},
		{name: "sync in progress", err: fmt.Errorf("owner 7: %w", service.ErrSyncInProgress), want: http.StatusConflict},
		{name: "invalid state", err: fmt.Errorf("%w: expired", service.ErrInvalidState), want: http.StatusBadRequest},
		{name: "conflict not found", err: fmt.Errorf("%w: %w", service.ErrConflictNotFound, store.ErrAuditEntryNotFound), want: http.StatusNotFound},
		{name: "remote unavailable", err: fmt.Errorf("applying USE_LOCAL: %w", adapter.ErrRemoteUnavailable), want: http.StatusServiceUnavailable},
		{name: "refresh rejected", err: fmt.Errorf("%w: %w", service.ErrRefreshFailed, adapter.ErrOAuthRejected), want: http.StatusBadGateway},
		{name: "invalid token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "webhook verification", err: service.ErrWebhookVerificationFailed, want: http.StatusBadRequest},
		{name: "storage", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set(traceIDHeader, "trace-1")

	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("%w: password=secret", store.ErrExecutingQuery), "test")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec.Body)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Error)
	assert.Equal(t, "trace-1", resp.TraceID)
}

func TestWriteError_ExposesClientErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrSyncInProgress, "test")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, service.ErrSyncInProgress.Error(), decodeError(t, rec.Body).Error)
}
