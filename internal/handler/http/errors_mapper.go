// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/service"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrNotConnected:              http.StatusConflict,
	service.ErrInvalidState:              http.StatusBadRequest,
	service.ErrTokenExchangeFailed:       http.StatusBadGateway,
	service.ErrRefreshFailed:             http.StatusBadGateway,
	service.ErrConflictNotFound:          http.StatusNotFound,
	service.ErrUnsupportedStrategy:       http.StatusBadRequest,
	service.ErrWebhookVerificationFailed: http.StatusBadRequest,
	service.ErrInvalidWebhookPayload:     http.StatusBadRequest,
	service.ErrSyncInProgress:            http.StatusConflict,
	service.ErrVersionIsNotSpecified:     http.StatusInternalServerError,

	models.ErrUnsupportedObjectType: http.StatusBadRequest,
	models.ErrUnknownIDPrefix:       http.StatusBadRequest,

	adapter.ErrRemoteAuthFailed:  http.StatusBadGateway,
	adapter.ErrRemoteUnavailable: http.StatusServiceUnavailable,
	adapter.ErrRemoteNotFound:    http.StatusBadGateway,
	adapter.ErrRemoteBadRequest:  http.StatusBadGateway,
	adapter.ErrRemoteForbidden:   http.StatusBadGateway,
	adapter.ErrOAuthRejected:     http.StatusBadGateway,
	adapter.ErrBatchTooLarge:     http.StatusInternalServerError,

	store.ErrCredentialNotFound:  http.StatusConflict,
	store.ErrAuditEntryNotFound:  http.StatusNotFound,
	store.ErrLocalRecordNotFound: http.StatusNotFound,
	store.ErrLocalRecordLinked:   http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrNoOwnerInContext:           http.StatusUnauthorized,
	ErrRouteNotFound:              http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal failures
// are reported to the caller without their details.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, status, message, w.Header().Get(traceIDHeader))
}
