// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication of the
// operator API.
//
// The bearer token is validated via [service.AuthService.ParseToken]. On
// success the owner named by the token subject is stored in the request
// context together with the operator identity recorded on resolved
// conflicts, and the request logger is tagged with the owner.
//
// Requests without a usable token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "Handler.auth")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err), "Handler.auth")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "Handler.auth")
			return
		}

		ctx = utils.WithOwner(ctx, token.OwnerID, operatorName(token.OwnerID))

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("owner_id", token.OwnerID)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// operatorName is the identity recorded as the resolver of conflicts.
func operatorName(ownerID int64) string {
	return "owner:" + strconv.FormatInt(ownerID, 10)
}

// ownerFromRequest returns the owner stored by [Handler.auth].
func ownerFromRequest(r *http.Request) (int64, string, error) {
	ownerID, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok {
		return 0, "", ErrNoOwnerInContext
	}

	operator, ok := utils.GetOperatorFromContext(r.Context())
	if !ok {
		operator = operatorName(ownerID)
	}

	return ownerID, operator, nil
}
