// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

type syncFunc func(ctx context.Context, ownerID int64) (models.SyncResult, error)

func (h *Handler) fullSync(w http.ResponseWriter, r *http.Request) {
	h.runSync(w, r, h.services.SyncEngine.PerformFullSync, "Handler.fullSync")
}

func (h *Handler) incrementalSync(w http.ResponseWriter, r *http.Request) {
	h.runSync(w, r, h.services.SyncEngine.PerformIncrementalSync, "Handler.incrementalSync")
}

// runSync runs one pass for the authenticated owner and returns its counters.
// A pass already running for the owner is answered with 409.
func (h *Handler) runSync(w http.ResponseWriter, r *http.Request, run syncFunc, fn string) {
	ownerID, _, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	result, err := run(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err, fn)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
