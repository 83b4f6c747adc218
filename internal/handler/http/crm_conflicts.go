// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-crm-sync/internal/service"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listConflicts(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.listConflicts")
		return
	}

	conflicts, err := h.services.ConflictService.ListConflicts(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err, "Handler.listConflicts")
		return
	}
	if conflicts == nil {
		conflicts = []models.ConflictRecord{}
	}

	_, _ = utils.WriteJSON(w, conflicts, http.StatusOK)
}

// resolveConflict applies the operator's strategy to one CONFLICT entry and
// returns the resolved entry.
func (h *Handler) resolveConflict(w http.ResponseWriter, r *http.Request) {
	ownerID, operator, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.resolveConflict")
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || entryID <= 0 {
		writeError(w, r, fmt.Errorf("%w: invalid conflict id %q", service.ErrInvalidDataProvided, chi.URLParam(r, "id")), "Handler.resolveConflict")
		return
	}

	var req models.ResolveRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.resolveConflict")
		return
	}

	entry, err := h.services.ConflictService.ResolveConflict(r.Context(), ownerID, entryID, req, operator)
	if err != nil {
		writeError(w, r, err, "Handler.resolveConflict")
		return
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusOK)
}

// auditLog lists the owner's audit entries, newest first. Supported query
// parameters: status, object_type, remote_id, limit and offset.
func (h *Handler) auditLog(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.auditLog")
		return
	}

	filter, err := h.parseAuditFilter(r)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.auditLog")
		return
	}
	filter.OwnerID = ownerID

	entries, err := h.services.ConflictService.AuditLog(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, "Handler.auditLog")
		return
	}
	if entries == nil {
		entries = []models.SyncAuditEntry{}
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) parseAuditFilter(r *http.Request) (models.AuditFilter, error) {
	query := r.URL.Query()
	filter := models.AuditFilter{
		RemoteObjectID: query.Get("remote_id"),
		Limit:          defaultAuditLimit,
	}

	if raw := query.Get("status"); raw != "" {
		switch status := models.Status(raw); status {
		case models.StatusSuccess, models.StatusFailed, models.StatusPending, models.StatusConflict:
			filter.Status = status
		default:
			return filter, fmt.Errorf("unknown status %q", raw)
		}
	}

	if raw := query.Get("object_type"); raw != "" {
		if _, err := h.registry.Describe(models.ObjectType(raw)); err != nil {
			return filter, err
		}
		filter.ObjectType = models.ObjectType(raw)
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return filter, fmt.Errorf("invalid limit %q", raw)
		}
		filter.Limit = min(limit, maxAuditLimit)
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("invalid offset %q", raw)
		}
		filter.Offset = offset
	}

	return filter, nil
}
