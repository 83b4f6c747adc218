// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/service"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

// authorize returns the remote consent URL for the requested environment.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.authorize")
		return
	}

	env, err := models.ParseEnvironment(r.URL.Query().Get("environment"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.authorize")
		return
	}

	url, err := h.services.CredentialService.AuthorizationURL(r.Context(), ownerID, env)
	if err != nil {
		writeError(w, r, err, "Handler.authorize")
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthorizeResponse{URL: url}, http.StatusOK)
}

// oauthCallback completes the authorization code flow.
func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.oauthCallback")
		return
	}

	var req models.CallbackRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.oauthCallback")
		return
	}
	if err = h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err), "Handler.oauthCallback")
		return
	}

	if _, err = h.services.CredentialService.IssueCredential(r.Context(), ownerID, req.Code, req.State); err != nil {
		writeError(w, r, err, "Handler.oauthCallback")
		return
	}

	status, err := h.services.CredentialService.Status(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err, "Handler.oauthCallback")
		return
	}

	logger.FromRequest(r).Info().Str("func", "Handler.oauthCallback").Str("environment", string(status.Environment)).Msg("crm connected")

	_, _ = utils.WriteJSON(w, status, http.StatusCreated)
}

func (h *Handler) connectionStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.connectionStatus")
		return
	}

	status, err := h.services.CredentialService.Status(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err, "Handler.connectionStatus")
		return
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}

// disconnect revokes the owner's grant. Disconnecting twice succeeds.
func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	ownerID, _, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err, "Handler.disconnect")
		return
	}

	if err = h.services.CredentialService.Revoke(r.Context(), ownerID); err != nil {
		writeError(w, r, err, "Handler.disconnect")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
