// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

// receiveWebhook dispatches a verified delivery. Only malformed payloads are
// reported as failures; processing errors are logged and acknowledged with
// 200 so the sender does not retry them.
func (h *Handler) receiveWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, r, err, "Handler.receiveWebhook")
		return
	}

	events, err := h.services.WebhookService.ParseEvents(body)
	if err != nil {
		writeError(w, r, err, "Handler.receiveWebhook")
		return
	}

	// the sender hanging up must not abort a half-applied delivery
	ctx := context.WithoutCancel(r.Context())

	response := models.WebhookResponse{
		Received: len(events),
		Outcomes: make([]models.WebhookOutcome, 0, len(events)),
	}
	for _, event := range events {
		outcome, err := h.services.WebhookService.ProcessWebhook(ctx, event)
		if err != nil {
			log.Err(err).
				Str("func", "Handler.receiveWebhook").
				Str("remote_id", event.RemoteObjectID).
				Str("change_type", string(event.ChangeType)).
				Msg("webhook event processing failed")
			outcome.Reason = err.Error()
		}
		response.Outcomes = append(response.Outcomes, outcome)
	}

	log.Info().Str("func", "Handler.receiveWebhook").Int("events", len(events)).Msg("webhook delivery processed")

	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
