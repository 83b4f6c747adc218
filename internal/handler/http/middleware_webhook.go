// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/service"
)

const (
	signatureHeader = "X-CRM-Signature"
	timestampHeader = "X-CRM-Timestamp"
)

// verifyWebhook checks the HMAC signature of a webhook delivery before the
// body is decoded. The body is read once, verified and restored for the next
// handler. Deliveries that fail verification are rejected with 400.
func (h *Handler) verifyWebhook(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, r, fmt.Errorf("%w: body exceeds %d bytes", service.ErrInvalidWebhookPayload, tooLarge.Limit), "Handler.verifyWebhook")
				return
			}
			writeError(w, r, fmt.Errorf("reading webhook body: %w", err), "Handler.verifyWebhook")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		result := h.services.WebhookService.VerifySignature(body, r.Header.Get(signatureHeader), r.Header.Get(timestampHeader))
		if !result.Valid {
			writeError(w, r, fmt.Errorf("%w: %s", service.ErrWebhookVerificationFailed, result.Reason), "Handler.verifyWebhook")
			return
		}

		log.Debug().Str("func", "Handler.verifyWebhook").Int("size", len(body)).Msg("webhook signature verified")

		next.ServeHTTP(w, r)
	})
}
