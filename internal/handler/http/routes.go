// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// signed by the remote CRM, body must reach the verifier unmodified
	router.With(h.verifyWebhook).Post("/webhooks/receive", h.receiveWebhook)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
	})

	router.Route("/api/crm", func(r chi.Router) {
		r.Use(withGZip, h.auth)

		r.Get("/oauth/authorize", h.authorize)
		r.Post("/oauth/callback", h.oauthCallback)

		r.Get("/connection", h.connectionStatus)
		r.Delete("/connection", h.disconnect)

		r.Post("/sync/full", h.fullSync)
		r.Post("/sync/incremental", h.incrementalSync)

		r.Get("/conflicts", h.listConflicts)
		r.Post("/conflicts/{id}/resolve", h.resolveConflict)

		r.Get("/audit", h.auditLog)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
