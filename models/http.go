// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthorizeResponse carries the remote authorization URL the operator's
// browser must be sent to.
type AuthorizeResponse struct {
	URL string `json:"url"`
}

// CallbackRequest is posted by the front end after the remote CRM redirected
// back with an authorization code.
type CallbackRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// WebhookResponse is returned to the remote CRM after processing a delivery.
type WebhookResponse struct {
	Received int              `json:"received"`
	Outcomes []WebhookOutcome `json:"outcomes"`
}
