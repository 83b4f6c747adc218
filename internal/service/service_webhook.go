// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/store"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

//go:embed webhook_schema.json
var webhookSchemaJSON []byte

const webhookSchemaURL = "https://go-crm-sync/schemas/webhook.json"

type webhookService struct {
	hasher       *utils.Hasher
	replayWindow time.Duration
	schema       *jsonschema.Schema

	registry    *models.ObjectTypeRegistry
	auditLog    store.AuditRepository
	credentials store.CredentialRepository
	audit       *auditWriter
	engine      SyncEngine

	now    func() time.Time
	logger *logger.Logger
}

func newWebhookService(
	cfg config.Webhook,
	registry *models.ObjectTypeRegistry,
	auditLog store.AuditRepository,
	credentials store.CredentialRepository,
	audit *auditWriter,
	engine SyncEngine,
	now func() time.Time,
	logger *logger.Logger,
) (*webhookService, error) {
	schema, err := compileWebhookSchema()
	if err != nil {
		return nil, err
	}

	return &webhookService{
		hasher:       utils.NewHasher([]byte(cfg.Secret)),
		replayWindow: cfg.ReplayWindow,
		schema:       schema,
		registry:     registry,
		auditLog:     auditLog,
		credentials:  credentials,
		audit:        audit,
		engine:       engine,
		now:          now,
		logger:       logger,
	}, nil
}

func compileWebhookSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(webhookSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("decoding webhook schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err = c.AddResource(webhookSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("loading webhook schema: %w", err)
	}

	schema, err := c.Compile(webhookSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling webhook schema: %w", err)
	}
	return schema, nil
}

// VerifySignature checks the HMAC-SHA256 of payload followed by timestamp
// and rejects timestamps outside the replay window. A bad request yields an
// invalid result with a reason, never an error.
func (s *webhookService) VerifySignature(payload []byte, signature, timestamp string) models.VerificationResult {
	signature = strings.TrimSpace(signature)
	timestamp = strings.TrimSpace(timestamp)

	if signature == "" {
		return models.VerificationResult{Reason: "missing signature"}
	}
	if timestamp == "" {
		return models.VerificationResult{Reason: "missing timestamp"}
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return models.VerificationResult{Reason: "malformed timestamp"}
	}

	skew := s.now().Sub(time.Unix(ts, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > s.replayWindow {
		return models.VerificationResult{Reason: "timestamp outside replay window"}
	}

	sig, ok := decodeSignature(signature)
	if !ok {
		return models.VerificationResult{Reason: "malformed signature"}
	}
	if !s.hasher.Verify(sig, payload, []byte(timestamp)) {
		return models.VerificationResult{Reason: "signature mismatch"}
	}

	return models.VerificationResult{Valid: true}
}

// decodeSignature accepts hex or base64, optionally prefixed with "sha256=".
func decodeSignature(raw string) ([]byte, bool) {
	raw = strings.TrimPrefix(raw, "sha256=")

	if b, err := hex.DecodeString(raw); err == nil && len(b) > 0 {
		return b, true
	}
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(raw); err == nil && len(b) > 0 {
			return b, true
		}
	}
	return nil, false
}

// ParseEvents validates payload against the webhook schema and decodes
// either a single event or an {"events": [...]} batch.
func (s *webhookService) ParseEvents(payload []byte) ([]models.WebhookEvent, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
	}
	if err = s.schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
	}

	var batch struct {
		Events []models.WebhookEvent `json:"events"`
	}
	if err = json.Unmarshal(payload, &batch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
	}

	events := batch.Events
	if events == nil {
		var single models.WebhookEvent
		if err = json.Unmarshal(payload, &single); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWebhookPayload, err)
		}
		events = []models.WebhookEvent{single}
	}

	for i := range events {
		if events[i].CommitTimestamp > 0 {
			events[i].RemoteTimestamp = time.UnixMilli(events[i].CommitTimestamp).UTC()
		}
	}
	return events, nil
}

// ProcessWebhook dispatches event to every owner that has synced the object
// before. One owner's failure is recorded and does not stop the others.
func (s *webhookService) ProcessWebhook(ctx context.Context, event models.WebhookEvent) (models.WebhookOutcome, error) {
	log := logger.FromContext(ctx).ForComponent("webhook")
	ctx = log.WithContext(ctx)

	objectType, err := s.objectType(event)
	if err != nil {
		log.Info().Err(err).Str("remote_id", event.RemoteObjectID).Msg("ignoring webhook for unsupported object")
		return models.WebhookOutcome{Ignored: true, Reason: err.Error()}, nil
	}

	outcome := models.WebhookOutcome{ObjectType: objectType}

	owners, err := s.auditLog.FindOwnersByRemoteID(ctx, event.RemoteObjectID)
	if err != nil {
		log.Err(err).Str("func", "webhookService.ProcessWebhook").Str("remote_id", event.RemoteObjectID).Msg("failed to resolve owners")
		return outcome, fmt.Errorf("resolving owners: %w", err)
	}
	if len(owners) == 0 {
		outcome.Ignored = true
		outcome.Reason = "object is not synced for any owner"
		return outcome, nil
	}

	owners, err = s.connected(ctx, owners)
	if err != nil {
		log.Err(err).Str("func", "webhookService.ProcessWebhook").Str("remote_id", event.RemoteObjectID).Msg("failed to list connected owners")
		return outcome, fmt.Errorf("listing connected owners: %w", err)
	}
	if len(owners) == 0 {
		outcome.Ignored = true
		outcome.Reason = "no owner of the object is connected"
		return outcome, nil
	}
	outcome.Owners = len(owners)

	for _, ownerID := range owners {
		ownerCtx := log.ForOwner(ownerID).WithContext(ctx)

		status, err := s.engine.ApplyRemoteChange(ownerCtx, ownerID, objectType, event.RemoteObjectID, event.ChangeType)
		if err == nil {
			outcome.Applied++
			continue
		}

		outcome.Failed++
		logger.FromContext(ownerCtx).Err(err).
			Str("func", "webhookService.ProcessWebhook").
			Str("remote_id", event.RemoteObjectID).
			Str("change_type", string(event.ChangeType)).
			Msg("webhook dispatch failed for owner")

		if status != models.StatusFailed {
			_, _ = s.audit.Write(ownerCtx, models.SyncAuditEntry{
				OwnerID:        ownerID,
				ObjectType:     objectType,
				RemoteObjectID: event.RemoteObjectID,
				Operation:      operationForChange(event.ChangeType),
				Direction:      models.Inbound,
				Status:         models.StatusFailed,
				ErrorMessage:   err.Error(),
			})
		}
	}

	return outcome, nil
}

// connected keeps the owners that still hold an active credential.
func (s *webhookService) connected(ctx context.Context, owners []int64) ([]int64, error) {
	active, err := s.credentials.ListActiveOwners(ctx)
	if err != nil {
		return nil, err
	}

	isActive := make(map[int64]struct{}, len(active))
	for _, id := range active {
		isActive[id] = struct{}{}
	}

	out := owners[:0:0]
	for _, id := range owners {
		if _, ok := isActive[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// objectType derives the object type from the event metadata or, when it
// is absent, from the remote ID's key prefix.
func (s *webhookService) objectType(event models.WebhookEvent) (models.ObjectType, error) {
	if event.RemoteObjectType != "" {
		return s.registry.TypeForName(event.RemoteObjectType)
	}
	t, err := s.registry.TypeForID(event.RemoteObjectID)
	if err != nil {
		return "", err
	}
	return t, nil
}

// IsVerificationFailure reports whether err rejects the whole delivery.
func IsVerificationFailure(err error) bool {
	return errors.Is(err, ErrWebhookVerificationFailed) || errors.Is(err, ErrInvalidWebhookPayload)
}
