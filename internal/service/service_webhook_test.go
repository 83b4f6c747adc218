// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-crm-sync/internal/adapter"
	"github.com/MKhiriev/go-crm-sync/internal/config"
	"github.com/MKhiriev/go-crm-sync/internal/logger"
	"github.com/MKhiriev/go-crm-sync/internal/utils"
	"github.com/MKhiriev/go-crm-sync/models"
)

const webhookSecret = "whsec-test"

func newTestWebhookService(t *testing.T, f *engineFixture) *webhookService {
	t.Helper()
	svc, err := newWebhookService(
		config.Webhook{Secret: webhookSecret, ReplayWindow: 5 * time.Minute},
		models.MustDefaultRegistry(),
		f.audit,
		f.credentials,
		f.engine.audit,
		f.engine,
		f.clock.Now,
		logger.Nop(),
	)
	require.NoError(t, err)
	return svc
}

func sign(payload []byte, timestamp string) []byte {
	return utils.NewHasher([]byte(webhookSecret)).Sum(payload, []byte(timestamp))
}

// seedOwnerReference makes ownerID a connected owner of remoteID.
func seedOwnerReference(t *testing.T, f *engineFixture, ownerID int64, remoteID string) {
	t.Helper()
	if _, err := f.credentials.FindActive(context.Background(), ownerID); err != nil {
		_, err = f.credentials.ReplaceActive(context.Background(), models.Credential{OwnerID: ownerID, AccessToken: "a", RefreshToken: "r"})
		require.NoError(t, err)
	}
	_, err := f.audit.Append(context.Background(), models.SyncAuditEntry{
		OwnerID: ownerID, ObjectType: models.Lead, RemoteObjectID: remoteID,
		Operation: models.OperationCreate, Direction: models.Inbound, Status: models.StatusSuccess,
		ProcessedAt: t0.Add(-time.Hour),
	})
	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// VerifySignature
// ─────────────────────────────────────────────

func TestVerifySignature(t *testing.T) {
	f := newEngineFixture(t)
	svc := newTestWebhookService(t, f)

	payload := []byte(`{"change_type":"UPDATE","object_id":"00QA00000000001AAA"}`)
	now := strconv.FormatInt(t0.Unix(), 10)
	stale := strconv.FormatInt(t0.Add(-10*time.Minute).Unix(), 10)
	future := strconv.FormatInt(t0.Add(10*time.Minute).Unix(), 10)

	tests := []struct {
		name      string
		signature string
		timestamp string
		valid     bool
		reason    string
	}{
		{name: "hex", signature: hex.EncodeToString(sign(payload, now)), timestamp: now, valid: true},
		{name: "prefixed hex", signature: "sha256=" + hex.EncodeToString(sign(payload, now)), timestamp: now, valid: true},
		{name: "base64", signature: base64.StdEncoding.EncodeToString(sign(payload, now)), timestamp: now, valid: true},
		{name: "stale timestamp with valid signature", signature: hex.EncodeToString(sign(payload, stale)), timestamp: stale, reason: "timestamp outside replay window"},
		{name: "future timestamp", signature: hex.EncodeToString(sign(payload, future)), timestamp: future, reason: "timestamp outside replay window"},
		{name: "signed other timestamp", signature: hex.EncodeToString(sign(payload, stale)), timestamp: now, reason: "signature mismatch"},
		{name: "signed other payload", signature: hex.EncodeToString(sign([]byte("{}"), now)), timestamp: now, reason: "signature mismatch"},
		{name: "malformed signature", signature: "zz!!", timestamp: now, reason: "malformed signature"},
		{name: "missing signature", timestamp: now, reason: "missing signature"},
		{name: "missing timestamp", signature: "abcd", reason: "missing timestamp"},
		{name: "malformed timestamp", signature: "abcd", timestamp: "yesterday", reason: "malformed timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.VerifySignature(payload, tt.signature, tt.timestamp)

			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

// ─────────────────────────────────────────────
// ParseEvents
// ─────────────────────────────────────────────

func TestParseEvents_SingleEvent(t *testing.T) {
	svc := newTestWebhookService(t, newEngineFixture(t))

	events, err := svc.ParseEvents([]byte(`{"event_type":"LeadChange","change_type":"UPDATE","object_id":"00QA00000000001AAA","changed_fields":["Phone"],"commit_timestamp":1700000000000}`))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.ChangeUpdate, events[0].ChangeType)
	assert.Equal(t, leadA, events[0].RemoteObjectID)
	assert.Equal(t, []string{"Phone"}, events[0].ChangedFields)
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), events[0].RemoteTimestamp)
}

func TestParseEvents_Batch(t *testing.T) {
	svc := newTestWebhookService(t, newEngineFixture(t))

	events, err := svc.ParseEvents([]byte(`{"events":[
		{"change_type":"CREATE","object_id":"00QA00000000001"},
		{"change_type":"DELETE","object_id":"003A00000000001AAA","object_type":"Contact"}
	]}`))

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, models.ChangeCreate, events[0].ChangeType)
	assert.Equal(t, "Contact", events[1].RemoteObjectType)
}

func TestParseEvents_Invalid(t *testing.T) {
	svc := newTestWebhookService(t, newEngineFixture(t))

	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: `{"change_type":`},
		{name: "missing object id", payload: `{"change_type":"UPDATE"}`},
		{name: "unknown change type", payload: `{"change_type":"MERGE","object_id":"00QA00000000001AAA"}`},
		{name: "short object id", payload: `{"change_type":"UPDATE","object_id":"00Q1"}`},
		{name: "empty batch", payload: `{"events":[]}`},
		{name: "batch with extra property", payload: `{"events":[{"change_type":"UPDATE","object_id":"00QA00000000001AAA"}],"extra":1}`},
		{name: "array root", payload: `[{"change_type":"UPDATE","object_id":"00QA00000000001AAA"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseEvents([]byte(tt.payload))

			require.ErrorIs(t, err, ErrInvalidWebhookPayload)
			assert.True(t, IsVerificationFailure(err))
		})
	}
}

// ─────────────────────────────────────────────
// ProcessWebhook
// ─────────────────────────────────────────────

func TestProcessWebhook_SameUpdateTwice_IsIdempotent(t *testing.T) {
	synced := models.Fields{"Email": "a@b.ch", "Phone": "1"}
	f := newEngineFixture(t, linkedLead("l1", leadA, synced.Clone(), synced))
	seedOwnerReference(t, f, testOwner, leadA)
	svc := newTestWebhookService(t, f)

	f.remote.EXPECT().GetRecord(gomock.Any(), testOwner, models.Lead, leadA).
		Return(remoteLead(leadA, models.Fields{"Email": "a@b.ch", "Phone": "2"}), nil).Times(2)

	event := models.WebhookEvent{ChangeType: models.ChangeUpdate, RemoteObjectID: leadA}

	outcome, err := svc.ProcessWebhook(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcome{ObjectType: models.Lead, Owners: 1, Applied: 1}, outcome)

	afterFirst := f.records.get("l1")
	entries := f.audit.len()
	assert.Equal(t, "2", afterFirst.Fields.String("Phone"))

	f.clock.Advance(time.Minute)
	outcome, err = svc.ProcessWebhook(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Applied)

	assert.Equal(t, afterFirst, f.records.get("l1"))
	assert.Equal(t, entries, f.audit.len())
}

func TestProcessWebhook_DeleteTwice_IsIdempotent(t *testing.T) {
	synced := models.Fields{"Email": "a@b.ch"}
	f := newEngineFixture(t, linkedLead("l1", leadA, synced.Clone(), synced))
	seedOwnerReference(t, f, testOwner, leadA)
	svc := newTestWebhookService(t, f)

	event := models.WebhookEvent{ChangeType: models.ChangeDelete, RemoteObjectID: leadA}

	_, err := svc.ProcessWebhook(context.Background(), event)
	require.NoError(t, err)
	require.True(t, f.records.get("l1").Deleted)
	entries := f.audit.len()

	_, err = svc.ProcessWebhook(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, entries, f.audit.len())
}

func TestProcessWebhook_OneOwnerFails_OthersContinue(t *testing.T) {
	const otherOwner int64 = 8
	f := newEngineFixture(t)
	seedOwnerReference(t, f, testOwner, leadA)
	seedOwnerReference(t, f, otherOwner, leadA)
	svc := newTestWebhookService(t, f)

	f.remote.EXPECT().GetRecord(gomock.Any(), testOwner, models.Lead, leadA).Return(models.RemoteRecord{}, adapter.ErrRemoteUnavailable)
	f.remote.EXPECT().GetRecord(gomock.Any(), otherOwner, models.Lead, leadA).Return(remoteLead(leadA, models.Fields{"Email": "x@y.ch"}), nil)

	outcome, err := svc.ProcessWebhook(context.Background(), models.WebhookEvent{ChangeType: models.ChangeUpdate, RemoteObjectID: leadA})

	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Owners)
	assert.Equal(t, 1, outcome.Applied)
	assert.Equal(t, 1, outcome.Failed)
	assert.Len(t, f.records.ofType(otherOwner, models.Lead), 1)

	failed := f.audit.matching(models.OperationUpdate, models.Inbound, models.StatusFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, testOwner, failed[0].OwnerID)
}

func TestProcessWebhook_DisconnectedOwner_Skipped(t *testing.T) {
	const otherOwner int64 = 8
	f := newEngineFixture(t)
	seedOwnerReference(t, f, testOwner, leadA)
	seedOwnerReference(t, f, otherOwner, leadA)
	require.NoError(t, f.credentials.Deactivate(context.Background(), otherOwner, models.DeactivationDisconnected, t0))
	svc := newTestWebhookService(t, f)

	f.remote.EXPECT().GetRecord(gomock.Any(), testOwner, models.Lead, leadA).Return(remoteLead(leadA, models.Fields{"Email": "x@y.ch"}), nil)

	outcome, err := svc.ProcessWebhook(context.Background(), models.WebhookEvent{ChangeType: models.ChangeUpdate, RemoteObjectID: leadA})

	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcome{ObjectType: models.Lead, Owners: 1, Applied: 1}, outcome)
	assert.Empty(t, f.audit.matching(models.OperationUpdate, models.Inbound, models.StatusFailed))
}

func TestProcessWebhook_Ignored(t *testing.T) {
	tests := []struct {
		name         string
		event        models.WebhookEvent
		disconnected bool
	}{
		{name: "unknown prefix", event: models.WebhookEvent{ChangeType: models.ChangeUpdate, RemoteObjectID: "001A00000000001AAA"}},
		{name: "unsupported type", event: models.WebhookEvent{ChangeType: models.ChangeUpdate, RemoteObjectID: leadA, RemoteObjectType: "Opportunity"}},
		{name: "never synced", event: models.WebhookEvent{ChangeType: models.ChangeUpdate, RemoteObjectID: leadB}},
		{name: "owner disconnected", event: models.WebhookEvent{ChangeType: models.ChangeUpdate, RemoteObjectID: leadA}, disconnected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEngineFixture(t)
			seedOwnerReference(t, f, testOwner, leadA)
			if tt.disconnected {
				require.NoError(t, f.credentials.Deactivate(context.Background(), testOwner, models.DeactivationDisconnected, t0))
			}
			svc := newTestWebhookService(t, f)

			outcome, err := svc.ProcessWebhook(context.Background(), tt.event)

			require.NoError(t, err)
			assert.True(t, outcome.Ignored)
			assert.NotEmpty(t, outcome.Reason)
			assert.Zero(t, outcome.Applied)
		})
	}
}

func TestProcessWebhook_ObjectTypeFromRemoteName(t *testing.T) {
	f := newEngineFixture(t)
	const task = "00TA00000000001AAA"
	seedOwnerReference(t, f, testOwner, task)
	svc := newTestWebhookService(t, f)

	f.remote.EXPECT().GetRecord(gomock.Any(), testOwner, models.Activity, task).
		Return(models.RemoteRecord{ID: task, Type: models.Activity, Fields: models.Fields{"Subject": "Call back"}}, nil)

	outcome, err := svc.ProcessWebhook(context.Background(), models.WebhookEvent{ChangeType: models.ChangeCreate, RemoteObjectID: task, RemoteObjectType: "Task"})

	require.NoError(t, err)
	assert.Equal(t, models.Activity, outcome.ObjectType)
	assert.Len(t, f.records.ofType(testOwner, models.Activity), 1)
}
