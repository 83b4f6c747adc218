// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-crm-sync/models"
	"github.com/stretchr/testify/assert"
)

var leadFields = []string{"FirstName", "LastName", "Email", "Phone", "Company"}

func TestRequestValidator_ResolveRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ResolveRequest
		fields  []string
		wantErr error
	}{
		{name: "use remote", req: models.ResolveRequest{Strategy: models.UseRemote}},
		{name: "use local", req: models.ResolveRequest{Strategy: models.UseLocal}},
		{name: "merge without data", req: models.ResolveRequest{Strategy: models.Merge}},
		{
			name:   "merge with known fields",
			req:    models.ResolveRequest{Strategy: models.Merge, MergeData: models.Fields{"Phone": "1", "Company": nil}},
			fields: leadFields,
		},
		{
			name: "merge with any fields when unrestricted",
			req:  models.ResolveRequest{Strategy: models.Merge, MergeData: models.Fields{"Anything": 1}},
		},
		{name: "empty strategy", req: models.ResolveRequest{}, wantErr: ErrUnknownStrategy},
		{name: "lowercase strategy", req: models.ResolveRequest{Strategy: "merge"}, wantErr: ErrUnknownStrategy},
		{
			name:    "data with use local",
			req:     models.ResolveRequest{Strategy: models.UseLocal, MergeData: models.Fields{"Phone": "1"}},
			wantErr: ErrMergeDataNotAllowed,
		},
		{
			name:    "unknown field",
			req:     models.ResolveRequest{Strategy: models.Merge, MergeData: models.Fields{"Revenue": 1}},
			fields:  leadFields,
			wantErr: ErrUnknownField,
		},
		{
			name:    "empty field name",
			req:     models.ResolveRequest{Strategy: models.Merge, MergeData: models.Fields{"": 1}},
			wantErr: ErrEmptyMergeFieldName,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_AcceptsPointers(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), &models.ResolveRequest{Strategy: models.UseRemote}))
	assert.NoError(t, v.Validate(context.Background(), &models.CallbackRequest{Code: "c", State: "s"}))
}

func TestRequestValidator_CallbackRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CallbackRequest
		wantErr error
	}{
		{name: "valid", req: models.CallbackRequest{Code: "c0de", State: "st"}},
		{name: "no code", req: models.CallbackRequest{State: "st"}, wantErr: ErrEmptyAuthorization},
		{name: "no state", req: models.CallbackRequest{Code: "c0de"}, wantErr: ErrEmptyAuthorizeState},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
