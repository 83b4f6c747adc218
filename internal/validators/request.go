// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-crm-sync/models"
)

type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ResolveRequest:
		return v.validateResolveRequest(value, fields)
	case *models.ResolveRequest:
		return v.validateResolveRequest(*value, fields)

	case models.CallbackRequest:
		return v.validateCallbackRequest(value)
	case *models.CallbackRequest:
		return v.validateCallbackRequest(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateResolveRequest accepts merge data only for MERGE and only for
// the given fields. No fields means any non-empty name is accepted.
func (v *RequestValidator) validateResolveRequest(req models.ResolveRequest, fields []string) error {
	if !req.Strategy.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, req.Strategy)
	}

	if len(req.MergeData) == 0 {
		return nil
	}
	if req.Strategy != models.Merge {
		return ErrMergeDataNotAllowed
	}

	for name := range req.MergeData {
		if name == "" {
			return ErrEmptyMergeFieldName
		}
		if len(fields) > 0 && !slices.Contains(fields, name) {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}
	return nil
}

func (v *RequestValidator) validateCallbackRequest(req models.CallbackRequest) error {
	if req.Code == "" {
		return ErrEmptyAuthorization
	}
	if req.State == "" {
		return ErrEmptyAuthorizeState
	}
	return nil
}
