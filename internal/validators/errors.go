// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field")

	ErrUnknownStrategy     = errors.New("unknown resolution strategy")
	ErrMergeDataNotAllowed = errors.New("merge data is only accepted with the MERGE strategy")
	ErrEmptyMergeFieldName = errors.New("merge data contains an empty field name")
	ErrEmptyAuthorization  = errors.New("authorization code is required")
	ErrEmptyAuthorizeState = errors.New("state is required")
)
