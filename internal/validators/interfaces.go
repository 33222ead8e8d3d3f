// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound transport payloads before they reach
// the signer's session queue.
//
// Validators are injected into transport handlers. Validate takes an
// optional list of field names so a caller can check a subset of a value.
package validators

import "context"

// Validator validates arbitrary input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
