// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the peer side of the signing-request feed.
//
// [SignerAdapter] submits one signing request and waits for the user's
// decision. Transport failures are mapped to the sentinel errors in
// errors.go so callers can tell a rejection from an abandoned or timed out
// request with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sign-keeper/models"
)

// SignerAdapter talks to a running signer.
type SignerAdapter interface {
	// RequestSignature blocks until the signer decides. A rejection is a
	// successful call returning Decision "reject". ErrRequestAbandoned means
	// the signer was locked or closed before a decision, ErrDecisionTimeout
	// that nobody decided in time, ErrSignerBusy that the feed was full.
	RequestSignature(ctx context.Context, req models.SignRequest) (models.SignResponse, error)
}
