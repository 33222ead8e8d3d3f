// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Decision is the user's answer to a remote signing request.
type Decision int

const (
	DecisionReject Decision = iota
	DecisionApprove
)

func (d Decision) String() string {
	if d == DecisionApprove {
		return "approve"
	}
	return "reject"
}

// PeerMetadata describes the party that asked for a signature.
type PeerMetadata struct {
	Name      string `json:"name"`
	PublicKey string `json:"public_key,omitempty"`
	Relay     string `json:"relay,omitempty"`
}

// RequestKind describes the operation a peer wants performed with a held key,
// e.g. "sign_event" or "get_public_key".
type RequestKind struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// SignRequest is the body a peer posts to the signing-request feed.
type SignRequest struct {
	Peer PeerMetadata `json:"peer"`
	Kind RequestKind  `json:"kind"`
}

// SignResponse reports the decision taken for a SignRequest.
type SignResponse struct {
	ID       string `json:"id"`
	Decision string `json:"decision"`
}
