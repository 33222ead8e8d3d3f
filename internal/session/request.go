// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sign-keeper/internal/utils"
	"github.com/MKhiriev/go-sign-keeper/models"
)

type requestState int32

const (
	stateNew requestState = iota
	stateQueued
	stateTaken
	stateResolved
	stateAbandoned
)

func (s requestState) String() string {
	switch s {
	case stateNew:
		return "new"
	case stateQueued:
		return "queued"
	case stateTaken:
		return "taken"
	case stateResolved:
		return "resolved"
	case stateAbandoned:
		return "abandoned"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

var idGenerator = utils.NewUUIDGenerator()

// PendingRequest is one signing request waiting for a decision. The
// response channel is private; the requester holds the receive end
// returned by NewPendingRequest.
type PendingRequest struct {
	ID         string
	Peer       models.PeerMetadata
	Kind       models.RequestKind
	ReceivedAt time.Time

	state    atomic.Int32
	response chan models.Decision
}

// RequestView is a copy of the descriptive part of a PendingRequest. It
// carries no channel, so handing it to the UI creates no second owner.
type RequestView struct {
	ID         string
	Peer       models.PeerMetadata
	Kind       models.RequestKind
	ReceivedAt time.Time
}

// NewPendingRequest creates a request and returns the receive end of its
// response channel. The channel yields exactly one decision and is then
// closed; a close without a value means the request was abandoned.
func NewPendingRequest(peer models.PeerMetadata, kind models.RequestKind) (*PendingRequest, <-chan models.Decision) {
	// capacity 1: resolving never blocks the event loop, even when the
	// requester has already given up
	ch := make(chan models.Decision, 1)

	return &PendingRequest{
		ID:         idGenerator.Generate(),
		Peer:       peer,
		Kind:       kind,
		ReceivedAt: time.Now(),
		response:   ch,
	}, ch
}

// View returns a channel-free copy of the request.
func (r *PendingRequest) View() RequestView {
	return RequestView{
		ID:         r.ID,
		Peer:       r.Peer,
		Kind:       r.Kind,
		ReceivedAt: r.ReceivedAt,
	}
}

// Resolve delivers the decision and closes the channel. Only the owner
// that took the request out of its queue may call it, and only once.
func (r *PendingRequest) Resolve(decision models.Decision) {
	r.transition(stateTaken, stateResolved, "resolve")

	r.response <- decision
	close(r.response)
}

// Abandon closes the channel without a decision. Valid for a request that
// never entered a queue or one that was taken out of it.
func (r *PendingRequest) Abandon() {
	if r.state.CompareAndSwap(int32(stateNew), int32(stateAbandoned)) {
		close(r.response)
		return
	}
	r.transition(stateTaken, stateAbandoned, "abandon")

	close(r.response)
}

func (r *PendingRequest) transition(from, to requestState, op string) {
	if !r.state.CompareAndSwap(int32(from), int32(to)) {
		panic(fmt.Sprintf("session: %s request %s: state is %s, want %s",
			op, r.ID, requestState(r.state.Load()), from))
	}
}
