// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"sync"

	"github.com/MKhiriev/go-sign-keeper/internal/store"
)

// ConnectedState bundles the unlocked store with the pending-request queue.
// It is created by a successful unlock and passed by pointer to every
// authenticated route, so all of them share one store handle and one queue.
type ConnectedState struct {
	Store   store.KeyStore
	Pending *Queue

	closeOnce sync.Once
	closeErr  error
}

func NewConnectedState(ks store.KeyStore) *ConnectedState {
	return &ConnectedState{
		Store:   ks,
		Pending: NewQueue(),
	}
}

// Close ends the session: queued requests are abandoned and the store
// handle is released. Later calls return the first result.
func (s *ConnectedState) Close() error {
	s.closeOnce.Do(func() {
		s.Pending.AbandonAll()
		s.closeErr = s.Store.Close()
	})
	return s.closeErr
}
