// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import (
	"github.com/MKhiriev/go-sign-keeper/internal/session"
	"github.com/MKhiriev/go-sign-keeper/models"
)

// Route is the current screen and its data. The set of implementations is
// closed: UnlockRoute, HomeRoute, KeypairsRoute, RelaysRoute, WalletRoute
// and SettingsRoute.
type Route interface {
	Name() RouteName
	// connected returns the session the route holds, nil before unlock.
	connected() *session.ConnectedState
}

// UnlockRoute is the only screen reachable without a session.
type UnlockRoute struct {
	Password    string
	Masked      bool
	StoreExists bool
}

func (r *UnlockRoute) Name() RouteName                    { return Unlock }
func (r *UnlockRoute) connected() *session.ConnectedState { return nil }

type HomeRoute struct {
	Session *session.ConnectedState
}

func (r *HomeRoute) Name() RouteName                    { return Home }
func (r *HomeRoute) connected() *session.ConnectedState { return r.Session }

type RelaysRoute struct {
	Session *session.ConnectedState
}

func (r *RelaysRoute) Name() RouteName                    { return Relays }
func (r *RelaysRoute) connected() *session.ConnectedState { return r.Session }

type WalletRoute struct {
	Session *session.ConnectedState
}

func (r *WalletRoute) Name() RouteName                    { return Wallet }
func (r *WalletRoute) connected() *session.ConnectedState { return r.Session }

type SettingsRoute struct {
	Session *session.ConnectedState
}

func (r *SettingsRoute) Name() RouteName                    { return Settings }
func (r *SettingsRoute) connected() *session.ConnectedState { return r.Session }

// KeypairsRoute is the key management screen with its two subroutes.
type KeypairsRoute struct {
	Session  *session.ConnectedState
	Subroute KeypairsSubroute
}

func (r *KeypairsRoute) Name() RouteName                    { return r.Subroute.Name() }
func (r *KeypairsRoute) connected() *session.ConnectedState { return r.Session }

// KeypairsSubroute is either *KeypairsListPage or *KeypairsAddPage.
type KeypairsSubroute interface {
	Name() RouteName
	isKeypairsSubroute()
}

// KeypairsListPage lists stored public keys a page at a time.
type KeypairsListPage struct {
	Page int
}

func (p *KeypairsListPage) Name() RouteName     { return KeypairsList }
func (p *KeypairsListPage) isKeypairsSubroute() {}

// KeypairsAddPage holds the raw secret-key input and the keypair parsed from
// it. Keypair is non-nil iff SecretInput is a valid secret key.
type KeypairsAddPage struct {
	SecretInput string
	Keypair     *models.Keypair

	// Status is the last success message, SaveErr the last save failure.
	Status  string
	SaveErr error
}

func (p *KeypairsAddPage) Name() RouteName     { return KeypairsAdd }
func (p *KeypairsAddPage) isKeypairsSubroute() {}

// CanSave reports whether the save action is enabled.
func (p *KeypairsAddPage) CanSave() bool {
	return p.Keypair != nil
}

// Session returns the session held by r, or nil when r is the Unlock
// screen.
func Session(r Route) *session.ConnectedState {
	if r == nil {
		return nil
	}
	return r.connected()
}
