// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package route

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-sign-keeper/internal/crypto"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/session"
	"github.com/MKhiriev/go-sign-keeper/internal/store"
	"github.com/MKhiriev/go-sign-keeper/internal/utils"
	"github.com/MKhiriev/go-sign-keeper/models"
)

// DefaultPageSize is the number of public keys per list page.
const DefaultPageSize = 10

// statusKeyLen is how many characters of a public key status lines show.
const statusKeyLen = 12

// Controller is the top-level state machine. It is not safe for concurrent
// use: a single event loop calls Update and Render. Concurrent producers
// reach it only through IncomingSigningRequest events.
type Controller struct {
	vault    store.Vault
	logger   *logger.Logger
	pageSize int

	current Route
	lastErr error
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the list page size. Non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewController starts on a fresh Unlock screen.
func NewController(vault store.Vault, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		vault:    vault,
		logger:   log,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.current = c.lockedRoute()

	return c
}

// Current returns the current route. Callers must treat it as read-only.
func (c *Controller) Current() Route {
	return c.current
}

// LastError returns the error behind the outcome of the latest Update, if
// any.
func (c *Controller) LastError() error {
	return c.lastErr
}

// Close ends the session, if any, and returns to a locked state. Queued
// requests are abandoned.
func (c *Controller) Close() error {
	var err error
	if s := Session(c.current); s != nil {
		err = s.Close()
	}
	c.current = c.lockedRoute()

	return err
}

// Update applies ev to the current route.
func (c *Controller) Update(ctx context.Context, ev Event) Outcome {
	c.lastErr = nil

	switch e := ev.(type) {
	case Navigate:
		return c.navigate(e.Target)
	case UnlockPasswordChanged:
		return c.onUnlock(func(u *UnlockRoute) { u.Password = e.Text })
	case UnlockToggleMask:
		return c.onUnlock(func(u *UnlockRoute) { u.Masked = !u.Masked })
	case UnlockSubmit:
		return c.unlock(ctx)
	case DeleteAllData:
		return c.deleteAllData()
	case KeypairSecretInputChanged:
		return c.secretInputChanged(e.Text)
	case KeypairSaveRequested:
		return c.saveKeypair(ctx)
	case KeypairGenerateRequested:
		return c.generateKeypair(ctx)
	case KeypairDeleteRequested:
		return c.deleteKeypair(ctx, e.PublicKey)
	case KeypairsPageChanged:
		return c.changePage(ctx, e.Delta)
	case IncomingSigningRequest:
		return c.enqueue(e.Request)
	case ApproveFirstPending:
		return c.resolveFirst(models.DecisionApprove)
	case RejectFirstPending:
		return c.resolveFirst(models.DecisionReject)
	}

	c.logger.Debug().Str("func", "*Controller.Update").Str("event", fmt.Sprintf("%T", ev)).Msg("unknown event")
	return OutcomeIgnored
}

func (c *Controller) lockedRoute() *UnlockRoute {
	return &UnlockRoute{
		Masked:      true,
		StoreExists: c.vault.Exists(),
	}
}

func (c *Controller) navigate(target RouteName) Outcome {
	from := c.current.Name()

	if target == Unlock {
		if s := Session(c.current); s != nil {
			abandoned := s.Pending.Len()
			if err := s.Close(); err != nil {
				c.logger.Err(err).Str("func", "*Controller.navigate").Msg("failed to close key store on lock")
			}
			c.logger.Info().Str("func", "*Controller.navigate").Int("abandoned", abandoned).Msg("session locked")
		}
		c.current = c.lockedRoute()
		return OutcomeApplied
	}

	s := Session(c.current)
	if s == nil || !target.valid() {
		c.logger.Warn().
			Str("func", "*Controller.navigate").
			Stringer("from", from).
			Stringer("to", target).
			Msg("navigation failed: precondition not met")
		return OutcomeNavigationRejected
	}

	c.current = newAuthenticatedRoute(target, s)
	return OutcomeApplied
}

func newAuthenticatedRoute(target RouteName, s *session.ConnectedState) Route {
	switch target {
	case Home:
		return &HomeRoute{Session: s}
	case KeypairsList:
		return &KeypairsRoute{Session: s, Subroute: &KeypairsListPage{}}
	case KeypairsAdd:
		return &KeypairsRoute{Session: s, Subroute: &KeypairsAddPage{}}
	case Relays:
		return &RelaysRoute{Session: s}
	case Wallet:
		return &WalletRoute{Session: s}
	case Settings:
		return &SettingsRoute{Session: s}
	}
	panic(fmt.Sprintf("route: no authenticated route for %s", target))
}

func (c *Controller) onUnlock(apply func(u *UnlockRoute)) Outcome {
	u, ok := c.current.(*UnlockRoute)
	if !ok {
		return OutcomeIgnored
	}
	apply(u)
	return OutcomeApplied
}

func (c *Controller) unlock(ctx context.Context) Outcome {
	u, ok := c.current.(*UnlockRoute)
	if !ok {
		return OutcomeIgnored
	}

	ks, err := c.vault.OpenOrCreate(ctx, u.Password)
	if err != nil {
		c.lastErr = err
		c.logger.Warn().Err(err).Str("func", "*Controller.unlock").Msg("unlock failed")
		return OutcomeUnlockFailed
	}

	c.current = &HomeRoute{Session: session.NewConnectedState(ks)}
	c.logger.Info().Str("func", "*Controller.unlock").Bool("created", !u.StoreExists).Msg("session unlocked")

	return OutcomeApplied
}

func (c *Controller) deleteAllData() Outcome {
	u, ok := c.current.(*UnlockRoute)
	if !ok {
		return OutcomeIgnored
	}

	if err := c.vault.Delete(); err != nil {
		c.lastErr = err
		c.logger.Err(err).Str("func", "*Controller.deleteAllData").Msg("failed to delete vault")
		u.StoreExists = c.vault.Exists()
		return OutcomeStoreFailed
	}

	u.StoreExists = false
	return OutcomeApplied
}

func (c *Controller) keypairs() (*KeypairsRoute, bool) {
	r, ok := c.current.(*KeypairsRoute)
	return r, ok
}

func (c *Controller) addPage() (*KeypairsRoute, *KeypairsAddPage, bool) {
	r, ok := c.keypairs()
	if !ok {
		return nil, nil, false
	}
	add, ok := r.Subroute.(*KeypairsAddPage)
	return r, add, ok
}

func (c *Controller) listPage() (*KeypairsRoute, *KeypairsListPage, bool) {
	r, ok := c.keypairs()
	if !ok {
		return nil, nil, false
	}
	list, ok := r.Subroute.(*KeypairsListPage)
	return r, list, ok
}

func (c *Controller) secretInputChanged(text string) Outcome {
	_, add, ok := c.addPage()
	if !ok {
		return OutcomeIgnored
	}

	add.SecretInput = text
	add.Keypair = nil
	if kp, err := crypto.ParseSecretKey(text); err == nil {
		add.Keypair = &kp
	}
	add.Status = ""
	add.SaveErr = nil

	return OutcomeApplied
}

func (c *Controller) saveKeypair(ctx context.Context) Outcome {
	r, add, ok := c.addPage()
	if !ok || !add.CanSave() {
		return OutcomeIgnored
	}

	return c.persist(ctx, r.Session, add, *add.Keypair)
}

func (c *Controller) generateKeypair(ctx context.Context) Outcome {
	r, add, ok := c.addPage()
	if !ok {
		return OutcomeIgnored
	}

	kp, err := crypto.GenerateKeypair()
	if err != nil {
		c.lastErr = err
		add.SaveErr = err
		c.logger.Err(err).Str("func", "*Controller.generateKeypair").Msg("failed to generate keypair")
		return OutcomeStoreFailed
	}

	return c.persist(ctx, r.Session, add, kp)
}

// persist saves kp and reports the result on the add page. Failures are
// kept in SaveErr so the screen can show them.
func (c *Controller) persist(ctx context.Context, s *session.ConnectedState, add *KeypairsAddPage, kp models.Keypair) Outcome {
	if err := s.Store.SaveKeypair(ctx, kp); err != nil {
		c.lastErr = err
		add.Status = ""
		add.SaveErr = err
		c.logger.Err(err).
			Str("func", "*Controller.persist").
			Str("public_key", kp.PublicKey).
			Msg("failed to save keypair")
		return OutcomeStoreFailed
	}

	add.SecretInput = ""
	add.Keypair = nil
	add.SaveErr = nil
	add.Status = "saved " + utils.TruncateMiddle(kp.PublicKey, statusKeyLen)

	return OutcomeApplied
}

func (c *Controller) deleteKeypair(ctx context.Context, publicKey string) Outcome {
	r, _, ok := c.listPage()
	if !ok {
		return OutcomeIgnored
	}

	if err := r.Session.Store.DeleteKeypair(ctx, publicKey); err != nil {
		c.lastErr = err
		c.logger.Err(err).
			Str("func", "*Controller.deleteKeypair").
			Str("public_key", publicKey).
			Msg("failed to delete keypair")
		return OutcomeStoreFailed
	}

	return OutcomeApplied
}

// changePage moves the list page by delta. The page stays within
// [0, maxPage], and a forward move only lands on a page that holds at
// least one key.
func (c *Controller) changePage(ctx context.Context, delta int) Outcome {
	r, list, ok := c.listPage()
	if !ok {
		return OutcomeIgnored
	}

	maxPage := math.MaxInt/c.pageSize - 1
	page := list.Page
	switch {
	case delta <= 0:
		page = max(page+delta, 0)
	case delta > maxPage-page:
		page = maxPage
	default:
		page += delta
	}
	if page == list.Page {
		return OutcomeIgnored
	}

	if page > list.Page {
		keys, err := r.Session.Store.ListPublicKeys(ctx, 1, page*c.pageSize)
		if err != nil {
			c.logger.Err(err).Str("func", "*Controller.changePage").Int("page", page).Msg("failed to look ahead to next page")
			return OutcomeStoreFailed
		}
		if len(keys) == 0 {
			return OutcomeIgnored
		}
	}
	list.Page = page

	return OutcomeApplied
}

func (c *Controller) enqueue(req *session.PendingRequest) Outcome {
	if req == nil {
		return OutcomeIgnored
	}

	s := Session(c.current)
	if s == nil {
		req.Abandon()
		c.logger.Warn().
			Str("func", "*Controller.enqueue").
			Str("request_id", req.ID).
			Str("peer", req.Peer.Name).
			Msg("signing request dropped: locked")
		return OutcomeRequestDropped
	}

	if err := s.Pending.PushBack(req); err != nil {
		req.Abandon()
		c.logger.Err(err).Str("func", "*Controller.enqueue").Str("request_id", req.ID).Msg("signing request dropped")
		return OutcomeRequestDropped
	}

	c.logger.Info().
		Str("func", "*Controller.enqueue").
		Str("request_id", req.ID).
		Str("peer", req.Peer.Name).
		Str("method", req.Kind.Method).
		Int("pending", s.Pending.Len()).
		Msg("signing request queued")

	return OutcomeApplied
}

func (c *Controller) resolveFirst(decision models.Decision) Outcome {
	s := Session(c.current)
	if s == nil {
		return OutcomeIgnored
	}

	view, ok := s.Pending.ResolveFront(decision)
	if !ok {
		return OutcomeIgnored
	}

	c.logger.Info().
		Str("func", "*Controller.resolveFirst").
		Str("request_id", view.ID).
		Stringer("decision", decision).
		Msg("signing request resolved")

	return OutcomeApplied
}
