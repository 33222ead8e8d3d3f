package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sign-keeper/internal/crypto"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/route"
	"github.com/MKhiriev/go-sign-keeper/internal/session"
	"github.com/MKhiriev/go-sign-keeper/internal/store"
	"github.com/MKhiriev/go-sign-keeper/internal/utils"
	"github.com/MKhiriev/go-sign-keeper/models"
)

// RootModel adapts the route controller to bubbletea:
// 1) translates keys into controller events
// 2) feeds arrivals from the request channel in as IncomingSigningRequest
// 3) renders the controller's view model, with the pending prompt on top
type RootModel struct {
	ctx       context.Context
	ctrl      *route.Controller
	requests  <-chan *session.PendingRequest
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	copyToClipboard func(string) error

	vm       route.ViewModel
	password textinput.Model
	secret   textinput.Model
	spinner  spinner.Model
	cursor   int

	status        string
	errMsg        string
	confirm       *confirmModel
	showBuildInfo bool
}

func NewRootModel(ctx context.Context, ctrl *route.Controller, requests <-chan *session.PendingRequest, buildInfo models.AppBuildInfo, logger *logger.Logger) RootModel {
	password := textinput.New()
	password.Placeholder = "passphrase"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.Focus()

	secret := textinput.New()
	secret.Placeholder = "nsec1… or 64 hex characters"
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '•'
	secret.CharLimit = 128
	secret.Focus()

	m := RootModel{
		ctx:             ctx,
		ctrl:            ctrl,
		requests:        requests,
		buildInfo:       buildInfo,
		logger:          logger,
		copyToClipboard: clipboard.WriteAll,
		password:        password,
		secret:          secret,
		spinner:         spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.refresh()

	return m
}

func (m RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.requests != nil {
		cmds = append(cmds, waitForRequest(m.ctx, m.requests))
	}
	return tea.Batch(cmds...)
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case incomingRequestMsg:
		if msg.req != nil {
			m.dispatch(route.IncomingSigningRequest{Request: msg.req})
		}
		return m, waitForRequest(m.ctx, m.requests)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blink and friends
	var cmd tea.Cmd
	switch m.vm.Route {
	case route.Unlock:
		m.password, cmd = m.password.Update(msg)
	case route.KeypairsAdd:
		m.secret, cmd = m.secret.Update(msg)
	}
	return m, cmd
}

func (m RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	// overlays block everything else
	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			ev := m.confirm.onYes
			m.confirm = nil
			m.dispatch(ev)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	if m.vm.Prompt != nil {
		switch {
		case key.Matches(msg, keys.approve):
			m.dispatch(route.ApproveFirstPending{})
		case key.Matches(msg, keys.reject):
			m.dispatch(route.RejectFirstPending{})
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.back, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.vm.Route == route.Unlock {
		return m.updateUnlock(msg)
	}

	if target, ok := navigationTarget(msg); ok {
		m.dispatch(route.Navigate{Target: target})
		return m, nil
	}

	switch m.vm.Route {
	case route.KeypairsList:
		return m.updateKeypairsList(msg)
	case route.KeypairsAdd:
		return m.updateKeypairsAdd(msg)
	}

	return m, nil
}

func navigationTarget(msg tea.KeyMsg) (route.RouteName, bool) {
	switch {
	case key.Matches(msg, keys.home):
		return route.Home, true
	case key.Matches(msg, keys.keypairs):
		return route.KeypairsList, true
	case key.Matches(msg, keys.relays):
		return route.Relays, true
	case key.Matches(msg, keys.wallet):
		return route.Wallet, true
	case key.Matches(msg, keys.settings):
		return route.Settings, true
	case key.Matches(msg, keys.lock):
		return route.Unlock, true
	}
	return 0, false
}

func (m RootModel) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.toggleMask):
		m.dispatch(route.UnlockToggleMask{})
		return m, nil
	case key.Matches(msg, keys.submit):
		m.dispatch(route.UnlockSubmit{})
		return m, nil
	case key.Matches(msg, keys.deleteAll):
		if m.vm.Unlock != nil && m.vm.Unlock.StoreExists {
			m.confirm = &confirmModel{
				message: "Delete all data? Every stored key is lost.",
				onYes:   route.DeleteAllData{},
			}
		}
		return m, nil
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	}

	before := m.password.Value()
	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	if m.password.Value() != before {
		m.dispatch(route.UnlockPasswordChanged{Text: m.password.Value()})
	}
	return m, cmd
}

func (m RootModel) updateKeypairsList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.vm.Keypairs
	if list == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(list.PublicKeys)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.prevPage):
		if m.dispatch(route.KeypairsPageChanged{Delta: -1}) == route.OutcomeApplied {
			m.cursor = 0
		}
	case key.Matches(msg, keys.nextPage):
		if list.HasNext && m.dispatch(route.KeypairsPageChanged{Delta: 1}) == route.OutcomeApplied {
			m.cursor = 0
		}
	case key.Matches(msg, keys.add):
		m.dispatch(route.Navigate{Target: route.KeypairsAdd})
	case key.Matches(msg, keys.delete):
		if pk, ok := m.selectedKey(); ok {
			m.confirm = &confirmModel{
				message: "Delete keypair " + utils.TruncateMiddle(pk, 12) + "?",
				onYes:   route.KeypairDeleteRequested{PublicKey: pk},
			}
		}
	case key.Matches(msg, keys.copy):
		if pk, ok := m.selectedKey(); ok {
			m.copyNpub(pk)
		}
	}

	return m, nil
}

func (m RootModel) updateKeypairsAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.submit):
		m.dispatch(route.KeypairSaveRequested{})
		return m, nil
	case key.Matches(msg, keys.generate):
		m.dispatch(route.KeypairGenerateRequested{})
		return m, nil
	case key.Matches(msg, keys.back):
		m.dispatch(route.Navigate{Target: route.KeypairsList})
		return m, nil
	}

	before := m.secret.Value()
	var cmd tea.Cmd
	m.secret, cmd = m.secret.Update(msg)
	if m.secret.Value() != before {
		m.dispatch(route.KeypairSecretInputChanged{Text: m.secret.Value()})
	}
	return m, cmd
}

func (m *RootModel) selectedKey() (string, bool) {
	if m.vm.Keypairs == nil || m.cursor >= len(m.vm.Keypairs.PublicKeys) {
		return "", false
	}
	return m.vm.Keypairs.PublicKeys[m.cursor], true
}

func (m *RootModel) copyNpub(publicKey string) {
	npub, err := crypto.EncodeNpub(publicKey)
	if err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	if err = m.copyToClipboard(npub); err != nil {
		m.logger.Err(err).Str("func", "*RootModel.copyNpub").Msg("failed to write clipboard")
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.errMsg = ""
	m.status = "copied " + utils.TruncateMiddle(npub, 16)
}

// dispatch sends ev to the controller and re-renders.
func (m *RootModel) dispatch(ev route.Event) route.Outcome {
	outcome := m.ctrl.Update(m.ctx, ev)
	m.report(outcome, m.ctrl.LastError())
	m.refresh()
	return outcome
}

func (m *RootModel) report(outcome route.Outcome, err error) {
	switch outcome {
	case route.OutcomeApplied:
		m.errMsg = ""
	case route.OutcomeUnlockFailed:
		m.errMsg = describeUnlockError(err)
	case route.OutcomeNavigationRejected:
		m.errMsg = "unlock first"
	case route.OutcomeRequestDropped:
		m.status = "signing request dropped: signer is locked"
	case route.OutcomeStoreFailed:
		if err != nil {
			m.errMsg = err.Error()
		}
	}
}

func describeUnlockError(err error) string {
	switch {
	case err == nil:
		return "unlock failed"
	case errors.Is(err, store.ErrWrongPassphrase):
		return "wrong passphrase"
	case errors.Is(err, store.ErrEmptyPassphrase):
		return "passphrase is empty"
	}
	return "unlock failed: " + err.Error()
}

// refresh re-renders the view model and brings the inputs in line with it.
func (m *RootModel) refresh() {
	prev := m.vm.Route
	m.vm = m.ctrl.Render(m.ctx)

	if m.vm.Route != prev {
		m.cursor = 0
		if !m.vm.Route.SameTopLevel(prev) {
			m.status = ""
		}
	}

	if u := m.vm.Unlock; u != nil {
		if m.password.Value() != u.Password {
			m.password.SetValue(u.Password)
		}
		if u.Masked {
			m.password.EchoMode = textinput.EchoPassword
		} else {
			m.password.EchoMode = textinput.EchoNormal
		}
	} else {
		m.password.SetValue("")
	}

	if add := m.vm.KeypairsAdd; add != nil {
		if m.secret.Value() != add.SecretInput {
			m.secret.SetValue(add.SecretInput)
		}
	} else {
		m.secret.SetValue("")
	}

	if list := m.vm.Keypairs; list != nil && m.cursor >= len(list.PublicKeys) {
		m.cursor = max(len(list.PublicKeys)-1, 0)
	}
}
