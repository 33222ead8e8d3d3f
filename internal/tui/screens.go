package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-sign-keeper/internal/crypto"
	"github.com/MKhiriev/go-sign-keeper/internal/route"
	"github.com/MKhiriev/go-sign-keeper/internal/utils"
)

const (
	navHotKeys   = "F1 home │ F2 keys │ F3 relays │ F4 wallet │ F5 settings │ ctrl+l lock"
	paramsMaxLen = 240
)

func (m RootModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	// the pending prompt pre-empts every screen
	if p := m.vm.Prompt; p != nil {
		return m.viewPrompt(p)
	}

	base := m.viewRoute()
	if m.confirm != nil {
		return lipgloss.JoinVertical(lipgloss.Left, base, "", m.confirm.View())
	}
	return base
}

func (m RootModel) viewRoute() string {
	switch m.vm.Route {
	case route.Unlock:
		return m.viewUnlock()
	case route.Home:
		return m.viewHome()
	case route.KeypairsList:
		return m.viewKeypairsList()
	case route.KeypairsAdd:
		return m.viewKeypairsAdd()
	case route.Relays:
		return renderPage("RELAYS", m.withMessages("Relay management is not available yet."), navHotKeys)
	case route.Wallet:
		return renderPage("WALLET", m.withMessages("Wallet is not available yet."), navHotKeys)
	case route.Settings:
		return renderPage("SETTINGS", m.withMessages("Settings are not available yet."), navHotKeys)
	}
	return renderPage("GO-SIGN-KEEPER", "", "")
}

// withMessages appends the status and error lines to body.
func (m RootModel) withMessages(body string) string {
	var b strings.Builder
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}
	return b.String()
}

func (m RootModel) viewUnlock() string {
	u := m.vm.Unlock
	if u == nil {
		return renderPage("UNLOCK", "", "")
	}

	title := "UNLOCK"
	hint := "Enter the passphrase of your vault."
	hotKeys := "enter: unlock │ ctrl+t: show/hide │ ctrl+x: delete all data │ ctrl+b: about"
	if !u.StoreExists {
		title = "CREATE VAULT"
		hint = "No vault yet. The passphrase you enter now protects a new one."
		hotKeys = "enter: create │ ctrl+t: show/hide │ ctrl+b: about"
	}

	body := hint + "\n\nPassphrase: [ " + m.password.View() + " ]"
	return renderPage(title, m.withMessages(body), hotKeys)
}

func (m RootModel) viewHome() string {
	body := fmt.Sprintf("Pending requests: %d\n\nIncoming signing requests show up here for approval.", m.vm.PendingCount)
	return renderPage("HOME", m.withMessages(body), navHotKeys)
}

func (m RootModel) viewKeypairsList() string {
	list := m.vm.Keypairs
	hotKeys := "a: add │ d: delete │ c: copy npub │ ↑/↓: select │ ←/→: page"

	var b strings.Builder
	switch {
	case list == nil:
	case list.LoadFailed:
		b.WriteString("Failed to load keys.")
	case len(list.PublicKeys) == 0 && list.Page == 0:
		b.WriteString("No keys yet. Press a to add one.")
	default:
		b.WriteString("  # │ Public key\n")
		b.WriteString("────┼──────────────────────────────────────────────────────────────────\n")
		for i, pk := range list.PublicKeys {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}
			fmt.Fprintf(&b, "%s%2d │ %s\n", cursor, i+1, pk)
		}
		more := ""
		if list.HasNext {
			more = " →"
		}
		fmt.Fprintf(&b, "\nPage %d%s", list.Page+1, more)
	}

	return renderPage("KEYS", m.withMessages(strings.TrimRight(b.String(), "\n")), hotKeys, navHotKeys)
}

func (m RootModel) viewKeypairsAdd() string {
	add := m.vm.KeypairsAdd
	if add == nil {
		return renderPage("ADD KEY", "", navHotKeys)
	}

	var b strings.Builder
	b.WriteString("Secret key : [ " + m.secret.View() + " ]\n")

	switch {
	case add.PublicKey != "":
		b.WriteString("Public key : " + add.PublicKey + "\n")
		if npub, err := crypto.EncodeNpub(add.PublicKey); err == nil {
			b.WriteString("npub       : " + npub + "\n")
		}
		b.WriteString("Action     : [Save]")
	case add.SecretInput != "":
		b.WriteString("Public key : -\n")
		b.WriteString("Action     : invalid secret key")
	default:
		b.WriteString("Public key : -\n")
		b.WriteString("Action     : -")
	}

	if add.Status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(add.Status))
	}
	if add.SaveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Save failed: " + add.SaveErr.Error()))
	}

	return renderPage("ADD KEY", m.withMessages(b.String()), "enter: save │ ctrl+g: generate │ esc: back", navHotKeys)
}

func (m RootModel) viewPrompt(p *route.Prompt) string {
	req := p.Request

	var b strings.Builder
	fmt.Fprintf(&b, "%s awaiting your decision\n\n", m.spinner.View())
	fmt.Fprintf(&b, "Peer     : %s\n", valueOrDash(req.Peer.Name))
	fmt.Fprintf(&b, "Key      : %s\n", valueOrDash(utils.TruncateMiddle(req.Peer.PublicKey, 24)))
	fmt.Fprintf(&b, "Relay    : %s\n", valueOrDash(req.Peer.Relay))
	fmt.Fprintf(&b, "Method   : %s\n", req.Kind.Method)
	if len(req.Kind.Params) > 0 {
		fmt.Fprintf(&b, "Params   : %s\n", utils.TruncateMiddle(string(req.Kind.Params), paramsMaxLen))
	}
	fmt.Fprintf(&b, "Received : %s", req.ReceivedAt.Format("15:04:05"))
	if p.Waiting > 0 {
		fmt.Fprintf(&b, "\n\n%d more waiting", p.Waiting)
	}

	return renderPage("SIGNING REQUEST", promptBoxStyle.Render(b.String()), "y/a: approve │ n/r: reject")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
