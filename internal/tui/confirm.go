package tui

import "github.com/MKhiriev/go-sign-keeper/internal/route"

// confirmModel asks a y/n question and dispatches onYes on y.
type confirmModel struct {
	message string
	onYes   route.Event
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
