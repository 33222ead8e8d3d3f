package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sign-keeper/internal/session"
)

type incomingRequestMsg struct {
	req *session.PendingRequest
}

// waitForRequest blocks for the next feed arrival. The model re-arms it
// after every incomingRequestMsg, so exactly one is in flight.
func waitForRequest(ctx context.Context, requests <-chan *session.PendingRequest) tea.Cmd {
	return func() tea.Msg {
		select {
		case req := <-requests:
			if ctx.Err() != nil {
				// the program is gone and nobody will dispatch this one
				req.Abandon()
				return nil
			}
			return incomingRequestMsg{req: req}
		case <-ctx.Done():
			return nil
		}
	}
}
