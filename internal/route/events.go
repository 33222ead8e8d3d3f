package route

import "github.com/MKhiriev/go-sign-keeper/internal/session"

// Event is an input to Controller.Update. User intents come from the UI,
// IncomingSigningRequest from the feed.
type Event interface {
	isEvent()
}

type (
	// Navigate asks for a fresh Target screen.
	Navigate struct{ Target RouteName }

	UnlockPasswordChanged struct{ Text string }
	UnlockToggleMask      struct{}
	UnlockSubmit          struct{}
	// DeleteAllData destroys the vault. Only valid on the Unlock screen.
	DeleteAllData struct{}

	KeypairSecretInputChanged struct{ Text string }
	KeypairSaveRequested      struct{}
	KeypairGenerateRequested  struct{}
	KeypairDeleteRequested    struct{ PublicKey string }
	KeypairsPageChanged       struct{ Delta int }

	// IncomingSigningRequest hands ownership of Request to the controller.
	IncomingSigningRequest struct{ Request *session.PendingRequest }
	ApproveFirstPending    struct{}
	RejectFirstPending     struct{}
)

func (Navigate) isEvent()                  {}
func (UnlockPasswordChanged) isEvent()     {}
func (UnlockToggleMask) isEvent()          {}
func (UnlockSubmit) isEvent()              {}
func (DeleteAllData) isEvent()             {}
func (KeypairSecretInputChanged) isEvent() {}
func (KeypairSaveRequested) isEvent()      {}
func (KeypairGenerateRequested) isEvent()  {}
func (KeypairDeleteRequested) isEvent()    {}
func (KeypairsPageChanged) isEvent()       {}
func (IncomingSigningRequest) isEvent()    {}
func (ApproveFirstPending) isEvent()       {}
func (RejectFirstPending) isEvent()        {}
