package route

import "fmt"

// Outcome reports what Update did with an event.
type Outcome int

const (
	// OutcomeApplied: the event changed state.
	OutcomeApplied Outcome = iota
	// OutcomeIgnored: the event is not valid for the current route, or the
	// pending queue is empty.
	OutcomeIgnored
	// OutcomeNavigationRejected: the target screen needs a session and
	// there is none.
	OutcomeNavigationRejected
	// OutcomeRequestDropped: a signing request arrived while locked and
	// was abandoned.
	OutcomeRequestDropped
	// OutcomeUnlockFailed: the vault refused the passphrase or could not be
	// opened. The route is unchanged.
	OutcomeUnlockFailed
	// OutcomeStoreFailed: a vault write failed. See Controller.LastError.
	OutcomeStoreFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeNavigationRejected:
		return "navigation rejected"
	case OutcomeRequestDropped:
		return "request dropped"
	case OutcomeUnlockFailed:
		return "unlock failed"
	case OutcomeStoreFailed:
		return "store failed"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}
