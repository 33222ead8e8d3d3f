// Package route is the signer's application-state controller.
//
// The Controller owns the current Route and applies one Event at a time.
// Every screen except Unlock holds a *session.ConnectedState, so the only
// way into the authenticated screens is a successful UnlockSubmit, and
// navigating back to Unlock ends the session. Incoming signing requests are
// queued on the session and the head of the queue is rendered as a modal
// prompt above whatever screen is current.
package route
