package feed

import "errors"

var (
	// ErrFeedFull is returned by Submit when the buffer is at capacity.
	ErrFeedFull = errors.New("signing request feed is full")

	// ErrFeedClosed is returned by Submit once the signer is shutting down.
	ErrFeedClosed = errors.New("signing request feed is closed")
)
