package feed

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-sign-keeper/internal/session"
)

// Feed is a bounded FIFO of incoming signing requests. Submit is safe for
// concurrent use by any number of producers.
type Feed struct {
	mu       sync.Mutex
	closed   bool
	requests chan *session.PendingRequest
}

func NewFeed(size int) *Feed {
	if size < 1 {
		size = 1
	}
	return &Feed{requests: make(chan *session.PendingRequest, size)}
}

// Submit hands req to the consumer without blocking. On error the caller
// still owns req.
func (f *Feed) Submit(ctx context.Context, req *session.PendingRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrFeedClosed
	}

	select {
	case f.requests <- req:
		return nil
	default:
		return ErrFeedFull
	}
}

// Close rejects further submissions and abandons every request still
// buffered. It returns the number of abandoned requests. The channel itself
// stays open so a consumer blocked on it is not woken with nil.
func (f *Feed) Close() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true

	n := 0
	for {
		select {
		case req := <-f.requests:
			req.Abandon()
			n++
		default:
			return n
		}
	}
}

// Requests is the receive end. The channel is never closed.
func (f *Feed) Requests() <-chan *session.PendingRequest {
	return f.requests
}
