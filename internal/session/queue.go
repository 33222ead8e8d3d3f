package session

import (
	"sync"

	"github.com/MKhiriev/go-sign-keeper/models"
)

// Queue is a FIFO of pending requests. It owns every request it holds.
type Queue struct {
	mu     sync.Mutex
	items  []*PendingRequest
	closed bool
}

func NewQueue() *Queue {
	return &Queue{}
}

// PushBack appends r and takes ownership of it. Pushing a request that is
// already owned by a queue, or was already resolved, panics.
func (q *Queue) PushBack(r *PendingRequest) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	r.transition(stateNew, stateQueued, "enqueue")
	q.items = append(q.items, r)

	return nil
}

// PopFront removes the head and hands ownership to the caller, who must
// resolve or abandon it.
func (q *Queue) PopFront() (*PendingRequest, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return nil, false
	}

	r := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]

	r.transition(stateQueued, stateTaken, "dequeue")
	return r, true
}

// ResolveFront pops the head and resolves it with decision. It reports the
// resolved request, or false when the queue is empty.
func (q *Queue) ResolveFront(decision models.Decision) (RequestView, bool) {
	r, ok := q.PopFront()
	if !ok {
		return RequestView{}, false
	}

	r.Resolve(decision)
	return r.View(), true
}

// Front returns a copy of the head.
func (q *Queue) Front() (RequestView, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return RequestView{}, false
	}
	return q.items[0].View(), true
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Snapshot returns copies of all requests in arrival order.
func (q *Queue) Snapshot() []RequestView {
	q.mu.Lock()
	defer q.mu.Unlock()

	views := make([]RequestView, 0, len(q.items))
	for _, r := range q.items {
		views = append(views, r.View())
	}
	return views
}

// AbandonAll closes the queue and abandons every request in it, so their
// requesters observe a closed channel instead of waiting forever. It
// returns the number of abandoned requests.
func (q *Queue) AbandonAll() int {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.closed = true
	q.mu.Unlock()

	for _, r := range items {
		r.transition(stateQueued, stateTaken, "dequeue")
		r.Abandon()
	}
	return len(items)
}
