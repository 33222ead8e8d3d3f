package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sign-keeper/internal/session"
	"github.com/MKhiriev/go-sign-keeper/models"
)

func newPending(name string) *session.PendingRequest {
	r, _ := session.NewPendingRequest(models.PeerMetadata{Name: name}, models.RequestKind{Method: "sign_event"})
	return r
}

func TestFeed_SubmitPreservesOrder(t *testing.T) {
	f := NewFeed(4)

	a, b := newPending("A"), newPending("B")
	require.NoError(t, f.Submit(context.Background(), a))
	require.NoError(t, f.Submit(context.Background(), b))

	assert.Same(t, a, <-f.Requests())
	assert.Same(t, b, <-f.Requests())
}

func TestFeed_SubmitFull(t *testing.T) {
	f := NewFeed(1)

	require.NoError(t, f.Submit(context.Background(), newPending("A")))
	assert.ErrorIs(t, f.Submit(context.Background(), newPending("B")), ErrFeedFull)
}

func TestFeed_SubmitCancelledContext(t *testing.T) {
	f := NewFeed(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, f.Submit(ctx, newPending("A")), context.Canceled)
	assert.Empty(t, f.Requests())
}

func TestNewFeed_MinimumSize(t *testing.T) {
	f := NewFeed(0)
	assert.Equal(t, 1, cap(f.requests))
}

func TestFeed_CloseAbandonsBufferedAndRejectsNew(t *testing.T) {
	f := NewFeed(4)

	a, decision := session.NewPendingRequest(models.PeerMetadata{Name: "A"}, models.RequestKind{Method: "sign_event"})
	require.NoError(t, f.Submit(context.Background(), a))

	assert.Equal(t, 1, f.Close())
	_, ok := <-decision
	assert.False(t, ok, "buffered request must be abandoned")

	assert.ErrorIs(t, f.Submit(context.Background(), newPending("B")), ErrFeedClosed)
	assert.Zero(t, f.Close())
}
