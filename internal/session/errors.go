package session

import "errors"

// ErrQueueClosed is returned by PushBack after AbandonAll. The request is
// left untouched so the caller can abandon it.
var ErrQueueClosed = errors.New("pending request queue is closed")
