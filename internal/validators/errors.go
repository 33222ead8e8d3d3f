package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMethod      = errors.New("method is required")
	ErrInvalidMethod    = errors.New("method contains invalid characters")
	ErrUnidentifiedPeer = errors.New("peer name or public key is required")
	ErrInvalidPeerKey   = errors.New("peer public key must be 64 hex characters")
	ErrInvalidParams    = errors.New("params must be a JSON value")
	ErrInvalidRelay     = errors.New("relay must be a ws:// or wss:// URL")
)
