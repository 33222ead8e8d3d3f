package validators

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-sign-keeper/models"
)

const (
	FieldMethod = "method"
	FieldPeer   = "peer"
	FieldParams = "params"
	FieldRelay  = "relay"
)

const maxMethodLen = 64

// SignRequestValidator checks models.SignRequest bodies posted to the feed.
type SignRequestValidator struct{}

func NewSignRequestValidator() Validator {
	return &SignRequestValidator{}
}

// Validate checks every field when none are named.
func (v *SignRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignRequest:
		return v.validateSignRequest(ctx, value, fields...)
	case *models.SignRequest:
		if value == nil {
			return fmt.Errorf("%w: nil *models.SignRequest", ErrUnsupportedType)
		}
		return v.validateSignRequest(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *SignRequestValidator) validateSignRequest(_ context.Context, req models.SignRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMethod, FieldPeer, FieldParams, FieldRelay}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldMethod:
			err = validateMethod(req.Kind.Method)
		case FieldPeer:
			err = validatePeer(req.Peer)
		case FieldParams:
			err = validateParams(req.Kind.Params)
		case FieldRelay:
			err = validateRelay(req.Peer.Relay)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// validateMethod accepts snake_case style identifiers such as sign_event
// or nip04_encrypt.
func validateMethod(method string) error {
	if method == "" {
		return ErrEmptyMethod
	}
	if len(method) > maxMethodLen {
		return fmt.Errorf("%w: longer than %d", ErrInvalidMethod, maxMethodLen)
	}
	for _, r := range method {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' || r == '.' || r == '-') {
			return fmt.Errorf("%w: %q", ErrInvalidMethod, r)
		}
	}
	return nil
}

func validatePeer(peer models.PeerMetadata) error {
	if peer.Name == "" && peer.PublicKey == "" {
		return ErrUnidentifiedPeer
	}
	if peer.PublicKey == "" {
		return nil
	}
	if b, err := hex.DecodeString(peer.PublicKey); err != nil || len(b) != 32 {
		return ErrInvalidPeerKey
	}
	return nil
}

func validateParams(params json.RawMessage) error {
	if len(params) == 0 {
		return nil
	}
	if !json.Valid(params) {
		return ErrInvalidParams
	}
	return nil
}

func validateRelay(relay string) error {
	if relay == "" {
		return nil
	}
	u, err := url.Parse(relay)
	if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
		return ErrInvalidRelay
	}
	return nil
}
