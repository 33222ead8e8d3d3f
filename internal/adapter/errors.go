package adapter

import "errors"

var (
	ErrRequestAbandoned    = errors.New("signing request abandoned by signer")
	ErrDecisionTimeout     = errors.New("no decision before timeout")
	ErrSignerBusy          = errors.New("signer is busy")
	ErrBadRequest          = errors.New("bad request")
	ErrInternalServerError = errors.New("internal server error")
)
