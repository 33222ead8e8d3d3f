// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package feed

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/session"
	"github.com/MKhiriev/go-sign-keeper/internal/utils"
	"github.com/MKhiriev/go-sign-keeper/models"
)

// sign submits the request to the feed and blocks until a decision, an
// abandonment or the timeout. A timed out request stays queued: the
// response channel is buffered, so a late decision is simply dropped.
func (h *Handler) sign(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var signReq models.SignRequest
	if err := utils.DecodeJSON(r.Body, &signReq); err != nil {
		log.Err(err).Str("func", "*Handler.sign").Msg("failed to decode JSON")
		if statusFromBodyError(err) == http.StatusRequestEntityTooLarge {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), signReq); err != nil {
		log.Err(err).Str("func", "*Handler.sign").Msg("invalid signing request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pending, decision := session.NewPendingRequest(signReq.Peer, signReq.Kind)
	if err := h.feed.Submit(r.Context(), pending); err != nil {
		pending.Abandon()
		log.Err(err).Str("func", "*Handler.sign").Str("request_id", pending.ID).Msg("failed to submit signing request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("func", "*Handler.sign").
		Str("request_id", pending.ID).
		Str("peer", signReq.Peer.Name).
		Str("method", signReq.Kind.Method).
		Msg("signing request submitted")

	timer := time.NewTimer(h.timeout)
	defer timer.Stop()

	select {
	case d, ok := <-decision:
		if !ok {
			log.Info().Str("func", "*Handler.sign").Str("request_id", pending.ID).Msg("signing request abandoned")
			http.Error(w, "request abandoned", http.StatusGone)
			return
		}

		status := http.StatusOK
		if d == models.DecisionReject {
			status = http.StatusForbidden
		}
		resp := models.SignResponse{ID: pending.ID, Decision: d.String()}
		if _, err := utils.WriteJSON(w, resp, status); err != nil {
			log.Err(err).Str("func", "*Handler.sign").Msg("failed to write response")
		}
	case <-timer.C:
		log.Warn().Str("func", "*Handler.sign").Str("request_id", pending.ID).Msg("no decision before timeout")
		http.Error(w, "decision timeout", http.StatusGatewayTimeout)
	case <-r.Context().Done():
		log.Warn().Str("func", "*Handler.sign").Str("request_id", pending.ID).Msg("requester went away")
		http.Error(w, "decision timeout", http.StatusGatewayTimeout)
	}
}

var errorStatusMap = map[error]int{
	ErrFeedFull:   http.StatusServiceUnavailable,
	ErrFeedClosed: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusGatewayTimeout
}
