package feed

import (
	"bytes"
	"crypto/hmac"
	"encoding/hex"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-sign-keeper/internal/utils"
)

// HashHeader carries the hex HMAC-SHA256 of the request body.
const HashHeader = "HashSHA256"

// checkHash rejects requests whose body does not match HashHeader. It is a
// pass-through when no hash key is configured.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			w.WriteHeader(statusFromBodyError(err))
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		fromRequest, err := hex.DecodeString(r.Header.Get(HashHeader))
		if err != nil || !hmac.Equal(fromRequest, utils.Hash(body)) {
			h.logger.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", r.Header.Get(HashHeader)).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusFromBodyError maps a body read failure to 413 when the size limit
// tripped and to 500 otherwise.
func statusFromBodyError(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
