package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-sign-keeper/internal/config"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/utils"
	"github.com/MKhiriev/go-sign-keeper/models"
)

const hashHeader = "HashSHA256"

type httpSignerAdapter struct {
	client  *utils.HTTPClient
	hashKey string

	logger *logger.Logger
}

// NewHTTPSignerAdapter builds a [SignerAdapter] for the feed at
// cfg.Adapter.HTTPAddress. The request timeout must exceed the signer's
// feed timeout, or the peer gives up before the signer answers 504.
func NewHTTPSignerAdapter(cfg config.PeerConfig, logger *logger.Logger) (SignerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpSignerAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.Adapter.RequestTimeout),
		hashKey: cfg.HashKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RequestSignature implements [SignerAdapter] over POST /api/sign.
func (h *httpSignerAdapter) RequestSignature(ctx context.Context, req models.SignRequest) (models.SignResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.SignResponse{}, fmt.Errorf("encode sign request: %w", err)
	}

	r := h.client.NewJSONRequest(ctx).SetBody(body)
	if h.hashKey != "" {
		r.SetHeader(hashHeader, utils.HashString(string(body), h.hashKey))
	}

	h.logger.Debug().Str("func", "*httpSignerAdapter.RequestSignature").
		Str("method", req.Kind.Method).
		Msg("waiting for signer decision")

	resp, err := r.Post("/api/sign")
	if err != nil {
		return models.SignResponse{}, fmt.Errorf("sign request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SignResponse{}, err
	}

	var out models.SignResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SignResponse{}, fmt.Errorf("decode sign response: %w", err)
	}

	return out, nil
}
