package feed

import (
	"time"

	"github.com/MKhiriev/go-sign-keeper/internal/config"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/utils"
	"github.com/MKhiriev/go-sign-keeper/internal/validators"
)

type Handler struct {
	feed    *Feed
	timeout time.Duration
	hashKey string

	validator validators.Validator
	logger    *logger.Logger
}

func NewHandler(feed *Feed, feedCfg config.ClientFeed, appCfg config.ClientApp, logger *logger.Logger) *Handler {
	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	logger.Info().Msg("feed http handler created")
	return &Handler{
		feed:      feed,
		timeout:   feedCfg.RequestTimeout,
		hashKey:   appCfg.HashKey,
		validator: validators.NewSignRequestValidator(),
		logger:    logger,
	}
}
