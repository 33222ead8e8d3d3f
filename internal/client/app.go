package client

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sign-keeper/internal/config"
	"github.com/MKhiriev/go-sign-keeper/internal/feed"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/route"
	"github.com/MKhiriev/go-sign-keeper/internal/store"
	"github.com/MKhiriev/go-sign-keeper/internal/tui"
	"github.com/MKhiriev/go-sign-keeper/internal/workers"
	"github.com/MKhiriev/go-sign-keeper/models"
)

type App struct {
	controller *route.Controller
	feed       *feed.Feed
	server     *feed.Server
	workers    *workers.Workers

	released    chan struct{}
	releaseOnce sync.Once

	logger *logger.Logger
}

// NewApp wires the signer. uiOptions are passed to the bubbletea program.
func NewApp(cfg *config.ClientConfig, vault store.Vault, buildInfo models.AppBuildInfo, logger *logger.Logger, uiOptions ...tea.ProgramOption) *App {
	f := feed.NewFeed(cfg.Feed.QueueSize)
	controller := route.NewController(vault, logger)

	a := &App{
		controller: controller,
		feed:       f,
		server:     feed.NewServer(feed.NewHandler(f, cfg.Feed, cfg.App, logger), cfg.Feed, logger),
		released:   make(chan struct{}),
		logger:     logger,
	}

	ui := tui.New(controller, f.Requests(), buildInfo, logger, uiOptions...)
	a.workers = workers.NewWorkers(
		workers.Func(a.serveFeed),
		workers.Func(func(ctx context.Context) error {
			err := ui.Run(ctx)
			// the UI goroutine owned the controller until here
			a.release()
			return err
		}),
	)

	return a
}

// Run blocks until the UI exits, a worker fails or a stop signal arrives.
// Pending requests are abandoned as soon as the UI is gone and before the
// feed server drains, so waiting requesters are answered 410.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("signer started")
	err := a.workers.Run(ctx)
	a.release()

	a.logger.Info().Msg("signer stopped")
	return err
}

// serveFeed runs the feed server until the session is released rather than
// until ctx ends: the server must outlive the abandonment so requesters
// still receive their answer.
func (a *App) serveFeed(ctx context.Context) error {
	serverCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	defer cancel()

	go func() {
		select {
		case <-a.released:
			cancel()
		case <-serverCtx.Done():
		}
	}()

	return a.server.Run(serverCtx)
}

// release closes the session and the feed exactly once. It must not run
// while the UI is still processing events.
func (a *App) release() {
	a.releaseOnce.Do(func() {
		if err := a.controller.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.release").Msg("failed to close session")
		}
		if n := a.feed.Close(); n > 0 {
			a.logger.Info().Int("abandoned", n).Msg("undelivered signing requests abandoned")
		}
		close(a.released)
	})
}
