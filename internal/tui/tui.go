// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the signer. It owns the
// controller's event loop: every key press and every feed arrival becomes a
// route event applied on the bubbletea goroutine.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/route"
	"github.com/MKhiriev/go-sign-keeper/internal/session"
	"github.com/MKhiriev/go-sign-keeper/models"
)

type TUI struct {
	ctrl      *route.Controller
	requests  <-chan *session.PendingRequest
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	options []tea.ProgramOption
}

func New(ctrl *route.Controller, requests <-chan *session.PendingRequest, buildInfo models.AppBuildInfo, logger *logger.Logger, options ...tea.ProgramOption) *TUI {
	return &TUI{
		ctrl:      ctrl,
		requests:  requests,
		buildInfo: buildInfo,
		logger:    logger,
		options:   options,
	}
}

// Run shows the UI until the user quits or ctx is cancelled. Both count as
// a clean stop.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	options := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	model := NewRootModel(ctx, t.ctrl, t.requests, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, options...).Run()
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
