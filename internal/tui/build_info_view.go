// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-sign-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := "Application: go-sign-keeper\n" + strings.Join(info.Lines(), "\n")
	return renderPage("ABOUT", body, "esc: back")
}
