// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

const buildInfoUnknown = "N/A"

// AppBuildInfo is the linker-injected build metadata of the signer,
// shown on startup and in the unlock screen's about overlay.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims its inputs and replaces empty values with "N/A",
// so callers never render a blank field.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orUnknown(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orUnknown(a.commit) }

// Lines renders the metadata as "Label: value" rows.
func (a AppBuildInfo) Lines() []string {
	return []string{
		"Version: " + a.BuildVersion(),
		"Date: " + a.BuildDate(),
		"Commit: " + a.BuildCommit(),
	}
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return buildInfoUnknown
	}
	return v
}
