// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the signer process runtime.
//
// It wires the route controller, the terminal UI and the signing-request
// feed server into a single process lifecycle, and releases the unlocked
// session when the process stops.
package client
