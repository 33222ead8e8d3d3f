// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package feed delivers signing requests from peers to the signer.
//
// A [Feed] is a bounded channel of [session.PendingRequest]. Peers reach it
// over HTTP: POST /api/sign creates a pending request, submits it to the
// feed and holds the connection open until the user decides, the request
// is abandoned, or the configured timeout expires. The UI consumes
// [Feed.Requests] and turns each arrival into a route event.
package feed
