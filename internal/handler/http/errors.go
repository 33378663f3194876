// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Danila Danshin

package http

import "errors"

// Sentinel errors used by the authentication middleware when inspecting the
// "Authorization" HTTP header. Their texts are part of the public API
// contract and are surfaced verbatim in the JSON error body.
var (
	// ErrMissingToken is returned by the auth middleware when the incoming
	// request does not carry an "Authorization" header at all.
	ErrMissingToken = errors.New("Token is missing")
)
