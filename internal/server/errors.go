// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHTTPAddress is returned by NewServer when the server configuration
	// carries no listen address.
	errNoHTTPAddress = errors.New("no HTTP address configured")
)
