// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for request bodies that decode but cannot be mapped onto
// a provider request. Callers can match against them with [errors.Is].
var (
	// ErrUnknownCredentialType is returned when a begin request or option
	// names neither "public-key" nor "password".
	ErrUnknownCredentialType = errors.New("unknown credential type")

	// ErrUnknownLifecycleState is returned for lifecycle updates other than
	// "foregrounded" and "backgrounded".
	ErrUnknownLifecycleState = errors.New("unknown lifecycle state")

	// ErrUnknownCompletionStatus is returned when a passkey completion is
	// neither "success", "error" nor "cancelled".
	ErrUnknownCompletionStatus = errors.New("unknown completion status")

	// ErrEmptyUserID is returned when a path or body user id is blank.
	ErrEmptyUserID = errors.New("empty user id")
)
