// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the provider HTTP API.
//
// The primary abstraction is [ProviderAdapter], used by the operator CLI to
// inspect and drive a running provider daemon: accounts, per-user timeout
// settings, lock state and credential lookups.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrLocked] for 423). Credential endpoint failures surface as
// *models.CredentialError.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-provider/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ProviderAdapter defines communication with a running provider daemon.
type ProviderAdapter interface {
	// Version returns the daemon's build version.
	Version(ctx context.Context) (string, error)

	// Accounts lists the accounts known on the device. The result is never
	// nil; an empty device yields an empty UserState.
	Accounts(ctx context.Context) (models.UserState, error)

	// CreateAccount provisions a local account protected by the master
	// password in req.
	CreateAccount(ctx context.Context, req models.NewAccountRequest) (models.Account, error)

	// SwitchAccount makes userID the active account.
	SwitchAccount(ctx context.Context, userID string) error

	// Logout locks the vault of userID and soft-logs the account out.
	Logout(ctx context.Context, userID string) error

	// Settings reads the vault timeout and timeout action of userID.
	Settings(ctx context.Context, userID string) (Settings, error)

	// UpdateSettings changes the non-nil fields of update and returns the
	// settings now in effect.
	UpdateSettings(ctx context.Context, userID string, update SettingsUpdate) (Settings, error)

	// VaultState returns the sets of unlocked and unlocking users.
	VaultState(ctx context.Context) (VaultStatus, error)

	// LockVault locks the vault of userID, or of the active user when userID
	// is empty.
	LockVault(ctx context.Context, userID string) error

	// UnlockVault unlocks userID with a master password. The returned result
	// is the daemon's unlock verdict ("success", "authentication_error", ...);
	// a non-success verdict is also reported as an error.
	UnlockVault(ctx context.Context, userID, masterPassword string) (string, error)

	// SetLifecycle reports the hosting app moving to the foreground or
	// background.
	SetLifecycle(ctx context.Context, state models.AppForegroundState) error

	// BeginGetCredential asks which credentials the daemon would offer for
	// query, without completing any of them.
	BeginGetCredential(ctx context.Context, query CredentialQuery) (models.BeginGetCredentialResponse, error)

	// WatchVault streams vault state changes to fn until ctx is done or the
	// connection drops. The current state is delivered first.
	WatchVault(ctx context.Context, fn func(VaultStatus)) error
}
