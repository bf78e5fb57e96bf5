// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-pass-provider/models"
)

const (
	defaultHandleIssuer    = "go-pass-provider"
	defaultHandleTTL       = 5 * time.Minute
	defaultRequestTimeout  = 30 * time.Second
	defaultVaultTimeout    = "15m"
	defaultTimeoutAction   = "lock"
	defaultLogLevel        = "info"
	defaultAdapterTimeout  = 10 * time.Second
	defaultAdapterEndpoint = "127.0.0.1:8787"
)

// applyDefaults fills fields that no source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.HandleIssuer == "" {
		cfg.App.HandleIssuer = defaultHandleIssuer
	}
	if cfg.App.HandleTTL == 0 {
		cfg.App.HandleTTL = defaultHandleTTL
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterEndpoint
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Vault.DefaultTimeout == "" {
		cfg.Vault.DefaultTimeout = defaultVaultTimeout
	}
	if cfg.Vault.DefaultTimeoutAction == "" {
		cfg.Vault.DefaultTimeoutAction = defaultTimeoutAction
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// daemon invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.HandleSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := models.ParseVaultTimeout(cfg.Vault.DefaultTimeout); err != nil {
		return ErrInvalidVaultConfigs
	}
	if _, err := models.ParseVaultTimeoutAction(cfg.Vault.DefaultTimeoutAction); err != nil {
		return ErrInvalidVaultConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// DefaultVaultTimeout returns the parsed default timeout. The value has been
// validated by GetStructuredConfig.
func (cfg *StructuredConfig) DefaultVaultTimeout() models.VaultTimeout {
	timeout, err := models.ParseVaultTimeout(cfg.Vault.DefaultTimeout)
	if err != nil {
		return models.VaultTimeoutFifteenMinutes
	}
	return timeout
}

// DefaultVaultTimeoutAction returns the parsed default timeout action.
func (cfg *StructuredConfig) DefaultVaultTimeoutAction() models.VaultTimeoutAction {
	action, err := models.ParseVaultTimeoutAction(cfg.Vault.DefaultTimeoutAction)
	if err != nil {
		return models.VaultTimeoutActionLock
	}
	return action
}
