// Package config loads the settings of the provider daemon and its
// operator CLI.
//
// Sources are merged with dario.cat/mergo; a later source overrides the
// non-zero fields of an earlier one:
//  1. Environment variables (caarlos0/env)
//  2. Command-line flags, or the CLI's own flag overrides
//  3. JSON config file, located by CONFIG or -c
//
// Vault timeout defaults are validated here so a bad value fails startup
// rather than surfacing on the first foreground event. Use
// [GetStructuredConfig] for the daemon and [GetClientConfig] for the CLI.
package config
