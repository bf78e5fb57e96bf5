// Package utils provides small helpers shared by the transport and service
// layers: JSON response writing, the provider API HTTP client and
// time-ordered identifier generation.
package utils
