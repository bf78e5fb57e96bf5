// Package http exposes the credential provider over a local HTTP API.
//
// The hosting app forwards platform requests (begin-create, begin-get,
// clear) and resumed flows (completions) here, reports its lifecycle, and
// manages accounts and vault locks. A websocket endpoint streams the vault
// lock state. Requests are traced and access-logged before they reach the
// service layer.
package http
