package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/version", h.getVersion)

	// the stream hijacks the connection, so it stays out of the gzip group
	router.Get("/api/vault/stream", h.streamVaultState)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/api/credentials/begin-create", h.beginCreateCredential)
		r.Post("/api/credentials/begin-get", h.beginGetCredential)
		r.Post("/api/credentials/clear", h.clearCredentialState)

		r.Post("/api/completions/passkey/register", h.completePasskeyRegistration)
		r.Post("/api/completions/passkey/assert", h.completePasskeyAssertion)
		r.Post("/api/completions/password/register", h.completePasswordRegistration)
		r.Post("/api/completions/password/assert", h.completePasswordAssertion)
		r.Post("/api/completions/unlock", h.completeUnlock)

		r.Put("/api/lifecycle", h.setLifecycle)

		r.Get("/api/accounts", h.listAccounts)
		r.Post("/api/accounts", h.createAccount)
		r.Put("/api/accounts/active", h.switchAccount)
		r.Post("/api/accounts/{userID}/logout", h.logoutAccount)
		r.Get("/api/accounts/{userID}/settings", h.getSettings)
		r.Put("/api/accounts/{userID}/settings", h.updateSettings)

		r.Get("/api/vault", h.getVaultState)
		r.Post("/api/vault/lock", h.lockActiveVault)
		r.Post("/api/vault/{userID}/lock", h.lockVault)
		r.Post("/api/vault/{userID}/unlock", h.unlockVault)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
