package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/internal/credential"
	"github.com/MKhiriev/go-pass-provider/internal/intent"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/mock"
	"github.com/MKhiriev/go-pass-provider/internal/service"
	"github.com/MKhiriev/go-pass-provider/models"
)

var testHandleConfig = config.App{
	HandleSignKey: "test-sign-key",
	HandleIssuer:  "go-pass-provider-test",
	HandleTTL:     time.Minute,
}

type testEnv struct {
	auth       *mock.MockServiceAuthRepository
	settings   *mock.MockServiceSettingsRepository
	foreground *mock.MockForegroundManager
	logout     *mock.MockLogoutManager
	vault      *mock.MockServiceVaultRepository
	autofill   *mock.MockServiceAutofillCipherProvider
	unlock     *mock.MockVaultUnlockService
	accounts   *mock.MockAccountService
	locks      *mock.MockVaultLockManager

	handles *intent.Manager
	handler *Handler
	router  *chi.Mux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	handles, err := intent.NewManager(testHandleConfig)
	require.NoError(t, err)

	env := &testEnv{
		auth:       mock.NewMockServiceAuthRepository(ctrl),
		settings:   mock.NewMockServiceSettingsRepository(ctrl),
		foreground: mock.NewMockForegroundManager(ctrl),
		logout:     mock.NewMockLogoutManager(ctrl),
		vault:      mock.NewMockServiceVaultRepository(ctrl),
		autofill:   mock.NewMockServiceAutofillCipherProvider(ctrl),
		unlock:     mock.NewMockVaultUnlockService(ctrl),
		accounts:   mock.NewMockAccountService(ctrl),
		locks:      mock.NewMockVaultLockManager(ctrl),
		handles:    handles,
	}

	services := &service.Services{
		Auth:        env.auth,
		Settings:    env.settings,
		Foreground:  env.foreground,
		Logout:      env.logout,
		Vault:       env.vault,
		Autofill:    env.autofill,
		Unlock:      env.unlock,
		Accounts:    env.accounts,
		LockManager: env.locks,
	}
	pipeline := credential.NewPipeline(env.auth, env.vault, env.autofill, handles, logger.Nop())

	env.handler = NewHandler(services, pipeline, handles, "1.2.3", logger.Nop())
	env.router = env.handler.Init()

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) handle(t *testing.T, action string, extras models.PendingIntentExtras) string {
	t.Helper()
	pi, err := e.handles.CreatePendingIntent(action, 7, extras)
	require.NoError(t, err)
	return pi.Token
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func twoAccounts(unlocked bool) *models.UserState {
	return &models.UserState{
		ActiveUserID: "u1",
		Accounts: []models.Account{
			{UserID: "u1", Email: "one@example.com", Name: "One", IsActive: true, IsVaultUnlocked: unlocked, IsLoggedIn: true},
			{UserID: "u2", Email: "two@example.com", IsLoggedIn: true},
		},
	}
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	pipeline := &credential.Pipeline{}
	log := logger.Nop()

	h := NewHandler(services, pipeline, nil, "v1", log)

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, pipeline, h.credentials)
	assert.Equal(t, "v1", h.version)
	assert.Same(t, log, h.logger)
}

func TestInit_Version(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/version", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_UnknownRoutesAndMethods(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown"},
		{name: "wrong method on static route", method: http.MethodDelete, path: "/api/version"},
		{name: "wrong method on parameterised route", method: http.MethodGet, path: "/api/vault/u1/lock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(t, tt.method, tt.path, nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_RegistersProviderRoutes(t *testing.T) {
	env := newTestEnv(t)

	want := map[string][]string{
		"/api/version":                       {http.MethodGet},
		"/api/vault/stream":                  {http.MethodGet},
		"/api/credentials/begin-create":      {http.MethodPost},
		"/api/credentials/begin-get":         {http.MethodPost},
		"/api/credentials/clear":             {http.MethodPost},
		"/api/completions/passkey/register":  {http.MethodPost},
		"/api/completions/passkey/assert":    {http.MethodPost},
		"/api/completions/password/register": {http.MethodPost},
		"/api/completions/password/assert":   {http.MethodPost},
		"/api/completions/unlock":            {http.MethodPost},
		"/api/lifecycle":                     {http.MethodPut},
		"/api/accounts":                      {http.MethodGet, http.MethodPost},
		"/api/accounts/active":               {http.MethodPut},
		"/api/accounts/{userID}/logout":      {http.MethodPost},
		"/api/accounts/{userID}/settings":    {http.MethodGet, http.MethodPut},
		"/api/vault":                         {http.MethodGet},
		"/api/vault/lock":                    {http.MethodPost},
		"/api/vault/{userID}/lock":           {http.MethodPost},
		"/api/vault/{userID}/unlock":         {http.MethodPost},
	}

	got := map[string][]string{}
	err := chi.Walk(env.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[route] = append(got[route], method)
		return nil
	})
	require.NoError(t, err)

	for route, methods := range want {
		assert.ElementsMatch(t, methods, got[route], route)
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unknown credential error", err: credential.UnknownError(models.CredentialOpGet, "x"), want: http.StatusUnprocessableEntity},
		{name: "cancellation", err: credential.CancellationError(models.CredentialOpCreate), want: statusClientClosedRequest},
		{name: "unsupported", err: credential.UnsupportedError(models.CredentialOpClear), want: http.StatusNotImplemented},
		{name: "expired handle", err: intent.ErrHandleExpired, want: http.StatusGone},
		{name: "wrapped vault locked", err: fmt.Errorf("saving login: %w", service.ErrVaultLocked), want: http.StatusLocked},
		{name: "invalid timeout", err: models.ErrInvalidVaultTimeout, want: http.StatusBadRequest},
		{name: "anything else", err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromUnlockResult(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFromUnlockResult(models.VaultUnlockResultAuthenticationError))
	assert.Equal(t, http.StatusConflict, statusFromUnlockResult(models.VaultUnlockResultInvalidStateError))
	assert.Equal(t, http.StatusInternalServerError, statusFromUnlockResult(models.VaultUnlockResultGenericError))
}
