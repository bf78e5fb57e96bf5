package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/internal/logger"
	"github.com/MKhiriev/go-pass-provider/internal/utils"
	"github.com/MKhiriev/go-pass-provider/models"
)

// closeGracePeriod bounds the close frame write when a stream is abandoned.
const closeGracePeriod = time.Second

type httpProviderAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	dialer  *websocket.Dialer

	logger *logger.Logger
}

// NewHTTPProviderAdapter constructs an HTTP implementation of
// [ProviderAdapter]. It normalises cfg.HTTPAddress into a base URL and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPProviderAdapter(cfg config.Adapter, logger *logger.Logger) (ProviderAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpProviderAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		baseURL: baseURL,
		dialer:  &websocket.Dialer{HandshakeTimeout: cfg.RequestTimeout},
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpProviderAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

// do sends the request and maps a non-2xx answer to a package error.
func (h *httpProviderAdapter) do(req *resty.Request, method, path, op string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", op).Int("status", resp.StatusCode()).Msg("provider answered with error")
		return err
	}
	return nil
}

func (h *httpProviderAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpProviderAdapter) Accounts(ctx context.Context) (models.UserState, error) {
	var state models.UserState
	if err := h.do(h.request(ctx).SetResult(&state), resty.MethodGet, "/api/accounts", "accounts"); err != nil {
		return models.UserState{}, err
	}
	return state, nil
}

func (h *httpProviderAdapter) CreateAccount(ctx context.Context, req models.NewAccountRequest) (models.Account, error) {
	var account models.Account
	if err := h.do(h.request(ctx).SetBody(req).SetResult(&account), resty.MethodPost, "/api/accounts", "create account"); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (h *httpProviderAdapter) SwitchAccount(ctx context.Context, userID string) error {
	return h.do(h.request(ctx).SetBody(switchAccountRequest{UserID: userID}),
		resty.MethodPut, "/api/accounts/active", "switch account")
}

func (h *httpProviderAdapter) Logout(ctx context.Context, userID string) error {
	return h.do(h.request(ctx).SetPathParam("userID", userID),
		resty.MethodPost, "/api/accounts/{userID}/logout", "logout")
}

func (h *httpProviderAdapter) Settings(ctx context.Context, userID string) (Settings, error) {
	var settings Settings
	err := h.do(h.request(ctx).SetPathParam("userID", userID).SetResult(&settings),
		resty.MethodGet, "/api/accounts/{userID}/settings", "settings")
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (h *httpProviderAdapter) UpdateSettings(ctx context.Context, userID string, update SettingsUpdate) (Settings, error) {
	var settings Settings
	err := h.do(h.request(ctx).SetPathParam("userID", userID).SetBody(update).SetResult(&settings),
		resty.MethodPut, "/api/accounts/{userID}/settings", "update settings")
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (h *httpProviderAdapter) VaultState(ctx context.Context) (VaultStatus, error) {
	var status VaultStatus
	if err := h.do(h.request(ctx).SetResult(&status), resty.MethodGet, "/api/vault", "vault state"); err != nil {
		return VaultStatus{}, err
	}
	return status, nil
}

func (h *httpProviderAdapter) LockVault(ctx context.Context, userID string) error {
	if userID == "" {
		return h.do(h.request(ctx), resty.MethodPost, "/api/vault/lock", "lock vault")
	}
	return h.do(h.request(ctx).SetPathParam("userID", userID),
		resty.MethodPost, "/api/vault/{userID}/lock", "lock vault")
}

// UnlockVault reads the verdict from the body before mapping the status:
// a rejected unlock carries its result alongside a 401, 409 or 500.
func (h *httpProviderAdapter) UnlockVault(ctx context.Context, userID, masterPassword string) (string, error) {
	var result unlockResponse
	resp, err := h.request(ctx).
		SetPathParam("userID", userID).
		SetBody(unlockRequest{MasterPassword: masterPassword}).
		SetResult(&result).
		SetError(&result).
		Post("/api/vault/{userID}/unlock")
	if err != nil {
		return "", fmt.Errorf("unlock request: %w", err)
	}

	if result.Result != "" && result.Result != models.VaultUnlockResultSuccess.String() {
		return result.Result, fmt.Errorf("%w: %s", ErrUnlockRejected, result.Result)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return result.Result, nil
}

func (h *httpProviderAdapter) SetLifecycle(ctx context.Context, state models.AppForegroundState) error {
	return h.do(h.request(ctx).SetBody(lifecycleRequest{State: state.String()}),
		resty.MethodPut, "/api/lifecycle", "lifecycle")
}

func (h *httpProviderAdapter) BeginGetCredential(ctx context.Context, query CredentialQuery) (models.BeginGetCredentialResponse, error) {
	var response models.BeginGetCredentialResponse
	err := h.do(h.request(ctx).SetBody(query.toRequest()).SetResult(&response),
		resty.MethodPost, "/api/credentials/begin-get", "begin get credential")
	if err != nil {
		return models.BeginGetCredentialResponse{}, err
	}
	return response, nil
}

func (h *httpProviderAdapter) WatchVault(ctx context.Context, fn func(VaultStatus)) error {
	streamURL, err := h.streamURL()
	if err != nil {
		return err
	}

	conn, _, err := h.dialer.DialContext(ctx, streamURL, nil)
	if err != nil {
		return fmt.Errorf("vault stream dial: %w", err)
	}
	defer conn.Close()

	// unblock ReadJSON when the caller gives up
	stop := context.AfterFunc(ctx, func() {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(closeGracePeriod))
		conn.Close()
	})
	defer stop()

	for {
		var status VaultStatus
		if err = conn.ReadJSON(&status); err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("vault stream read: %w", err)
		}
		fn(status)
	}
}

func (h *httpProviderAdapter) streamURL() (string, error) {
	u, err := url.Parse(h.baseURL + "/api/vault/stream")
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", errors.New("unsupported scheme for vault stream: " + u.Scheme)
	}
	return u.String(), nil
}
