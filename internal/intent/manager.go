// Package intent issues and resolves activation handles: signed tokens that
// a credential entry carries and that the hosting app hands back when the
// user picks that entry.
package intent

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-pass-provider/internal/config"
	"github.com/MKhiriev/go-pass-provider/models"
)

// Claims is the signed payload of an activation handle. Subject carries the
// user id.
type Claims struct {
	jwt.RegisteredClaims
	Action      string                     `json:"act"`
	RequestCode int32                      `json:"rc"`
	Extras      models.PendingIntentExtras `json:"ext"`
}

// Manager signs handles with HMAC-SHA256.
type Manager struct {
	signKey []byte
	issuer  string
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithNow replaces the clock used for issue and expiry checks.
func WithNow(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager returns a Manager for the handle settings in cfg.
func NewManager(cfg config.App, opts ...Option) (*Manager, error) {
	if cfg.HandleSignKey == "" || cfg.HandleIssuer == "" || cfg.HandleTTL <= 0 {
		return nil, ErrInvalidParams
	}

	m := &Manager{
		signKey: []byte(cfg.HandleSignKey),
		issuer:  cfg.HandleIssuer,
		ttl:     cfg.HandleTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// CreatePendingIntent signs a handle for action carrying extras.
func (m *Manager) CreatePendingIntent(action string, requestCode int32, extras models.PendingIntentExtras) (models.PendingIntent, error) {
	now := m.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   extras.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Action:      action,
		RequestCode: requestCode,
		Extras:      extras,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signKey)
	if err != nil {
		return models.PendingIntent{}, fmt.Errorf("error signing activation handle: %w", err)
	}

	return models.PendingIntent{
		Action:      action,
		RequestCode: requestCode,
		Token:       signed,
	}, nil
}

// Resolve validates token and returns its claims.
func (m *Manager) Resolve(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.signKey, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, fmt.Errorf("%w: %w", ErrHandleExpired, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidHandle, err)
	}

	if claims.Action == "" || claims.Subject != claims.Extras.UserID {
		return nil, ErrInvalidHandle
	}

	return claims, nil
}

// ResolveAction is Resolve plus a check that the handle was issued for
// action.
func (m *Manager) ResolveAction(token, action string) (*Claims, error) {
	claims, err := m.Resolve(token)
	if err != nil {
		return nil, err
	}
	if claims.Action != action {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrActionMismatch, claims.Action, action)
	}
	return claims, nil
}
