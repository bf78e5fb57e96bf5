package models

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"
)

// VaultState is the set of users whose vault is unlocked and the set of
// users with an unlock in flight. A user id is never in both sets once an
// unlock completes.
type VaultState struct {
	UnlockedUserIDs  map[string]struct{}
	UnlockingUserIDs map[string]struct{}
}

// NewVaultState returns an empty state.
func NewVaultState() VaultState {
	return VaultState{
		UnlockedUserIDs:  map[string]struct{}{},
		UnlockingUserIDs: map[string]struct{}{},
	}
}

// IsUnlocked reports whether userID's vault is unlocked.
func (s VaultState) IsUnlocked(userID string) bool {
	_, ok := s.UnlockedUserIDs[userID]
	return ok
}

// IsUnlocking reports whether an unlock for userID is in flight.
func (s VaultState) IsUnlocking(userID string) bool {
	_, ok := s.UnlockingUserIDs[userID]
	return ok
}

// Clone returns a deep copy so callers can mutate it without racing readers.
func (s VaultState) Clone() VaultState {
	out := NewVaultState()
	maps.Copy(out.UnlockedUserIDs, s.UnlockedUserIDs)
	maps.Copy(out.UnlockingUserIDs, s.UnlockingUserIDs)
	return out
}

// Equal reports whether both sets hold the same ids.
func (s VaultState) Equal(other VaultState) bool {
	return setsEqual(s.UnlockedUserIDs, other.UnlockedUserIDs) &&
		setsEqual(s.UnlockingUserIDs, other.UnlockingUserIDs)
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// VaultTimeoutType enumerates the supported vault timeout policies.
type VaultTimeoutType int

const (
	VaultTimeoutTypeImmediately VaultTimeoutType = iota
	VaultTimeoutTypeOneMinute
	VaultTimeoutTypeFiveMinutes
	VaultTimeoutTypeFifteenMinutes
	VaultTimeoutTypeThirtyMinutes
	VaultTimeoutTypeOneHour
	VaultTimeoutTypeFourHours
	VaultTimeoutTypeOnAppRestart
	VaultTimeoutTypeNever
	VaultTimeoutTypeCustom
)

// VaultTimeout is a per-user inactivity policy. Minutes is only meaningful
// for VaultTimeoutTypeCustom.
type VaultTimeout struct {
	Type    VaultTimeoutType
	Minutes int
}

var (
	VaultTimeoutImmediately    = VaultTimeout{Type: VaultTimeoutTypeImmediately}
	VaultTimeoutOneMinute      = VaultTimeout{Type: VaultTimeoutTypeOneMinute}
	VaultTimeoutFiveMinutes    = VaultTimeout{Type: VaultTimeoutTypeFiveMinutes}
	VaultTimeoutFifteenMinutes = VaultTimeout{Type: VaultTimeoutTypeFifteenMinutes}
	VaultTimeoutThirtyMinutes  = VaultTimeout{Type: VaultTimeoutTypeThirtyMinutes}
	VaultTimeoutOneHour        = VaultTimeout{Type: VaultTimeoutTypeOneHour}
	VaultTimeoutFourHours      = VaultTimeout{Type: VaultTimeoutTypeFourHours}
	VaultTimeoutOnAppRestart   = VaultTimeout{Type: VaultTimeoutTypeOnAppRestart}
	VaultTimeoutNever          = VaultTimeout{Type: VaultTimeoutTypeNever}
)

var presetMinutes = map[VaultTimeoutType]int{
	VaultTimeoutTypeImmediately:    0,
	VaultTimeoutTypeOneMinute:      1,
	VaultTimeoutTypeFiveMinutes:    5,
	VaultTimeoutTypeFifteenMinutes: 15,
	VaultTimeoutTypeThirtyMinutes:  30,
	VaultTimeoutTypeOneHour:        60,
	VaultTimeoutTypeFourHours:      240,
}

// CustomVaultTimeout returns a timeout of the given number of minutes.
func CustomVaultTimeout(minutes int) VaultTimeout {
	return VaultTimeout{Type: VaultTimeoutTypeCustom, Minutes: minutes}
}

// InMinutes returns the timeout length. ok is false for Never and
// OnAppRestart, which have no duration.
func (t VaultTimeout) InMinutes() (minutes int, ok bool) {
	if t.Type == VaultTimeoutTypeCustom {
		return t.Minutes, true
	}
	minutes, ok = presetMinutes[t.Type]
	return minutes, ok
}

// String renders the timeout in the form accepted by ParseVaultTimeout.
func (t VaultTimeout) String() string {
	switch t.Type {
	case VaultTimeoutTypeNever:
		return "never"
	case VaultTimeoutTypeOnAppRestart:
		return "on_app_restart"
	}
	minutes, _ := t.InMinutes()
	return (time.Duration(minutes) * time.Minute).String()
}

// ErrInvalidVaultTimeout is returned for unparseable timeout strings.
var ErrInvalidVaultTimeout = errors.New("invalid vault timeout")

// ParseVaultTimeout accepts "never", "on_app_restart", "immediately" or a
// whole-minute duration such as "15m" or "4h".
func ParseVaultTimeout(s string) (VaultTimeout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never":
		return VaultTimeoutNever, nil
	case "on_app_restart":
		return VaultTimeoutOnAppRestart, nil
	case "immediately":
		return VaultTimeoutImmediately, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil || d < 0 || d%time.Minute != 0 {
		return VaultTimeout{}, fmt.Errorf("%w: %q", ErrInvalidVaultTimeout, s)
	}

	return VaultTimeoutFromMinutes(int(d / time.Minute)), nil
}

// VaultTimeoutFromMinutes maps minutes onto a preset when one matches.
func VaultTimeoutFromMinutes(minutes int) VaultTimeout {
	for typ, m := range presetMinutes {
		if m == minutes {
			return VaultTimeout{Type: typ}
		}
	}
	return CustomVaultTimeout(minutes)
}

// MarshalText implements encoding.TextMarshaler.
func (t VaultTimeout) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *VaultTimeout) UnmarshalText(b []byte) error {
	v, err := ParseVaultTimeout(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// VaultTimeoutAction is what happens to a vault when its timeout fires.
type VaultTimeoutAction int

const (
	VaultTimeoutActionLock VaultTimeoutAction = iota
	VaultTimeoutActionLogout
)

// ErrInvalidVaultTimeoutAction is returned for unknown action names.
var ErrInvalidVaultTimeoutAction = errors.New("invalid vault timeout action")

// ParseVaultTimeoutAction accepts "lock" or "logout".
func ParseVaultTimeoutAction(s string) (VaultTimeoutAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lock":
		return VaultTimeoutActionLock, nil
	case "logout":
		return VaultTimeoutActionLogout, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidVaultTimeoutAction, s)
}

func (a VaultTimeoutAction) String() string {
	if a == VaultTimeoutActionLogout {
		return "logout"
	}
	return "lock"
}

// MarshalText implements encoding.TextMarshaler.
func (a VaultTimeoutAction) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *VaultTimeoutAction) UnmarshalText(b []byte) error {
	v, err := ParseVaultTimeoutAction(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// VaultUnlockResult is the outcome of an unlock attempt.
type VaultUnlockResult int

const (
	VaultUnlockResultSuccess VaultUnlockResult = iota
	// VaultUnlockResultAuthenticationError means the supplied master
	// password or key did not decrypt the vault.
	VaultUnlockResultAuthenticationError
	// VaultUnlockResultInvalidStateError means the stored account data
	// needed for the unlock is missing.
	VaultUnlockResultInvalidStateError
	VaultUnlockResultGenericError
)

func (r VaultUnlockResult) String() string {
	switch r {
	case VaultUnlockResultSuccess:
		return "success"
	case VaultUnlockResultAuthenticationError:
		return "authentication_error"
	case VaultUnlockResultInvalidStateError:
		return "invalid_state_error"
	default:
		return "generic_error"
	}
}

// AppForegroundState reports whether the hosting app is visible.
type AppForegroundState int

const (
	AppBackgrounded AppForegroundState = iota
	AppForegrounded
)

func (s AppForegroundState) String() string {
	if s == AppForegrounded {
		return "foregrounded"
	}
	return "backgrounded"
}
