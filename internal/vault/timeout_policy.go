package vault

import "github.com/MKhiriev/go-pass-provider/models"

const millisPerMinute = 60 * 1000

// TimeoutDecision is what a vault timeout check asks for.
type TimeoutDecision int

const (
	DecisionNone TimeoutDecision = iota
	DecisionLock
	// DecisionLogout locks the vault and then soft-logs the user out.
	DecisionLogout
)

func (d TimeoutDecision) String() string {
	switch d {
	case DecisionLock:
		return "lock"
	case DecisionLogout:
		return "logout"
	default:
		return "none"
	}
}

// EvaluateVaultTimeout decides whether a user's timeout has expired.
// lastActiveMillis is 0 when no activity was ever recorded, which makes any
// finite timeout expire.
func EvaluateVaultTimeout(
	nowMillis, lastActiveMillis int64,
	timeout models.VaultTimeout,
	action models.VaultTimeoutAction,
	isAppRestart bool,
) TimeoutDecision {
	var minutes int

	switch timeout.Type {
	case models.VaultTimeoutTypeNever:
		return DecisionNone
	case models.VaultTimeoutTypeOnAppRestart:
		if !isAppRestart {
			return DecisionNone
		}
	default:
		m, ok := timeout.InMinutes()
		if !ok {
			return DecisionNone
		}
		minutes = m
	}

	if nowMillis-lastActiveMillis < int64(minutes)*millisPerMinute {
		return DecisionNone
	}

	if action == models.VaultTimeoutActionLogout {
		return DecisionLogout
	}
	return DecisionLock
}
