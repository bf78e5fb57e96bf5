package credential

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-provider/internal/mock"
	"github.com/MKhiriev/go-pass-provider/models"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// stubIntents returns an IntentManager whose handles echo their extras in
// the token.
func stubIntents(ctrl *gomock.Controller) *mock.MockIntentManager {
	intents := mock.NewMockIntentManager(ctrl)
	intents.EXPECT().
		CreatePendingIntent(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(stubIntent).
		AnyTimes()
	return intents
}

func stubIntent(action string, requestCode int32, extras models.PendingIntentExtras) (models.PendingIntent, error) {
	return models.PendingIntent{
		Action:      action,
		RequestCode: requestCode,
		Token:       tokenFor(extras),
	}, nil
}

func tokenFor(extras models.PendingIntentExtras) string {
	return fmt.Sprintf("%s|%s|%s|%s", extras.UserID, extras.CipherID, extras.CredentialID, extras.OptionID)
}

func twoAccounts(active string, unlocked bool) *models.UserState {
	return &models.UserState{
		ActiveUserID: active,
		Accounts: []models.Account{
			{UserID: "u1", Email: "one@example.com", Name: "One", IsActive: active == "u1", IsVaultUnlocked: unlocked && active == "u1", IsLoggedIn: true},
			{UserID: "u2", Email: "two@example.com", IsActive: active == "u2", IsVaultUnlocked: unlocked && active == "u2", IsLoggedIn: true},
		},
	}
}

// outcome captures every callback of one request.
type outcome[R any] struct {
	results chan R
	errs    chan *models.CredentialError
}

func newOutcome[R any]() *outcome[R] {
	return &outcome[R]{
		results: make(chan R, 4),
		errs:    make(chan *models.CredentialError, 4),
	}
}

func (o *outcome[R]) OnResult(result R)                   { o.results <- result }
func (o *outcome[R]) OnError(err *models.CredentialError) { o.errs <- err }

func (o *outcome[R]) count() int { return len(o.results) + len(o.errs) }

func (o *outcome[R]) waitResult(t *testing.T) R {
	t.Helper()
	select {
	case r := <-o.results:
		return r
	case err := <-o.errs:
		t.Fatalf("unexpected error outcome: %v", err)
	case <-time.After(waitFor):
		t.Fatal("no outcome reported")
	}
	var zero R
	return zero
}

func (o *outcome[R]) waitError(t *testing.T) *models.CredentialError {
	t.Helper()
	select {
	case err := <-o.errs:
		return err
	case r := <-o.results:
		t.Fatalf("unexpected result outcome: %v", r)
	case <-time.After(waitFor):
		t.Fatal("no outcome reported")
	}
	return nil
}
