package credential

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-pass-provider/models"
)

type processorOptions struct {
	now func() time.Time
}

// ProcessorOption configures the passkey and password processors.
type ProcessorOption func(*processorOptions)

// WithNow replaces the clock used to stamp the active account's create entry.
func WithNow(now func() time.Time) ProcessorOption {
	return func(o *processorOptions) {
		o.now = now
	}
}

func newProcessorOptions(opts []ProcessorOption) processorOptions {
	o := processorOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// nextRequestCode hands out request codes starting at the counter's
// current value.
func nextRequestCode(counter *atomic.Int32) int32 {
	return counter.Add(1) - 1
}

// buildCreateEntries returns one create entry per account. Only the active
// account's entry carries a last-used time.
func buildCreateEntries(
	intents IntentManager,
	requestCode *atomic.Int32,
	userState *models.UserState,
	action, descriptionFormat string,
	now time.Time,
) (*models.BeginCreateCredentialResponse, error) {
	entries := make([]models.CreateEntry, 0, len(userState.Accounts))
	for _, account := range userState.Accounts {
		intent, err := intents.CreatePendingIntent(
			action,
			nextRequestCode(requestCode),
			models.PendingIntentExtras{UserID: account.UserID},
		)
		if err != nil {
			return nil, fmt.Errorf("creating pending intent for user %s: %w", account.UserID, err)
		}

		accountName := account.DisplayName()
		entry := models.CreateEntry{
			AccountName:   accountName,
			Description:   fmt.Sprintf(descriptionFormat, accountName),
			PendingIntent: intent,
		}
		if account.UserID == userState.ActiveUserID {
			lastUsed := now
			entry.LastUsedTime = &lastUsed
		}

		entries = append(entries, entry)
	}

	return &models.BeginCreateCredentialResponse{CreateEntries: entries}, nil
}
