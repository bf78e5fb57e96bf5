package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-provider/models"
)

func TestCancellationSignal_CancelRunsListenerOnce(t *testing.T) {
	s := NewCancellationSignal()
	calls := 0
	s.SetOnCancelListener(func() { calls++ })

	assert.False(t, s.IsCanceled())
	s.Cancel()
	s.Cancel()

	assert.True(t, s.IsCanceled())
	assert.Equal(t, 1, calls)
}

func TestCancellationSignal_ListenerAfterCancelFiresImmediately(t *testing.T) {
	s := NewCancellationSignal()
	s.Cancel()

	fired := false
	s.SetOnCancelListener(func() { fired = true })

	assert.True(t, fired)
}

func TestCancellationSignal_CancelWithoutListener(t *testing.T) {
	s := NewCancellationSignal()
	assert.NotPanics(t, s.Cancel)
}

func TestOnceReceiver_ForwardsFirstOutcomeOnly(t *testing.T) {
	var results []int
	var errs []*models.CredentialError
	r := newOnceReceiver[int](OutcomeFuncs[int]{
		Result: func(v int) { results = append(results, v) },
		Error:  func(err *models.CredentialError) { errs = append(errs, err) },
	})

	r.OnError(CancellationError(models.CredentialOpGet))
	r.OnResult(1)
	r.OnError(UnknownError(models.CredentialOpGet, "late"))

	assert.Empty(t, results)
	if assert.Len(t, errs, 1) {
		assert.ErrorIs(t, errs[0], ErrCancellation)
	}
}

func TestOutcomeFuncs_NilFuncs(t *testing.T) {
	var f OutcomeFuncs[string]
	assert.NotPanics(t, func() {
		f.OnResult("x")
		f.OnError(UnknownError(models.CredentialOpCreate, ""))
	})
}
