package credential

import (
	"sync"

	"github.com/MKhiriev/go-pass-provider/models"
)

// CancellationSignal lets the caller abort an in-flight request.
type CancellationSignal struct {
	mu        sync.Mutex
	cancelled bool
	listener  func()
}

// NewCancellationSignal returns a signal that has not been cancelled.
func NewCancellationSignal() *CancellationSignal {
	return &CancellationSignal{}
}

// Cancel cancels the signal and runs the listener, once.
func (s *CancellationSignal) Cancel() {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	s.cancelled = true
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener()
	}
}

// IsCanceled reports whether Cancel has been called.
func (s *CancellationSignal) IsCanceled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// SetOnCancelListener registers fn to run on cancellation. If the signal is
// already cancelled, fn runs immediately.
func (s *CancellationSignal) SetOnCancelListener(fn func()) {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		fn()
		return
	}
	s.listener = fn
	s.mu.Unlock()
}

// OutcomeReceiver receives the outcome of a provider request.
type OutcomeReceiver[R any] interface {
	OnResult(result R)
	OnError(err *models.CredentialError)
}

// OutcomeFuncs adapts a pair of functions to OutcomeReceiver.
type OutcomeFuncs[R any] struct {
	Result func(R)
	Error  func(*models.CredentialError)
}

func (f OutcomeFuncs[R]) OnResult(result R) {
	if f.Result != nil {
		f.Result(result)
	}
}

func (f OutcomeFuncs[R]) OnError(err *models.CredentialError) {
	if f.Error != nil {
		f.Error(err)
	}
}

// onceReceiver forwards only the first outcome; a request that races with
// its own cancellation still reports exactly once.
type onceReceiver[R any] struct {
	once sync.Once
	next OutcomeReceiver[R]
}

func newOnceReceiver[R any](next OutcomeReceiver[R]) *onceReceiver[R] {
	return &onceReceiver[R]{next: next}
}

func (r *onceReceiver[R]) OnResult(result R) {
	r.once.Do(func() { r.next.OnResult(result) })
}

func (r *onceReceiver[R]) OnError(err *models.CredentialError) {
	r.once.Do(func() { r.next.OnError(err) })
}
