package vault

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-provider/internal/flow"
	"github.com/MKhiriev/go-pass-provider/models"
)

type fakeAuthDisk struct {
	userState *flow.State[*models.UserState]
	// subscriptions counts UserStateFlow subscribers.
	subscriptions atomic.Int32

	mu          sync.Mutex
	lastActive  map[string]int64
	autoUnlock  map[string]models.Secret
	privateKeys map[string]string
	orgKeys     map[string]map[string]string
}

func newFakeAuthDisk(state *models.UserState) *fakeAuthDisk {
	return &fakeAuthDisk{
		userState:   flow.NewWithEqual[*models.UserState](state, func(a, b *models.UserState) bool { return a == b }),
		lastActive:  map[string]int64{},
		autoUnlock:  map[string]models.Secret{},
		privateKeys: map[string]string{},
		orgKeys:     map[string]map[string]string{},
	}
}

func (f *fakeAuthDisk) UserState() *models.UserState { return f.userState.Value() }

func (f *fakeAuthDisk) UserStateFlow() flow.Observable[*models.UserState] {
	return countingObservable[*models.UserState]{Observable: f.userState, count: &f.subscriptions}
}

type countingObservable[T any] struct {
	flow.Observable[T]
	count *atomic.Int32
}

func (o countingObservable[T]) Subscribe(callback func(T)) func() {
	unsubscribe := o.Observable.Subscribe(callback)
	o.count.Add(1)
	return unsubscribe
}

func (f *fakeAuthDisk) GetPrivateKey(_ context.Context, userID string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key, ok := f.privateKeys[userID]
	return key, ok, nil
}

func (f *fakeAuthDisk) GetOrganizationKeys(_ context.Context, userID string) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orgKeys[userID], nil
}

func (f *fakeAuthDisk) GetLastActiveTimeMillis(_ context.Context, userID string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	millis, ok := f.lastActive[userID]
	return millis, ok, nil
}

func (f *fakeAuthDisk) StoreLastActiveTimeMillis(_ context.Context, userID string, millis *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if millis == nil {
		delete(f.lastActive, userID)
	} else {
		f.lastActive[userID] = *millis
	}
	return nil
}

func (f *fakeAuthDisk) lastActiveOf(userID string) (int64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	millis, ok := f.lastActive[userID]
	return millis, ok
}

func (f *fakeAuthDisk) GetUserAutoUnlockKey(_ context.Context, userID string) (models.Secret, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.autoUnlock[userID], nil
}

func (f *fakeAuthDisk) StoreUserAutoUnlockKey(_ context.Context, userID string, key models.Secret) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if key == nil {
		delete(f.autoUnlock, userID)
	} else {
		f.autoUnlock[userID] = key
	}
	return nil
}

func (f *fakeAuthDisk) autoUnlockKeyOf(userID string) models.Secret {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.autoUnlock[userID]
}

// fakeSDK accepts any key equal to userKey.
type fakeSDK struct {
	mu       sync.Mutex
	userKey  models.Secret
	keyErr   error
	cleared  []string
	inits    []string
	unlocked map[string]bool

	// keyGate, when set, holds GetUserEncryptionKey until it is closed.
	keyGate chan struct{}
}

func newFakeSDK(userKey string) *fakeSDK {
	return &fakeSDK{userKey: models.Secret(userKey), unlocked: map[string]bool{}}
}

func (f *fakeSDK) InitializeCrypto(_ context.Context, userID string, request models.InitUserCryptoRequest) (models.InitializeCryptoResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits = append(f.inits, userID)

	if m, ok := request.Method.(models.DecryptedKeyMethod); ok && string(m.DecryptedUserKey) == string(f.userKey) {
		f.unlocked[userID] = true
		return models.InitializeCryptoSuccess, nil
	}
	return models.InitializeCryptoAuthenticationError, nil
}

func (f *fakeSDK) InitializeOrganizationCrypto(context.Context, string, models.InitOrgCryptoRequest) (models.InitializeCryptoResult, error) {
	return models.InitializeCryptoSuccess, nil
}

func (f *fakeSDK) ClearCrypto(userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared = append(f.cleared, userID)
	delete(f.unlocked, userID)
}

func (f *fakeSDK) GetUserEncryptionKey(context.Context, string) (models.Secret, error) {
	if f.keyGate != nil {
		<-f.keyGate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.keyErr != nil {
		return nil, f.keyErr
	}
	return models.SecretFromBytes(f.userKey), nil
}

func (f *fakeSDK) clearedUsers() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.cleared...)
}

type fakeSettings struct {
	mu       sync.Mutex
	timeouts map[string]*flow.State[models.VaultTimeout]
	actions  map[string]*flow.State[models.VaultTimeoutAction]
	def      models.VaultTimeout
}

func newFakeSettings(def models.VaultTimeout) *fakeSettings {
	return &fakeSettings{
		timeouts: map[string]*flow.State[models.VaultTimeout]{},
		actions:  map[string]*flow.State[models.VaultTimeoutAction]{},
		def:      def,
	}
}

func (f *fakeSettings) timeout(userID string) *flow.State[models.VaultTimeout] {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.timeouts[userID]
	if !ok {
		s = flow.New(f.def)
		f.timeouts[userID] = s
	}
	return s
}

func (f *fakeSettings) action(userID string) *flow.State[models.VaultTimeoutAction] {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.actions[userID]
	if !ok {
		s = flow.New(models.VaultTimeoutActionLock)
		f.actions[userID] = s
	}
	return s
}

func (f *fakeSettings) VaultTimeoutFlow(_ context.Context, userID string) flow.Observable[models.VaultTimeout] {
	return f.timeout(userID)
}

func (f *fakeSettings) VaultTimeoutActionFlow(_ context.Context, userID string) flow.Observable[models.VaultTimeoutAction] {
	return f.action(userID)
}

type fakeForeground struct {
	state *flow.State[models.AppForegroundState]
}

func newFakeForeground() *fakeForeground {
	return &fakeForeground{state: flow.New(models.AppBackgrounded)}
}

func (f *fakeForeground) ForegroundStateFlow() flow.Observable[models.AppForegroundState] {
	return f.state
}

type fakeLogout struct {
	mu    sync.Mutex
	users []string
}

func (f *fakeLogout) SoftLogout(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, userID)
	return nil
}

func (f *fakeLogout) loggedOut() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.users...)
}

type fakeClock struct {
	mu    sync.Mutex
	now   int64
	reads int
}

func (c *fakeClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	return c.now
}

func (c *fakeClock) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

func (c *fakeClock) Advance(millis int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += millis
}

func twoUsers(active string) *models.UserState {
	return &models.UserState{
		ActiveUserID: active,
		Accounts: []models.Account{
			{UserID: "u1", Email: "a@example.com", IsActive: active == "u1", IsLoggedIn: true},
			{UserID: "u2", Email: "b@example.com", IsActive: active == "u2", IsLoggedIn: true},
		},
	}
}
