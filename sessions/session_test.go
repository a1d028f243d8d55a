package sessions_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/jrsteele09/greenos-console/apiclient"
	"github.com/jrsteele09/greenos-console/auth/authfake"
	"github.com/jrsteele09/greenos-console/credentials"
	"github.com/jrsteele09/greenos-console/credentials/storefake"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/jrsteele09/greenos-console/sessions"
	"github.com/jrsteele09/greenos-console/users"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "grower@greenos.example"
	testPassword = "correct-horse-battery"
)

type testFixture struct {
	api       *authfake.FakeAuth
	store     *storefake.FakeStore
	redirects *atomic.Int32
	state     *sessions.State
}

func setupTestFixture(t *testing.T, seeded map[credentials.Key]string) *testFixture {
	t.Helper()
	api := authfake.NewFakeAuth()
	api.Accounts[testEmail] = testPassword
	api.Profile = &users.User{ID: "u1", Email: testEmail, FullName: "Sam Grower", IsActive: true}

	store := storefake.NewFakeStoreWith(seeded)
	redirects := &atomic.Int32{}
	nav := apiclient.NavigatorFunc(func() { redirects.Add(1) })

	return &testFixture{
		api:       api,
		store:     store,
		redirects: redirects,
		state:     sessions.New(api, store, nav),
	}
}

func TestNew_AuthenticatedFromStoredToken(t *testing.T) {
	f := setupTestFixture(t, map[credentials.Key]string{credentials.AccessTokenKey: "A0"})
	require.True(t, f.state.IsAuthenticated())
	_, ok := f.state.User()
	require.False(t, ok)

	empty := setupTestFixture(t, nil)
	require.False(t, empty.state.IsAuthenticated())
}

func TestLogin_Success(t *testing.T) {
	f := setupTestFixture(t, nil)

	require.NoError(t, f.state.Login(context.Background(), testEmail, testPassword))

	snap := f.state.Snapshot()
	require.True(t, snap.Authenticated)
	require.False(t, snap.Busy)
	require.Equal(t, "u1", snap.User.ID)
	require.Equal(t, "A1", f.store.Snapshot()[credentials.AccessTokenKey])
	require.Equal(t, "R1", f.store.Snapshot()[credentials.RefreshTokenKey])
}

func TestLogin_BadCredentials(t *testing.T) {
	f := setupTestFixture(t, nil)

	err := f.state.Login(context.Background(), testEmail, "wrong")
	require.ErrorIs(t, err, autherrors.ErrAuthenticationFailed)
	require.False(t, f.state.IsAuthenticated())
	require.False(t, f.state.IsBusy())
	require.Empty(t, f.store.Snapshot())
	require.Equal(t, 0, f.api.MeCalls)
}

func TestLogin_ProfileFailureLeavesUnauthenticated(t *testing.T) {
	f := setupTestFixture(t, nil)
	f.api.MeErr = autherrors.ErrNetwork

	err := f.state.Login(context.Background(), testEmail, testPassword)
	require.ErrorIs(t, err, autherrors.ErrProfileUnavailable)
	require.ErrorIs(t, err, autherrors.ErrNetwork)

	snap := f.state.Snapshot()
	require.False(t, snap.Authenticated)
	require.Nil(t, snap.User)
	require.False(t, snap.Busy)
}

// requireBusyWhileInFlight holds the auth call open and checks the busy flag
// on both sides of it.
func requireBusyWhileInFlight(t *testing.T, f *testFixture, call func() error) {
	t.Helper()
	entered := make(chan struct{})
	release := make(chan struct{})
	f.api.Hold = func() {
		close(entered)
		<-release
	}
	require.False(t, f.state.IsBusy())

	done := make(chan error, 1)
	go func() { done <- call() }()
	<-entered
	require.True(t, f.state.IsBusy())
	require.True(t, f.state.Snapshot().Busy)

	close(release)
	require.NoError(t, <-done)
	require.False(t, f.state.IsBusy())
}

func TestLogin_BusyWhileInFlight(t *testing.T) {
	f := setupTestFixture(t, nil)
	requireBusyWhileInFlight(t, f, func() error {
		return f.state.Login(context.Background(), testEmail, testPassword)
	})
	require.True(t, f.state.IsAuthenticated())
}

func TestRegister_BusyWhileInFlight(t *testing.T) {
	f := setupTestFixture(t, nil)
	requireBusyWhileInFlight(t, f, func() error {
		return f.state.Register(context.Background(), "new@greenos.example", testPassword, "New Grower")
	})
	require.False(t, f.state.IsAuthenticated())
}

func TestRegister_DoesNotAuthenticate(t *testing.T) {
	f := setupTestFixture(t, nil)

	require.NoError(t, f.state.Register(context.Background(), "new@greenos.example", testPassword, "New Grower"))
	require.False(t, f.state.IsAuthenticated())
	require.Empty(t, f.store.Snapshot())

	err := f.state.Register(context.Background(), testEmail, testPassword, "Duplicate")
	require.ErrorIs(t, err, autherrors.ErrRegistrationFailed)
	require.False(t, f.state.IsBusy())
}

func TestLogout_ClearsAndRedirects(t *testing.T) {
	f := setupTestFixture(t, map[credentials.Key]string{credentials.CurrentFarmIDKey: "f2"})
	require.NoError(t, f.state.Login(context.Background(), testEmail, testPassword))

	f.state.Logout()

	snap := f.state.Snapshot()
	require.False(t, snap.Authenticated)
	require.Nil(t, snap.User)
	require.Equal(t, map[credentials.Key]string{credentials.CurrentFarmIDKey: "f2"}, f.store.Snapshot())
	require.Equal(t, int32(1), f.redirects.Load())
}

func TestLogout_Idempotent(t *testing.T) {
	f := setupTestFixture(t, nil)

	f.state.Logout()
	once := f.state.Snapshot()
	onceStore := f.store.Snapshot()

	f.state.Logout()
	require.Equal(t, once, f.state.Snapshot())
	require.Equal(t, onceStore, f.store.Snapshot())
	require.Empty(t, f.store.Snapshot())
	require.Equal(t, int32(2), f.redirects.Load())
}

func TestFetchUser(t *testing.T) {
	f := setupTestFixture(t, map[credentials.Key]string{credentials.AccessTokenKey: "A1"})

	f.state.FetchUser(context.Background())
	u, ok := f.state.User()
	require.True(t, ok)
	require.Equal(t, "Sam Grower", u.FullName)
	require.True(t, f.state.IsAuthenticated())

	f.api.MeErr = autherrors.ErrUnauthorized
	f.state.FetchUser(context.Background())
	_, ok = f.state.User()
	require.False(t, ok)
	require.False(t, f.state.IsAuthenticated())
}

func TestReset_KeepsCredentials(t *testing.T) {
	f := setupTestFixture(t, nil)
	require.NoError(t, f.state.Login(context.Background(), testEmail, testPassword))

	f.state.Reset()
	require.False(t, f.state.IsAuthenticated())
	require.Equal(t, "A1", f.store.Snapshot()[credentials.AccessTokenKey])
	require.Equal(t, int32(0), f.redirects.Load())
}
