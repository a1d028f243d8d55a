package sessions

import (
	"context"
	"fmt"
	"sync"

	"github.com/jrsteele09/greenos-console/apiclient"
	"github.com/jrsteele09/greenos-console/auth"
	"github.com/jrsteele09/greenos-console/credentials"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/jrsteele09/greenos-console/users"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// AuthAPI is the subset of the auth endpoints the session drives.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*oauth2.Token, error)
	Register(ctx context.Context, req auth.RegisterRequest) (*users.User, error)
	Me(ctx context.Context) (*users.User, error)
}

// Snapshot is a consistent copy of the session fields.
type Snapshot struct {
	User          *users.User
	Authenticated bool
	Busy          bool
}

// State holds the current user and the authenticated flag.
//
// Transitions: Unauthenticated -> Authenticated on a login whose profile fetch
// succeeds (or a successful FetchUser); back to Unauthenticated on Logout, a
// failed FetchUser, or Reset after an irrecoverable refresh failure.
// Overlapping logins are not serialised; the last write wins.
type State struct {
	api       AuthAPI
	store     credentials.Store
	navigator apiclient.Navigator

	lock          sync.RWMutex
	user          *users.User
	authenticated bool
	busy          bool
}

// New starts authenticated when an access token is already stored.
func New(api AuthAPI, store credentials.Store, navigator apiclient.Navigator) *State {
	_, hasToken := credentials.AccessToken(store)
	if navigator == nil {
		navigator = apiclient.NavigatorFunc(func() {})
	}
	return &State{
		api:           api,
		store:         store,
		navigator:     navigator,
		authenticated: hasToken,
	}
}

// Login stores the issued token pair and then loads the profile. The session is
// only authenticated once both steps succeed.
func (s *State) Login(ctx context.Context, email, password string) error {
	s.setBusy(true)
	defer s.setBusy(false)

	tok, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := credentials.SaveTokens(s.store, tok); err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.set(nil, false)
		return fmt.Errorf("%w: %w", autherrors.ErrProfileUnavailable, err)
	}
	s.set(user, true)
	log.Info().Str("user_id", user.ID).Msg("Logged in")
	return nil
}

// Register creates an account without authenticating the caller.
func (s *State) Register(ctx context.Context, email, password, fullName string) error {
	s.setBusy(true)
	defer s.setBusy(false)

	_, err := s.api.Register(ctx, auth.RegisterRequest{Email: email, Password: password, FullName: fullName})
	return err
}

// Logout clears the tokens, resets the session and redirects to login.
// It always redirects, even when nobody was logged in.
func (s *State) Logout() {
	if err := credentials.ClearTokens(s.store); err != nil {
		log.Err(err).Msg("Logout: failed to clear credentials")
	}
	s.Reset()
	s.navigator.RedirectToLogin()
}

// FetchUser loads the profile. Any failure leaves the session unauthenticated; it never returns an error.
func (s *State) FetchUser(ctx context.Context) {
	user, err := s.api.Me(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Fetch user failed")
		s.set(nil, false)
		return
	}
	s.set(user, true)
}

// Reset drops the in-memory session without touching stored credentials.
func (s *State) Reset() {
	s.set(nil, false)
}

func (s *State) User() (*users.User, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.user, s.user != nil
}

func (s *State) IsAuthenticated() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.authenticated
}

// IsBusy is true while a login or registration is in flight.
func (s *State) IsBusy() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.busy
}

func (s *State) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return Snapshot{User: s.user, Authenticated: s.authenticated, Busy: s.busy}
}

func (s *State) set(user *users.User, authenticated bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.user = user
	s.authenticated = authenticated
}

func (s *State) setBusy(busy bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.busy = busy
}
