package authfake

import (
	"context"
	"errors"
	"sync"

	"github.com/jrsteele09/greenos-console/auth"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/jrsteele09/greenos-console/users"
	"golang.org/x/oauth2"
)

// FakeAuth scripts the auth endpoints for session and guard tests.
type FakeAuth struct {
	lock sync.Mutex

	Accounts map[string]string // email -> password
	Token    *oauth2.Token
	Profile  *users.User
	MeErr    error

	// Hold, when set, runs at the start of Login and Register and may block.
	Hold func()

	LoginCalls    int
	RegisterCalls int
	MeCalls       int
}

func NewFakeAuth() *FakeAuth {
	return &FakeAuth{
		Accounts: make(map[string]string),
		Token:    &oauth2.Token{AccessToken: "A1", RefreshToken: "R1", TokenType: "bearer"},
	}
}

func (f *FakeAuth) Login(_ context.Context, email, password string) (*oauth2.Token, error) {
	if f.Hold != nil {
		f.Hold()
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.LoginCalls++
	if pw, ok := f.Accounts[email]; !ok || pw != password {
		return nil, autherrors.Wrapf(autherrors.ErrAuthenticationFailed, "Incorrect email or password")
	}
	return f.Token, nil
}

func (f *FakeAuth) Register(_ context.Context, req auth.RegisterRequest) (*users.User, error) {
	if f.Hold != nil {
		f.Hold()
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.RegisterCalls++
	if _, exists := f.Accounts[req.Email]; exists {
		return nil, autherrors.Wrapf(autherrors.ErrRegistrationFailed, "Email already registered")
	}
	f.Accounts[req.Email] = req.Password
	return &users.User{ID: "new", Email: req.Email, FullName: req.FullName, IsActive: true}, nil
}

func (f *FakeAuth) Me(_ context.Context) (*users.User, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.MeCalls++
	if f.MeErr != nil {
		return nil, f.MeErr
	}
	if f.Profile == nil {
		return nil, errors.New("no profile")
	}
	return f.Profile, nil
}
