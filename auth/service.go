package auth

import (
	"context"
	"fmt"

	"github.com/jrsteele09/greenos-console/apiclient"
	"github.com/jrsteele09/greenos-console/credentials"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/jrsteele09/greenos-console/users"
	"golang.org/x/oauth2"
)

const (
	loginPath          = "/auth/login"
	registerPath       = "/auth/register"
	mePath             = "/auth/me"
	changePasswordPath = "/auth/change-password"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Service wraps the /auth endpoints of the backend.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// Login exchanges credentials for a token pair. Backend rejections are reported
// as ErrAuthenticationFailed; the *apiclient.ResponseError stays in the chain.
func (s *Service) Login(ctx context.Context, email, password string) (*oauth2.Token, error) {
	var tr credentials.TokenResponse
	err := s.client.PostPublic(ctx, loginPath, LoginRequest{Email: email, Password: password}, &tr)
	if err != nil {
		return nil, classify(err, autherrors.ErrAuthenticationFailed)
	}
	tok := tr.Token()
	if tok.AccessToken == "" || tok.RefreshToken == "" {
		return nil, fmt.Errorf("%w: %w", autherrors.ErrAuthenticationFailed, autherrors.ErrIncompleteCredentials)
	}
	return tok, nil
}

// Register creates an account. It does not log the caller in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*users.User, error) {
	var u users.User
	if err := s.client.PostPublic(ctx, registerPath, req, &u); err != nil {
		return nil, classify(err, autherrors.ErrRegistrationFailed)
	}
	return &u, nil
}

// Me fetches the caller's profile.
func (s *Service) Me(ctx context.Context) (*users.User, error) {
	var u users.User
	if err := s.client.Get(ctx, mePath, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	var msg MessageResponse
	return s.client.Post(ctx, changePasswordPath, ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}, &msg)
}

// classify tags backend rejections with kind and leaves network errors alone.
func classify(err error, kind error) error {
	var re *apiclient.ResponseError
	if autherrors.As(err, &re) {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return err
}
