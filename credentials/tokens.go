package credentials

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"golang.org/x/oauth2"
)

// AccessToken returns the stored access token, if any.
func AccessToken(s Store) (string, bool) {
	v, ok := s.Get(AccessTokenKey)
	return v, ok && v != ""
}

// RefreshToken returns the stored refresh token, if any.
func RefreshToken(s Store) (string, bool) {
	v, ok := s.Get(RefreshTokenKey)
	return v, ok && v != ""
}

// Tokens returns the stored pair. A partial pair is reported as absent.
func Tokens(s Store) (*oauth2.Token, bool) {
	access, ok := AccessToken(s)
	if !ok {
		return nil, false
	}
	refresh, ok := RefreshToken(s)
	if !ok {
		return nil, false
	}
	tok := &oauth2.Token{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
	}
	if exp, ok := AccessTokenExpiry(access); ok {
		tok.Expiry = exp
	}
	return tok, true
}

// SaveTokens overwrites both halves of the pair. Both must be non-empty.
func SaveTokens(s Store, tok *oauth2.Token) error {
	if tok == nil || tok.AccessToken == "" || tok.RefreshToken == "" {
		return autherrors.ErrIncompleteCredentials
	}
	previous, hadPrevious := s.Get(AccessTokenKey)
	if err := s.Set(AccessTokenKey, tok.AccessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if err := s.Set(RefreshTokenKey, tok.RefreshToken); err != nil {
		// The new access token must not be left next to the old refresh token.
		if rollbackErr := restoreAccessToken(s, previous, hadPrevious); rollbackErr != nil {
			_ = ClearTokens(s)
		}
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

func restoreAccessToken(s Store, previous string, hadPrevious bool) error {
	if !hadPrevious {
		return s.Delete(AccessTokenKey)
	}
	return s.Set(AccessTokenKey, previous)
}

// ClearTokens deletes both halves of the pair. The selected farm id is kept.
func ClearTokens(s Store) error {
	accessErr := s.Delete(AccessTokenKey)
	refreshErr := s.Delete(RefreshTokenKey)
	if accessErr != nil {
		return fmt.Errorf("delete access token: %w", accessErr)
	}
	if refreshErr != nil {
		return fmt.Errorf("delete refresh token: %w", refreshErr)
	}
	return nil
}

// AccessTokenExpiry reads the exp claim without verifying the signature.
// The client never holds the signing key; the value is informational only.
func AccessTokenExpiry(raw string) (time.Time, bool) {
	claims, ok := parseUnverified(raw)
	if !ok {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// AccessTokenSubject reads the sub claim without verifying the signature.
func AccessTokenSubject(raw string) (string, bool) {
	claims, ok := parseUnverified(raw)
	if !ok {
		return "", false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}

func parseUnverified(raw string) (jwt.MapClaims, bool) {
	if raw == "" {
		return nil, false
	}
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return claims, ok
}
