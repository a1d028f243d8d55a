package errors

import (
	"errors"
	"fmt"
)

// Common error kinds surfaced by the GreenOS client
var (
	// Session errors
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrRegistrationFailed   = errors.New("registration failed")
	ErrProfileUnavailable   = errors.New("user profile unavailable")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrSessionExpired       = errors.New("session expired")

	// Transport errors
	ErrNetwork         = errors.New("network error")
	ErrBackendRejected = errors.New("backend rejected request")
	ErrUnauthorized    = errors.New("unauthorized")

	// Credential store errors
	ErrUnknownKey            = errors.New("unknown credential key")
	ErrIncompleteCredentials = errors.New("incomplete credential pair")

	// Farm errors
	ErrNoFarmSelected = errors.New("no farm selected")
	ErrFarmNotFound   = errors.New("farm not found")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
