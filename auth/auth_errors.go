package auth

import "errors"

var (
	EmailRequiredErr          = errors.New("email is required")
	EmailInvalidErr           = errors.New("email is not a valid address")
	PasswordRequiredErr       = errors.New("password is required")
	PasswordTooShortErr       = errors.New("password must be at least 8 characters")
	PasswordTooLongErr        = errors.New("password must be at most 128 characters")
	FullNameRequiredErr       = errors.New("full name is required")
	UserPasswordsDontMatchErr = errors.New("passwords do not match")
)
