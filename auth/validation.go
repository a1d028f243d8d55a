package auth

import (
	"errors"
	"net/mail"
	"strings"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// Validator checks login and registration input before it is sent, using the
// same limits the backend enforces.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLogin only checks presence and length; the backend decides whether
// the credentials are right.
func (v *Validator) ValidateLogin(email, password string) error {
	var errs []error
	if strings.TrimSpace(email) == "" {
		errs = append(errs, EmailRequiredErr)
	}
	if err := v.ValidatePassword(password); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ValidateRegistration reports every problem with req at once.
func (v *Validator) ValidateRegistration(req RegisterRequest, confirmPassword string) error {
	var errs []error
	if err := v.ValidateEmail(req.Email); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(req.FullName) == "" {
		errs = append(errs, FullNameRequiredErr)
	}
	if err := v.ValidatePassword(req.Password); err != nil {
		errs = append(errs, err)
	} else if req.Password != confirmPassword {
		errs = append(errs, UserPasswordsDontMatchErr)
	}
	return errors.Join(errs...)
}

func (v *Validator) ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return EmailRequiredErr
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return EmailInvalidErr
	}
	return nil
}

func (v *Validator) ValidatePassword(password string) error {
	switch {
	case password == "":
		return PasswordRequiredErr
	case len(password) < MinPasswordLength:
		return PasswordTooShortErr
	case len(password) > MaxPasswordLength:
		return PasswordTooLongErr
	}
	return nil
}
