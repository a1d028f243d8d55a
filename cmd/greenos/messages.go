package main

import (
	"errors"
	"fmt"

	"github.com/jrsteele09/greenos-console/apiclient"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
)

// userMessage turns an error into the line shown to the operator.
func userMessage(err error) string {
	var re *apiclient.ResponseError
	switch {
	case errors.Is(err, autherrors.ErrSessionExpired):
		return "Your session has expired. Run `greenos login` to sign in again."
	case errors.Is(err, autherrors.ErrNotAuthenticated):
		return "You are not signed in. Run `greenos login` first."
	case errors.Is(err, autherrors.ErrNoFarmSelected):
		return "No farm selected. Run `greenos farms` and `greenos use-farm <id>`."
	case errors.Is(err, autherrors.ErrFarmNotFound):
		return fmt.Sprintf("Error: %v. Run `greenos farms` to list your farms.", err)
	case errors.Is(err, autherrors.ErrNetwork):
		return "Could not reach the GreenOS API. Check your connection and try again."
	case errors.Is(err, autherrors.ErrProfileUnavailable):
		return "Signed in, but your profile could not be loaded. Try `greenos whoami` again shortly."
	case errors.As(err, &re):
		return "Error: " + re.Message()
	}
	return "Error: " + err.Error()
}
