package credentials

import (
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
)

// Key names a value in the persisted client state.
type Key string

const (
	AccessTokenKey   Key = "access_token"
	RefreshTokenKey  Key = "refresh_token"
	CurrentFarmIDKey Key = "current_farm_id"
)

var knownKeys = map[Key]struct{}{
	AccessTokenKey:   {},
	RefreshTokenKey:  {},
	CurrentFarmIDKey: {},
}

// Store is durable key-value storage scoped to one backend origin.
// Values are passed through untouched; Delete of a missing key is not an error.
type Store interface {
	Get(key Key) (string, bool)
	Set(key Key, value string) error
	Delete(key Key) error
}

// ValidateKey rejects keys outside the fixed set a Store is expected to hold.
func ValidateKey(key Key) error {
	if _, ok := knownKeys[key]; !ok {
		return autherrors.Wrapf(autherrors.ErrUnknownKey, "%q", string(key))
	}
	return nil
}
