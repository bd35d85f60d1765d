package identity

import (
	"errors"

	"blogmosaic/internal/model"
)

// ErrNoIdentifier means the remote user record carried none of the known
// identifier fields. The operation that needed the id must be aborted, but
// the session itself stays alive.
var ErrNoIdentifier = errors.New("user record has no recognized identifier")

// Resolve picks the user's unique identifier using the fixed fallback order
// the remote service requires: $id, then id, then _id. The first non-empty
// field wins.
func Resolve(user *model.UserRecord) (string, error) {
	if user == nil {
		return "", ErrNoIdentifier
	}
	if user.ID != "" {
		return user.ID, nil
	}
	for _, candidate := range []string{user.PrimaryID, user.AltID, user.LegacyID} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return "", ErrNoIdentifier
}

// Normalize resolves the identifier once and stores it in the canonical ID
// field. The gateway calls this on every user record it hands out, so
// consumers never repeat the fallback chain.
func Normalize(user *model.UserRecord) (*model.UserRecord, error) {
	id, err := Resolve(user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}
