package profile

import (
	"context"
)

// ProfileRepository exposes the read-only profile directory. Team-wide
// views join profiles in SQL; this interface covers single lookups.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (Profile, error)
}
