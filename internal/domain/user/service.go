package user

import "context"

// UserService resolves the authenticated user's identity and role.
type UserService interface {
	// GetMe returns the user's role and profile fields. A user without a
	// profile row still resolves; the profile fields stay empty.
	GetMe(ctx context.Context, userID string) (MeResponse, error)
}
