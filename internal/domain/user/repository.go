package user

import (
	"context"
)

// UserRepository is the role collaborator: a lookup from user id to role,
// plus the employee census the aggregation engine counts against.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)

	// CountEmployees returns how many users hold the employee role.
	// Managers are excluded so team stats reflect the tracked headcount.
	CountEmployees(ctx context.Context) (int, error)

	// ListEmployeeIDs returns the ids of every employee-role user. Used
	// by the absence reconciliation job.
	ListEmployeeIDs(ctx context.Context) ([]string, error)
}
