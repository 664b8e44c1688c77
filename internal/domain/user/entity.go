package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Sees team-wide views, can export
	RoleEmployee Role = "employee" // Records own attendance
)

type User struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
