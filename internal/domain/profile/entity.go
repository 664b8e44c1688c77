package profile

import "time"

// Profile is the display-join side of an attendance record. This core
// reads profiles, it never writes them.
type Profile struct {
	UserID       string
	Name         string
	EmployeeCode string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
