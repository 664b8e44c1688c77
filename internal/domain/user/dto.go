package user

// MeResponse describes the authenticated user: role for view selection
// plus the profile fields the views display.
type MeResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Name         string `json:"name,omitempty"`
	EmployeeCode string `json:"employee_id,omitempty"`
	Department   string `json:"department,omitempty"`
}
