package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worktrack/attendance-backend-go/internal/domain/profile"
	"github.com/worktrack/attendance-backend-go/internal/pkg/database"
)

type profileRepository struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepository{db: db}
}

// GetByUserID implements profile.ProfileRepository.
func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, name, employee_code, department, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p profile.Profile
	err := q.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.EmployeeCode, &p.Department, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}
