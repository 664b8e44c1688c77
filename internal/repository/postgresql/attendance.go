package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worktrack/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrack/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, date, check_in, check_out, total_hours, status, created_at, updated_at`

const attendanceJoinedColumns = `
	a.id, a.user_id, a.date, a.check_in, a.check_out, a.total_hours, a.status, a.created_at, a.updated_at,
	p.name, p.employee_code, p.department`

func scanAttendance(row pgx.Row, att *attendance.Attendance) error {
	return row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
}

func scanJoinedRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.TotalHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.Name, &att.EmployeeCode, &att.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	return attendances, rows.Err()
}

// Create implements attendance.AttendanceRepository. The UNIQUE
// (user_id, date) constraint is the serialization point for racing
// check-ins: the loser surfaces ErrDuplicateCheckIn.
func (a *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if att.ID == "" {
		att.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendances (id, user_id, date, check_in, check_out, total_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.UserID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.TotalHours,
		att.Status,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrDuplicateCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, query, userID, date), &att)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository. Only check-out data
// is updatable; date, user and status are immutable after creation.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $1, total_hours = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, att.CheckOut, att.TotalHours, att.ID).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// ListByUserAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUserAndRange(ctx context.Context, userID string, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// ListRecentByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attendances: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		LEFT JOIN profiles p ON p.user_id = a.user_id
		WHERE a.date = $1
		ORDER BY a.check_in ASC NULLS LAST
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by date: %w", err)
	}
	defer rows.Close()

	return scanJoinedRows(rows)
}

// ListByDateRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date >= $1
		  AND date <= $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by range: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// ListTeam implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListTeam(ctx context.Context, filter attendance.TeamFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.SearchText != "" {
		baseWhere += fmt.Sprintf(
			" AND (p.name ILIKE $%d OR p.employee_code ILIKE $%d OR p.department ILIKE $%d)",
			argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+filter.SearchText+"%")
		argIdx++
	}

	if filter.Status != "" && filter.Status != attendance.StatusFilterAll {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		LEFT JOIN profiles p ON p.user_id = a.user_id
		WHERE ` + baseWhere + `
		ORDER BY a.date DESC, a.check_in DESC NULLS LAST
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query team attendances: %w", err)
	}
	defer rows.Close()

	return scanJoinedRows(rows)
}

func scanRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := scanAttendance(rows, &att); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	return attendances, rows.Err()
}
