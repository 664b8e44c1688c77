package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/worktrack/attendance-backend-go/internal/domain/profile"
	"github.com/worktrack/attendance-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo    user.UserRepository
	profileRepo profile.ProfileRepository
}

func NewUserService(userRepo user.UserRepository, profileRepo profile.ProfileRepository) user.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// GetMe implements user.UserService.
func (s *UserServiceImpl) GetMe(ctx context.Context, userID string) (user.MeResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.MeResponse{}, user.ErrUserNotFound
		}
		return user.MeResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	resp := user.MeResponse{
		ID:    u.ID,
		Email: u.Email,
		Role:  string(u.Role),
	}

	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return resp, nil
		}
		return user.MeResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}

	resp.Name = p.Name
	resp.EmployeeCode = p.EmployeeCode
	resp.Department = p.Department
	return resp, nil
}
