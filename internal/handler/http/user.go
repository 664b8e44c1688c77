package http

import (
	"net/http"

	"github.com/worktrack/attendance-backend-go/internal/domain/user"
	"github.com/worktrack/attendance-backend-go/internal/handler/http/response"
	"github.com/worktrack/attendance-backend-go/internal/pkg/jwt"
)

type UserHandler interface {
	GetMe(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &userHandlerImpl{
		userService: userService,
	}
}

// GetMe implements UserHandler.
func (h *userHandlerImpl) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := jwt.UserIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.userService.GetMe(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
