package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/stacygol/bloglist/internal/model"
	"github.com/stacygol/bloglist/internal/server"
	"github.com/stacygol/bloglist/internal/service"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) RegisterUser(c echo.Context, req *model.RegisterUserRequest) (*model.User, error) {
	return h.users.Register(c.Request().Context(), req)
}

func (h *UserHandler) ListUsers(c echo.Context, _ *model.NoParams) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}
