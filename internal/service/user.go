package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stacygol/bloglist/internal/errs"
	"github.com/stacygol/bloglist/internal/lib/utils"
	"github.com/stacygol/bloglist/internal/model"
	"github.com/stacygol/bloglist/internal/sqlerr"
)

const codeUsernameTaken = "USERNAME_TAKEN"

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type UserService struct {
	repo     UserRepository
	hashCost int
	logger   *zerolog.Logger
}

func NewUserService(repo UserRepository, hashCost int, logger *zerolog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		hashCost: hashCost,
		logger:   logger,
	}
}

// Register hashes the password and stores the account. A taken username
// is detected from the insert itself.
func (s *UserService) Register(ctx context.Context, req *model.RegisterUserRequest) (*model.User, error) {
	hash, err := utils.HashPassword(req.Password, s.hashCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, &model.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	})
	if err != nil {
		if sqlerr.ErrCode(err) == sqlerr.UniqueViolation {
			code := codeUsernameTaken
			return nil, errs.NewBadRequestError(model.MessageUsernameTaken, true, &code, []errs.FieldError{
				{Field: "username", Error: model.MessageUsernameTaken},
			}, nil)
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID.String()).Msg("user registered")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}
