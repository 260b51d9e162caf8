package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stacygol/bloglist/internal/model"
)

type PersonRepository interface {
	List(ctx context.Context) ([]model.Person, error)
	Count(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error)
	Create(ctx context.Context, person *model.Person) (*model.Person, error)
	Update(ctx context.Context, person *model.Person) (*model.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PersonService struct {
	repo PersonRepository
	now  func() time.Time
}

func NewPersonService(repo PersonRepository) *PersonService {
	return &PersonService{repo: repo, now: time.Now}
}

func (s *PersonService) List(ctx context.Context) ([]model.Person, error) {
	persons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if persons == nil {
		persons = []model.Person{}
	}
	return persons, nil
}

func (s *PersonService) Get(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PersonService) Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	return s.repo.Create(ctx, req.Person())
}

func (s *PersonService) Update(ctx context.Context, req *model.UpdatePersonRequest) (*model.Person, error) {
	return s.repo.Update(ctx, req.Person())
}

// Delete succeeds whether or not the entry exists.
func (s *PersonService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *PersonService) Info(ctx context.Context) (model.PhonebookInfo, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return model.PhonebookInfo{}, err
	}
	return model.PhonebookInfo{Count: count, At: s.now()}, nil
}
