package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stacygol/bloglist/internal/model"
)

type BlogRepository interface {
	List(ctx context.Context) ([]model.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	Create(ctx context.Context, blog *model.Blog) (*model.Blog, error)
	Update(ctx context.Context, blog *model.Blog) (*model.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsEnqueuer schedules a recomputation of the blog stats snapshot.
type StatsEnqueuer interface {
	EnqueueStatsRefresh(ctx context.Context, reason string) error
}

type BlogService struct {
	repo     BlogRepository
	enqueuer StatsEnqueuer
	stats    *StatsService
	logger   *zerolog.Logger
}

func NewBlogService(repo BlogRepository, enqueuer StatsEnqueuer, stats *StatsService, logger *zerolog.Logger) *BlogService {
	return &BlogService{
		repo:     repo,
		enqueuer: enqueuer,
		stats:    stats,
		logger:   logger,
	}
}

func (s *BlogService) List(ctx context.Context) ([]model.Blog, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []model.Blog{}
	}
	return blogs, nil
}

func (s *BlogService) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.Blog, error) {
	blog, err := s.repo.Create(ctx, req.Blog())
	if err != nil {
		return nil, err
	}

	s.refreshStats(ctx, "blog created")
	return blog, nil
}

// Update replaces the blog's fields. The lookup runs before the body is
// validated so an unknown id is always reported as not found.
func (s *BlogService) Update(ctx context.Context, req *model.UpdateBlogRequest) (*model.Blog, error) {
	current, err := s.repo.GetByID(ctx, req.ID())
	if err != nil {
		return nil, err
	}

	if err := req.ValidateFields(); err != nil {
		return nil, err
	}

	blog, err := s.repo.Update(ctx, req.Apply(current))
	if err != nil {
		return nil, err
	}

	s.refreshStats(ctx, "blog updated")
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.refreshStats(ctx, "blog deleted")
	return nil
}

// refreshStats never fails the write. The cached snapshot is dropped
// before the refresh is queued, so reads that come before the worker
// finishes compute the stats from the store.
func (s *BlogService) refreshStats(ctx context.Context, reason string) {
	if s.stats != nil {
		s.stats.Invalidate(ctx)
	}

	if s.enqueuer == nil {
		return
	}

	if err := s.enqueuer.EnqueueStatsRefresh(ctx, reason); err != nil {
		s.logger.Warn().Err(err).Str("reason", reason).Msg("failed to enqueue blog stats refresh")
	}
}
