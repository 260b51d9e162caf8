package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stacygol/bloglist/internal/lib/listhelper"
	"github.com/stacygol/bloglist/internal/model"
)

type BlogLister interface {
	List(ctx context.Context) ([]model.Blog, error)
}

type StatsCache interface {
	Get(ctx context.Context) (*model.BlogStats, error)
	Set(ctx context.Context, stats *model.BlogStats, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// StatsService serves the blog stats snapshot. Cache failures are logged
// and the snapshot is computed from the store instead.
type StatsService struct {
	blogs  BlogLister
	cache  StatsCache
	ttl    time.Duration
	logger *zerolog.Logger
	now    func() time.Time
}

func NewStatsService(blogs BlogLister, cache StatsCache, ttl time.Duration, logger *zerolog.Logger) *StatsService {
	return &StatsService{
		blogs:  blogs,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

func (s *StatsService) Get(ctx context.Context) (*model.BlogStats, error) {
	cached, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("blog stats cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, stats, s.ttl); err != nil {
		s.logger.Warn().Err(err).Msg("blog stats cache write failed")
	}
	return stats, nil
}

// RefreshStats recomputes the snapshot and overwrites the cache. It is the
// handler body of the blog:stats task, so cache errors are returned for
// the queue to retry.
func (s *StatsService) RefreshStats(ctx context.Context) error {
	stats, err := s.compute(ctx)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, stats, s.ttl)
}

func (s *StatsService) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("blog stats cache invalidation failed")
	}
}

func (s *StatsService) compute(ctx context.Context) (*model.BlogStats, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, err
	}

	return listhelper.Summarize(blogs, s.now().UTC()), nil
}
