// Package job runs background work on Asynq, a Redis-backed task queue.
// The API enqueues tasks through Client and the worker server started by
// Start processes them.
package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/stacygol/bloglist/internal/config"
)

// StatsRefresher recomputes and caches the blog stats snapshot.
type StatsRefresher interface {
	RefreshStats(ctx context.Context) error
}

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger

	refresher StatsRefresher
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				QueueCritical: 6,
				QueueDefault:  3,
				QueueLow:      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers the task handlers and starts the workers without
// blocking.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskBlogStats, j.handleBlogStatsTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return fmt.Errorf("start job server: %w", err)
	}
	return nil
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}

// EnqueueStatsRefresh schedules a stats recomputation.
func (j *JobService) EnqueueStatsRefresh(ctx context.Context, reason string) error {
	task, err := NewBlogStatsTask(reason)
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TaskBlogStats, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("reason", reason).
		Msg("enqueued blog stats refresh")
	return nil
}
