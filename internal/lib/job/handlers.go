package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// InitHandlers supplies the dependencies the task handlers call into.
// It must run before Start.
func (j *JobService) InitHandlers(refresher StatsRefresher) {
	j.refresher = refresher
}

func (j *JobService) handleBlogStatsTask(ctx context.Context, t *asynq.Task) error {
	var p BlogStatsPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal blog stats payload: %v: %w", err, asynq.SkipRetry)
	}

	if j.refresher == nil {
		return fmt.Errorf("no stats refresher registered: %w", asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", TaskBlogStats).
		Str("reason", p.Reason).
		Time("requested_at", p.RequestedAt).
		Msg("processing blog stats task")

	if err := j.refresher.RefreshStats(ctx); err != nil {
		j.logger.Error().
			Str("type", TaskBlogStats).
			Err(err).
			Msg("failed to refresh blog stats")
		return errors.Wrap(err, "refresh blog stats")
	}

	j.logger.Info().
		Str("type", TaskBlogStats).
		Msg("refreshed blog stats")

	return nil
}
