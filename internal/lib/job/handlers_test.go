package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	calls int
	err   error
}

func (f *fakeRefresher) RefreshStats(ctx context.Context) error {
	f.calls++
	return f.err
}

func newTestJobService() *JobService {
	logger := zerolog.Nop()
	return &JobService{logger: &logger}
}

func TestNewBlogStatsTask(t *testing.T) {
	task, err := NewBlogStatsTask("blog created")
	require.NoError(t, err)
	require.Equal(t, TaskBlogStats, task.Type())

	var p BlogStatsPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	require.Equal(t, "blog created", p.Reason)
	require.False(t, p.RequestedAt.IsZero())
}

func TestHandleBlogStatsTask_CallsRefresher(t *testing.T) {
	j := newTestJobService()
	refresher := &fakeRefresher{}
	j.InitHandlers(refresher)

	task, err := NewBlogStatsTask("blog deleted")
	require.NoError(t, err)

	require.NoError(t, j.handleBlogStatsTask(context.Background(), task))
	require.Equal(t, 1, refresher.calls)
}

func TestHandleBlogStatsTask_RefreshFailureIsRetried(t *testing.T) {
	j := newTestJobService()
	j.InitHandlers(&fakeRefresher{err: errors.New("db down")})

	task, err := NewBlogStatsTask("blog updated")
	require.NoError(t, err)

	err = j.handleBlogStatsTask(context.Background(), task)
	require.Error(t, err)
	require.Contains(t, err.Error(), "db down")
	require.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleBlogStatsTask_BadPayloadSkipsRetry(t *testing.T) {
	j := newTestJobService()
	j.InitHandlers(&fakeRefresher{})

	err := j.handleBlogStatsTask(context.Background(), asynq.NewTask(TaskBlogStats, []byte("{")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandleBlogStatsTask_NoRefresherSkipsRetry(t *testing.T) {
	j := newTestJobService()

	task, err := NewBlogStatsTask("startup")
	require.NoError(t, err)
	require.ErrorIs(t, j.handleBlogStatsTask(context.Background(), task), asynq.SkipRetry)
}
