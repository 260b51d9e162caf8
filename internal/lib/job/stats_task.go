package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
	QueueLow      = "low"

	// TaskBlogStats recomputes the cached blog stats snapshot.
	TaskBlogStats = "blog:stats"
)

type BlogStatsPayload struct {
	Reason      string    `json:"reason"`
	RequestedAt time.Time `json:"requested_at"`
}

// NewBlogStatsTask builds a low priority task. Tasks are not deduplicated:
// asynq holds a uniqueness lock until the task finishes, which would drop
// the refresh for a write that lands while an earlier task is running.
func NewBlogStatsTask(reason string) (*asynq.Task, error) {
	payload, err := json.Marshal(BlogStatsPayload{
		Reason:      reason,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskBlogStats,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueLow),
		asynq.Timeout(30*time.Second),
	), nil
}
