package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// DLQPrefix namespaces the dead letter list of each job queue
// (jobs:loyalty parks on dlq:jobs:loyalty).
const DLQPrefix = "dlq:"

// ParkedJob is a job that exhausted its retries, kept with enough context to
// replay it by hand. A lost loyalty accrual means a customer is shorted
// points they earned, so failed jobs are parked rather than dropped.
type ParkedJob struct {
	Queue    string          `json:"queue"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	FailedAt time.Time       `json:"failed_at"`
	Attempts int             `json:"attempts"`
}

func newParkedJob(queue string, job Job, reason string, failedAt time.Time) ParkedJob {
	return ParkedJob{
		Queue:    queue,
		Type:     job.Type,
		Payload:  job.Payload,
		Reason:   reason,
		FailedAt: failedAt.UTC(),
		Attempts: job.Attempts,
	}
}

// parkJob moves a job that is out of retries onto the queue's dead letter
// list. Best effort: a park failure is logged, never propagated, so the
// worker loop keeps draining.
func parkJob(ctx context.Context, rdb *redis.Client, queue string, job Job, reason string) {
	entry := newParkedJob(queue, job, reason, time.Now())

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: failed to marshal parked job")
		return
	}

	key := DLQPrefix + queue
	if err := rdb.LPush(ctx, key, data).Err(); err != nil {
		log.Error().Err(err).Str("dlq_key", key).Msg("dlq: failed to park job")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("job_type", job.Type).
		Str("reason", reason).
		Int("attempts", job.Attempts).
		Msg("dlq: job parked after exhausting retries")
}

// DLQLength reports the parked-job backlog of a queue for monitoring.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
