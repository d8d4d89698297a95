package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueLoyalty = "jobs:loyalty"

	// maxAttempts before a job is parked in the DLQ.
	maxAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// LoyaltyJob accrues earned points to a customer after a sale has committed.
// Accrual is deliberately outside the checkout transaction: a slow or failed
// accrual must never block or roll back a completed sale.
type LoyaltyJob struct {
	CustomerID string `json:"customer_id"`
	SaleID     string `json:"sale_id"`
	Points     int64  `json:"points"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueLoyalty pushes a loyalty accrual job to Redis.
func (d *Dispatcher) EnqueueLoyalty(ctx context.Context, payload LoyaltyJob) error {
	return d.enqueue(ctx, QueueLoyalty, "loyalty", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Handlers holds the job processors the pool dispatches to.
type Handlers struct {
	Loyalty *LoyaltyWorker
}

// StartPool launches numWorkers goroutines consuming the job queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartPool(ctx context.Context, rdb *redis.Client, handlers *Handlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers *Handlers, id int) {
	queues := []string{QueueLoyalty}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers *Handlers, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	var err error
	switch job.Type {
	case "loyalty":
		err = handlers.Loyalty.Process(ctx, job.Payload)
	default:
		log.Warn().Str("type", job.Type).Str("queue", queue).Msg("unknown job type, discarding")
		return
	}
	if err == nil {
		return
	}

	job.Attempts++
	log.Error().
		Str("type", job.Type).
		Int("attempts", job.Attempts).
		Err(err).
		Msg("job failed")

	if job.Attempts >= maxAttempts {
		parkJob(ctx, rdb, queue, job, err.Error())
		return
	}

	// Re-enqueue for another attempt
	if encoded, marshalErr := json.Marshal(job); marshalErr == nil {
		if pushErr := rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
			log.Error().Err(pushErr).Str("queue", queue).Msg("failed to re-enqueue job")
		}
	}
}
