package notifier

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"beach-reserve/internal/infra/readstore"
	"beach-reserve/internal/infra/writerepo"
	"beach-reserve/internal/pkg/config"
	"beach-reserve/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

// retryDelay spaces redelivery attempts so a flaky Expo endpoint is not
// hammered in a tight loop.
const retryDelay = 30 * time.Second

// Worker drains notification_jobs and pushes each event to the right
// audience through Expo.
type Worker struct {
	pool   *pgxpool.Pool
	jobs   *writerepo.NotificationRepository
	keys   *writerepo.IdempotencyRepository
	users  *readstore.UserReadStore
	expo   *ExpoClient
	cfg    config.PushConfig
	logger *slog.Logger
}

func NewWorker(
	pool *pgxpool.Pool,
	jobs *writerepo.NotificationRepository,
	keys *writerepo.IdempotencyRepository,
	users *readstore.UserReadStore,
	expo *ExpoClient,
	cfg config.PushConfig,
	logger *slog.Logger,
) *Worker {
	return &Worker{
		pool:   pool,
		jobs:   jobs,
		keys:   keys,
		users:  users,
		expo:   expo,
		cfg:    cfg,
		logger: logger,
	}
}

// Run polls until the context is canceled. The first drain happens
// immediately so startup does not wait a full interval.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.drain(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("notification worker stopping")
			return ctx.Err()
		case <-ticker.C:
			w.drain(ctx)
			w.sweepIdempotencyKeys(ctx)
		}
	}
}

// sweepIdempotencyKeys drops replay keys past their TTL. Piggybacked on the
// worker tick so the table does not grow without bound.
func (w *Worker) sweepIdempotencyKeys(ctx context.Context) {
	deleted, err := w.keys.DeleteExpired(ctx, w.pool)
	if err != nil {
		w.logger.Error("failed to sweep expired idempotency keys", "error", err)
		return
	}
	if deleted > 0 {
		w.logger.Info("swept expired idempotency keys", "deleted", deleted)
	}
}

func (w *Worker) drain(ctx context.Context) {
	jobs, err := w.jobs.ClaimDueJobs(ctx, w.pool, int32(w.cfg.BatchSize))
	if err != nil {
		w.logger.Error("failed to claim notification jobs", "error", err)
		return
	}
	for _, job := range jobs {
		if err := w.deliver(ctx, job); err != nil {
			w.logger.Warn("notification delivery failed",
				"job_id", job.ID, "topic", job.Topic, "attempts", job.Attempts, "error", err)
			if markErr := w.jobs.MarkFailed(ctx, w.pool, job.ID, err.Error(), int32(w.cfg.MaxAttempts), retryDelay); markErr != nil {
				w.logger.Error("failed to requeue notification job", "job_id", job.ID, "error", markErr)
			}
			continue
		}
		if err := w.jobs.MarkDone(ctx, w.pool, job.ID); err != nil {
			w.logger.Error("failed to mark notification job done", "job_id", job.ID, "error", err)
		}
	}
}

func (w *Worker) deliver(ctx context.Context, job writerepo.NotificationJob) error {
	var event commands.ReservationEvent
	if err := json.Unmarshal(job.Payload, &event); err != nil {
		return err
	}

	note := Compose(event)
	if note.Audience == AudienceNone {
		w.logger.Warn("unknown notification topic, skipping", "job_id", job.ID, "topic", event.Topic)
		return nil
	}

	tokens, err := w.audienceTokens(ctx, event, note.Audience)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		// Nobody registered a device. Nothing to retry.
		return nil
	}

	messages := make([]ExpoMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, ExpoMessage{
			To:    token,
			Title: note.Title,
			Body:  note.Body,
			Sound: "default",
			Data: map[string]any{
				"reservation_id": event.ReservationID.String(),
				"topic":          event.Topic,
			},
		})
	}
	return w.expo.Send(ctx, messages)
}

func (w *Worker) audienceTokens(ctx context.Context, event commands.ReservationEvent, audience Audience) ([]string, error) {
	if audience == AudienceCustomer {
		return w.users.FindPushTokens(ctx, event.UserID)
	}

	staffIDs, err := w.users.FindVendorUserIDs(ctx, event.VendorID)
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, staffID := range staffIDs {
		staffTokens, err := w.users.FindPushTokens(ctx, staffID)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, staffTokens...)
	}
	return tokens, nil
}
