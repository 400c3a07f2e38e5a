package writerepo

import (
	"context"
	"time"

	"beach-reserve/internal/infra"
	"beach-reserve/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const insertNotificationJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, 'queued')`

func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if _, err := dbtx.Exec(ctx, insertNotificationJobSQL, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// SKIP LOCKED lets multiple worker replicas drain the queue without
// stepping on each other.
const claimDueJobsSQL = `
UPDATE notification_jobs
SET status = 'processing', attempts = attempts + 1, updated_at = now()
WHERE id IN (
    SELECT id FROM notification_jobs
    WHERE status = 'queued' AND run_at <= now()
    ORDER BY run_at
    LIMIT $1
    FOR UPDATE SKIP LOCKED
)
RETURNING id, kind, topic, payload, run_at, attempts`

func (r *NotificationRepository) ClaimDueJobs(ctx context.Context, dbtx db.DBTX, limit int32) ([]NotificationJob, error) {
	rows, err := dbtx.Query(ctx, claimDueJobsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var job NotificationJob
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.RunAt, &job.Attempts); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return jobs, nil
}

const markJobDoneSQL = `
UPDATE notification_jobs
SET status = 'done', last_error = NULL, updated_at = now()
WHERE id = $1`

func (r *NotificationRepository) MarkDone(ctx context.Context, dbtx db.DBTX, jobID uuid.UUID) error {
	if _, err := dbtx.Exec(ctx, markJobDoneSQL, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job done", err)
	}
	return nil
}

// MarkFailed requeues with a delay until the attempt budget runs out, then
// parks the job as dead.
const markJobFailedSQL = `
UPDATE notification_jobs
SET status = CASE WHEN attempts >= $3 THEN 'dead' ELSE 'queued' END,
    run_at = CASE WHEN attempts >= $3 THEN run_at ELSE now() + make_interval(secs => $4) END,
    last_error = $2,
    updated_at = now()
WHERE id = $1`

func (r *NotificationRepository) MarkFailed(ctx context.Context, dbtx db.DBTX, jobID uuid.UUID, lastError string, maxAttempts int32, retryDelay time.Duration) error {
	if _, err := dbtx.Exec(ctx, markJobFailedSQL, jobID, lastError, maxAttempts, retryDelay.Seconds()); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
