package repository

import (
	"context"

	"np-reserve/internal/notify"
)

type NotificationJobRepository struct {
	db DBTX
}

func NewNotificationJobRepository(db DBTX) *NotificationJobRepository {
	return &NotificationJobRepository{db: db}
}

func (r *NotificationJobRepository) WithTx(tx DBTX) *NotificationJobRepository {
	return &NotificationJobRepository{db: tx}
}

// Enqueue writes jobs in the same transaction as the status change that
// produced them, so a notification is never lost nor sent for a rolled-back
// transition.
func (r *NotificationJobRepository) Enqueue(ctx context.Context, jobs []notify.Job) error {
	for _, job := range jobs {
		_, err := r.db.Exec(ctx, `
			INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			job.ID, job.Kind, job.Topic, job.Payload, job.RunAt, notify.JobPending,
		)
		if err != nil {
			return wrapQueryErr("failed to enqueue notification job", err)
		}
	}
	return nil
}

// ListPending returns due jobs, oldest first, for an external dispatcher.
func (r *NotificationJobRepository) ListPending(ctx context.Context, limit int) ([]notify.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, topic, payload, run_at
		FROM notification_jobs
		WHERE status = $1 AND run_at <= now()
		ORDER BY run_at ASC
		LIMIT $2`,
		notify.JobPending, limit,
	)
	if err != nil {
		return nil, wrapQueryErr("failed to list pending jobs", err)
	}
	defer rows.Close()

	var out []notify.Job
	for rows.Next() {
		var job notify.Job
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.RunAt); err != nil {
			return nil, wrapQueryErr("failed to scan notification job", err)
		}
		out = append(out, job)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr("failed to iterate notification jobs", err)
	}
	return out, nil
}
