package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"talent-sonar/internal/database"
	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/feedback"
)

type FeedbackRepository interface {
	SetValue(ctx context.Context, candidateID, jobID uuid.UUID, value candidate.FeedbackValue) error
	AppendEvent(ctx context.Context, evt feedback.Event) error
}

type PostgresFeedbackRepository struct {
	db database.DB
}

func NewPostgresFeedbackRepository(db database.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) SetValue(ctx context.Context, candidateID, jobID uuid.UUID, value candidate.FeedbackValue) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO feedback (candidate_id, job_id, value, updated_at)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (candidate_id, job_id) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`,
		candidateID, jobID, string(value), time.Now().UTC(),
	)
	return err
}

// AppendEvent is append-only; the ledger is never updated or pruned.
func (r *PostgresFeedbackRepository) AppendEvent(ctx context.Context, evt feedback.Event) error {
	if evt.ID == uuid.Nil {
		evt.ID = uuid.New()
	}
	if evt.RecordedAt.IsZero() {
		evt.RecordedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO feedback_events (id, kind, candidate_id, job_id, judgment, recorded_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		evt.ID, string(evt.Kind), evt.CandidateID, evt.JobID, evt.Judgment, evt.RecordedAt,
	)
	return err
}
