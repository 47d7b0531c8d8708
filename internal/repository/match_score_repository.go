package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"talent-sonar/internal/database"
)

type Provenance string

const (
	ProvenanceHeuristic Provenance = "heuristic"
	ProvenanceAI        Provenance = "ai"
)

// MatchScoreUpsert writes score and rationale as one row; the two are
// never persisted separately.
type MatchScoreUpsert struct {
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Score       int
	Rationale   string
	Provenance  Provenance
	ScoredAt    time.Time
}

type MatchScoreRepository interface {
	Upsert(ctx context.Context, m MatchScoreUpsert) error
	UpsertBatch(ctx context.Context, batch []MatchScoreUpsert) error
}

type PostgresMatchScoreRepository struct {
	db database.DB
}

func NewPostgresMatchScoreRepository(db database.DB) *PostgresMatchScoreRepository {
	return &PostgresMatchScoreRepository{db: db}
}

const upsertMatchScoreSQL = `
	INSERT INTO match_scores (candidate_id, job_id, score, rationale, provenance, scored_at)
	VALUES ($1,$2,$3,$4,$5,$6)
	ON CONFLICT (candidate_id, job_id) DO UPDATE SET
		score = EXCLUDED.score,
		rationale = EXCLUDED.rationale,
		provenance = EXCLUDED.provenance,
		scored_at = EXCLUDED.scored_at`

func (r *PostgresMatchScoreRepository) Upsert(ctx context.Context, m MatchScoreUpsert) error {
	if m.CandidateID == uuid.Nil || m.JobID == uuid.Nil {
		return nil
	}
	if m.ScoredAt.IsZero() {
		m.ScoredAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx, upsertMatchScoreSQL,
		m.CandidateID, m.JobID, m.Score, m.Rationale, string(m.Provenance), m.ScoredAt)
	return err
}

// UpsertBatch applies a whole re-score pass in one transaction so
// readers never observe a partially merged score map.
func (r *PostgresMatchScoreRepository) UpsertBatch(ctx context.Context, batch []MatchScoreUpsert) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	for _, m := range batch {
		if m.CandidateID == uuid.Nil || m.JobID == uuid.Nil {
			continue
		}
		if m.ScoredAt.IsZero() {
			m.ScoredAt = now
		}
		if _, err := tx.Exec(ctx, upsertMatchScoreSQL,
			m.CandidateID, m.JobID, m.Score, m.Rationale, string(m.Provenance), m.ScoredAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
