package migration

import (
	"context"
	"errors"

	"talent-sonar/internal/database"
)

// Statements are idempotent so the runner can execute on every boot.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		posted_at TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'open',
		company_industry TEXT,
		company_size TEXT,
		reporting_structure TEXT,
		role_context_notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id UUID PRIMARY KEY,
		type TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		skills TEXT[] NOT NULL DEFAULT '{}',
		profile JSONB NOT NULL DEFAULT '{}',
		profile_status TEXT NOT NULL DEFAULT 'partial',
		employment_status TEXT NOT NULL DEFAULT 'available',
		is_hidden_gem BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS match_scores (
		candidate_id UUID NOT NULL REFERENCES candidates(id),
		job_id UUID NOT NULL REFERENCES jobs(id),
		score INT NOT NULL,
		rationale TEXT NOT NULL,
		provenance TEXT NOT NULL DEFAULT 'heuristic',
		scored_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (candidate_id, job_id)
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		candidate_id UUID NOT NULL REFERENCES candidates(id),
		job_id UUID NOT NULL REFERENCES jobs(id),
		value TEXT NOT NULL DEFAULT 'none',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (candidate_id, job_id)
	)`,
	`CREATE TABLE IF NOT EXISTS feedback_events (
		id UUID PRIMARY KEY,
		kind TEXT NOT NULL,
		candidate_id UUID NOT NULL,
		job_id UUID NOT NULL,
		judgment TEXT NOT NULL,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_match_scores_job ON match_scores (job_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_events_pair ON feedback_events (candidate_id, job_id)`,
}

type Runner struct{}

func (Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
