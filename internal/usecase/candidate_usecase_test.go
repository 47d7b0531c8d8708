package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"talent-sonar/internal/config"
	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
	"talent-sonar/internal/repository"
)

func TestCandidateUsecase_Ingest_EmptyBatch(t *testing.T) {
	uc := NewCandidateUsecase(&mockCandidateRepo{}, &mockJobRepo{}, &mockScoreRepo{}, nil, config.ScoringConfig{}, nil)
	_, err := uc.Ingest(context.Background(), nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCandidateUsecase_Ingest_ScoresAgainstAllJobs(t *testing.T) {
	j1 := job.Job{ID: uuid.New(), Title: "Backend", RequiredSkills: []string{"Go", "PostgreSQL"}, Status: job.StatusOpen}
	j2 := job.Job{ID: uuid.New(), Title: "Frontend", RequiredSkills: []string{"React"}, Status: job.StatusOpen}
	candRepo := &mockCandidateRepo{}
	scores := &mockScoreRepo{}
	uc := NewCandidateUsecase(candRepo, &mockJobRepo{jobs: []job.Job{j1, j2}}, scores, nil, config.ScoringConfig{}, nil)

	res, err := uc.Ingest(context.Background(), []CandidateInput{
		{Type: candidate.TypeUploaded, Name: "Casey", Skills: []string{"Go", "PostgreSQL"}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(res.Candidates))
	}
	c := res.Candidates[0]
	if c.ScoreFor(j1.ID) != 90 {
		t.Fatalf("expected 90 for full overlap, got %d", c.ScoreFor(j1.ID))
	}
	if c.ScoreFor(j2.ID) != 15 {
		t.Fatalf("expected 15 for no overlap, got %d", c.ScoreFor(j2.ID))
	}
	// Best score lands in the strong tier.
	if res.Stats.StrongMatch != 1 || res.Stats.GoodMatch != 0 {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
	if len(scores.upserts) != 2 {
		t.Fatalf("expected 2 score rows, got %d", len(scores.upserts))
	}
}

func TestCandidateUsecase_Ingest_NoJobsYet(t *testing.T) {
	scores := &mockScoreRepo{}
	uc := NewCandidateUsecase(&mockCandidateRepo{}, &mockJobRepo{}, scores, nil, config.ScoringConfig{}, nil)

	res, err := uc.Ingest(context.Background(), []CandidateInput{
		{Type: candidate.TypeUploaded, Name: "Casey", Skills: []string{"Go"}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Stats.StrongMatch != 0 || res.Stats.GoodMatch != 0 {
		t.Fatalf("expected zero stats with no jobs, got %+v", res.Stats)
	}
	if len(scores.upserts) != 0 {
		t.Fatalf("expected no score rows, got %d", len(scores.upserts))
	}
}

func TestCandidateUsecase_Ingest_InvalidType(t *testing.T) {
	uc := NewCandidateUsecase(&mockCandidateRepo{}, &mockJobRepo{}, &mockScoreRepo{}, nil, config.ScoringConfig{}, nil)
	_, err := uc.Ingest(context.Background(), []CandidateInput{{Type: "contractor", Name: "X"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCandidateUsecase_Update_DefaultKeepsScores(t *testing.T) {
	c := candidate.Candidate{ID: uuid.New(), Type: candidate.TypeUploaded, Name: "Casey", Skills: []string{"Go"}}
	candRepo := &mockCandidateRepo{candidates: []candidate.Candidate{c}}
	scores := &mockScoreRepo{}
	uc := NewCandidateUsecase(candRepo, &mockJobRepo{}, scores, nil, config.ScoringConfig{RescoreOnEdit: false}, nil)

	if _, err := uc.UpdateCandidate(context.Background(), c.ID, repository.CandidateUpdate{Skills: []string{"Rust"}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(scores.upserts) != 0 {
		t.Fatalf("edit must not re-score by default")
	}
}

func TestCandidateUsecase_Update_RescorePolicy(t *testing.T) {
	j := job.Job{ID: uuid.New(), Title: "Backend", RequiredSkills: []string{"Rust"}, Status: job.StatusOpen}
	c := candidate.Candidate{ID: uuid.New(), Type: candidate.TypeUploaded, Name: "Casey", Skills: []string{"Go"}}
	candRepo := &mockCandidateRepo{candidates: []candidate.Candidate{c}}
	scores := &mockScoreRepo{}
	uc := NewCandidateUsecase(candRepo, &mockJobRepo{jobs: []job.Job{j}}, scores, nil, config.ScoringConfig{RescoreOnEdit: true}, nil)

	updated, err := uc.UpdateCandidate(context.Background(), c.ID, repository.CandidateUpdate{Skills: []string{"Rust"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.ScoreFor(j.ID) != 90 {
		t.Fatalf("expected rescored 90, got %d", updated.ScoreFor(j.ID))
	}
	if len(scores.upserts) != 1 {
		t.Fatalf("expected 1 score row, got %d", len(scores.upserts))
	}
}

func TestCandidateUsecase_Update_NotFound(t *testing.T) {
	uc := NewCandidateUsecase(&mockCandidateRepo{}, &mockJobRepo{}, &mockScoreRepo{}, nil, config.ScoringConfig{}, nil)
	_, err := uc.UpdateCandidate(context.Background(), uuid.New(), repository.CandidateUpdate{})
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestCandidateUsecase_RecommendJobs_OpenOnly(t *testing.T) {
	open := job.Job{ID: uuid.New(), Title: "Backend", RequiredSkills: []string{"Go", "PostgreSQL"}, Status: job.StatusOpen}
	closed := job.Job{ID: uuid.New(), Title: "Legacy", RequiredSkills: []string{"Go"}, Status: job.StatusClosed}
	c := candidate.Candidate{ID: uuid.New(), Type: candidate.TypeUploaded, Name: "Casey", Skills: []string{"Go"}}
	uc := NewCandidateUsecase(
		&mockCandidateRepo{candidates: []candidate.Candidate{c}},
		&mockJobRepo{jobs: []job.Job{open, closed}},
		&mockScoreRepo{}, nil, config.ScoringConfig{}, nil,
	)

	recs, err := uc.RecommendJobs(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Job.ID != open.ID {
		t.Fatalf("closed job must not be recommended")
	}
}
