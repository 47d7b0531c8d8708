package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
	"talent-sonar/internal/repository"
)

func TestJobUsecase_CreateJob_EmptyTitle(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{}, &mockCandidateRepo{}, &mockScoreRepo{}, nil, nil)
	_, err := uc.CreateJob(context.Background(), CreateJobParams{Title: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_CreateJob_ScoresExistingPool(t *testing.T) {
	pool := []candidate.Candidate{
		{ID: uuid.New(), Type: candidate.TypeUploaded, Name: "A", Skills: []string{"Go", "PostgreSQL"}},
		{ID: uuid.New(), Type: candidate.TypeInternal, Name: "B", Skills: []string{"Figma"}},
	}
	jobs := &mockJobRepo{}
	scores := &mockScoreRepo{}
	cache := &mockCache{}
	uc := NewJobUsecase(jobs, &mockCandidateRepo{candidates: pool}, scores, cache, nil)

	created, err := uc.CreateJob(context.Background(), CreateJobParams{
		Title:          "Backend Engineer",
		Department:     "Engineering",
		RequiredSkills: []string{"Go", "PostgreSQL"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Job.Status != job.StatusOpen {
		t.Fatalf("expected default status open, got %q", created.Job.Status)
	}
	if created.Stats.Total != 2 {
		t.Fatalf("expected total 2, got %d", created.Stats.Total)
	}
	// Full overlap scores 90, no overlap floors at 15.
	if created.Stats.Strong != 1 || created.Stats.Good != 0 {
		t.Fatalf("unexpected stats: %+v", created.Stats)
	}
	if len(scores.upserts) != 2 {
		t.Fatalf("expected 2 score upserts, got %d", len(scores.upserts))
	}
	for _, up := range scores.upserts {
		if up.Provenance != repository.ProvenanceHeuristic {
			t.Fatalf("expected heuristic provenance, got %q", up.Provenance)
		}
		if up.JobID != created.Job.ID {
			t.Fatalf("score keyed by wrong job")
		}
	}
	if cache.invalidated == 0 {
		t.Fatalf("expected cache invalidation")
	}
}

func TestJobUsecase_CreateJob_EmptyPool(t *testing.T) {
	scores := &mockScoreRepo{}
	uc := NewJobUsecase(&mockJobRepo{}, &mockCandidateRepo{}, scores, nil, nil)

	created, err := uc.CreateJob(context.Background(), CreateJobParams{Title: "Designer"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Stats.Total != 0 || created.Stats.Strong != 0 {
		t.Fatalf("expected zero stats, got %+v", created.Stats)
	}
	if len(scores.upserts) != 0 {
		t.Fatalf("expected no score writes, got %d", len(scores.upserts))
	}
}

func TestJobUsecase_UpdateStatus_Invalid(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{}, &mockCandidateRepo{}, &mockScoreRepo{}, nil, nil)
	_, err := uc.UpdateStatus(context.Background(), uuid.New(), job.Status("archived"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobUsecase_UpdateStatus_NotFound(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepo{}, &mockCandidateRepo{}, &mockScoreRepo{}, nil, nil)
	_, err := uc.UpdateStatus(context.Background(), uuid.New(), job.StatusClosed)
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobUsecase_UpdateStatus_KeepsScores(t *testing.T) {
	j := job.Job{ID: uuid.New(), Title: "Backend Engineer", Status: job.StatusOpen}
	jobs := &mockJobRepo{jobs: []job.Job{j}}
	scores := &mockScoreRepo{}
	uc := NewJobUsecase(jobs, &mockCandidateRepo{}, scores, nil, nil)

	updated, err := uc.UpdateStatus(context.Background(), j.ID, job.StatusOnHold)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != job.StatusOnHold {
		t.Fatalf("expected on hold, got %q", updated.Status)
	}
	if len(scores.upserts) != 0 {
		t.Fatalf("status change must not touch scores")
	}
}
