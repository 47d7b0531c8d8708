package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
	"talent-sonar/internal/ranking"
)

func TestRankingUsecase_UnknownJob(t *testing.T) {
	uc := NewRankingUsecase(&mockJobRepo{}, &mockCandidateRepo{}, nil, nil)
	_, err := uc.RankedCandidates(context.Background(), uuid.New(), ranking.ModeAll)
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestRankingUsecase_InvalidMode(t *testing.T) {
	uc := NewRankingUsecase(&mockJobRepo{}, &mockCandidateRepo{}, nil, nil)
	_, err := uc.RankedCandidates(context.Background(), uuid.New(), ranking.Mode("bogus"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRankingUsecase_TiersCoverFullPool(t *testing.T) {
	j := job.Job{ID: uuid.New(), Title: "Backend"}
	pool := []candidate.Candidate{
		{ID: uuid.New(), Type: candidate.TypeInternal, MatchScores: map[uuid.UUID]int{j.ID: 85}},
		{ID: uuid.New(), Type: candidate.TypeUploaded, MatchScores: map[uuid.UUID]int{j.ID: 55}},
		{ID: uuid.New(), Type: candidate.TypeUploaded, MatchScores: map[uuid.UUID]int{j.ID: 15}},
	}
	uc := NewRankingUsecase(&mockJobRepo{jobs: []job.Job{j}}, &mockCandidateRepo{candidates: pool}, nil, nil)

	// Restricting the view to one pool must not shrink the tier counts.
	view, err := uc.RankedCandidates(context.Background(), j.ID, ranking.ModeInternal)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(view.Candidates) != 1 {
		t.Fatalf("expected 1 internal candidate, got %d", len(view.Candidates))
	}
	if view.Tiers.Total != 3 || view.Tiers.Strong != 1 || view.Tiers.Good != 1 || view.Tiers.Other != 1 {
		t.Fatalf("unexpected tiers: %+v", view.Tiers)
	}
}

func TestRankingUsecase_DescendingOrder(t *testing.T) {
	j := job.Job{ID: uuid.New(), Title: "Backend"}
	low := candidate.Candidate{ID: uuid.New(), Type: candidate.TypeUploaded, MatchScores: map[uuid.UUID]int{j.ID: 20}}
	high := candidate.Candidate{ID: uuid.New(), Type: candidate.TypeUploaded, MatchScores: map[uuid.UUID]int{j.ID: 80}}
	uc := NewRankingUsecase(&mockJobRepo{jobs: []job.Job{j}}, &mockCandidateRepo{candidates: []candidate.Candidate{low, high}}, nil, nil)

	view, err := uc.RankedCandidates(context.Background(), j.ID, ranking.ModeAll)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.Candidates[0].ID != high.ID {
		t.Fatalf("expected highest score first")
	}
}

func TestRankingUsecase_DepartmentInsights(t *testing.T) {
	jobs := []job.Job{
		{ID: uuid.New(), Department: "Technology", RequiredSkills: []string{"Go", "AWS"}},
		{ID: uuid.New(), Department: "Technology", RequiredSkills: []string{"AWS"}},
		{ID: uuid.New(), Department: "", RequiredSkills: []string{"Excel"}},
	}
	uc := NewRankingUsecase(&mockJobRepo{jobs: jobs}, &mockCandidateRepo{}, nil, nil)

	insights, err := uc.DepartmentInsights(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("departmentless jobs must be excluded, got %d departments", len(insights))
	}
	if insights[0].TopSkills[0].Skill != "AWS" || insights[0].TopSkills[0].Count != 2 {
		t.Fatalf("unexpected top skill: %+v", insights[0].TopSkills)
	}
}
