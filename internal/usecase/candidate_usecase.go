package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-sonar/internal/config"
	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/ranking"
	"talent-sonar/internal/repository"
	"talent-sonar/internal/scoring"
	"talent-sonar/internal/ws"
)

// CandidateInput is one record in an ingest batch, typically a parsed
// resume upload or an imported profile.
type CandidateInput struct {
	Type   candidate.Type
	Name   string
	Email  string
	Skills []string

	Internal *candidate.InternalProfile
	Past     *candidate.PastProfile
	Uploaded *candidate.UploadedProfile

	ProfileStatus    candidate.ProfileStatus
	EmploymentStatus candidate.EmploymentStatus
}

// IngestResult carries the stored candidates plus the batch summary
// ("N strong matches found") computed over each candidate's best score.
type IngestResult struct {
	Candidates []candidate.Candidate
	Stats      scoring.CandidateMatchStats
}

type CandidateUsecase interface {
	Ingest(ctx context.Context, inputs []CandidateInput) (IngestResult, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	ListCandidates(ctx context.Context, t candidate.Type) ([]candidate.Candidate, error)
	UpdateCandidate(ctx context.Context, id uuid.UUID, upd repository.CandidateUpdate) (candidate.Candidate, error)
	RecommendJobs(ctx context.Context, id uuid.UUID) ([]ranking.RecommendedJob, error)
}

type Candidates struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	scores     repository.MatchScoreRepository
	cache      ScoreCache
	policy     config.ScoringConfig
	logger     *zap.Logger
}

func NewCandidateUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository, scores repository.MatchScoreRepository, cache ScoreCache, policy config.ScoringConfig, logger *zap.Logger) *Candidates {
	return &Candidates{candidates: candidates, jobs: jobs, scores: scores, cache: cache, policy: policy, logger: logger}
}

// Ingest validates and stores a batch of candidates, scoring each one
// against every known job before the insert so new rows land with a
// complete score map. With no jobs yet, candidates are stored unscored
// and the stats stay zero.
func (u *Candidates) Ingest(ctx context.Context, inputs []CandidateInput) (IngestResult, error) {
	if len(inputs) == 0 {
		return IngestResult{}, ErrInvalidInput
	}

	now := time.Now().UTC()
	batch := make([]candidate.Candidate, 0, len(inputs))
	for _, in := range inputs {
		c, err := buildCandidate(in, now)
		if err != nil {
			return IngestResult{}, err
		}
		batch = append(batch, c)
	}

	jobs, err := u.jobs.List(ctx, repository.JobFilter{})
	if err != nil {
		return IngestResult{}, err
	}

	scored, stats := scoring.ScoreAllForNewCandidates(batch, jobs)

	if err := u.candidates.InsertBatch(ctx, scored); err != nil {
		return IngestResult{}, err
	}
	if err := u.persistScores(ctx, scored, repository.ProvenanceHeuristic); err != nil {
		return IngestResult{}, err
	}

	u.invalidate(ctx)
	ws.NotifyScoresUpdated(uuid.Nil)

	if u.logger != nil {
		u.logger.Info("candidates ingested",
			zap.Int("count", len(scored)),
			zap.Int("strong_match", stats.StrongMatch),
			zap.Int("good_match", stats.GoodMatch),
		)
	}

	return IngestResult{Candidates: scored, Stats: stats}, nil
}

func (u *Candidates) GetCandidate(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	c, err := u.candidates.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}

// ListCandidates returns one pool, or every pool when t is empty.
func (u *Candidates) ListCandidates(ctx context.Context, t candidate.Type) ([]candidate.Candidate, error) {
	if t == "" {
		return u.candidates.ListAll(ctx)
	}
	if !t.Valid() {
		return nil, ErrInvalidInput
	}
	return u.candidates.ListByType(ctx, t)
}

// UpdateCandidate applies a profile edit. Stored match scores are kept
// as-is unless the re-score-on-edit policy is enabled and the edit
// touched the skill list.
func (u *Candidates) UpdateCandidate(ctx context.Context, id uuid.UUID, upd repository.CandidateUpdate) (candidate.Candidate, error) {
	if err := u.candidates.Update(ctx, id, upd); err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}

	if u.policy.RescoreOnEdit && upd.Skills != nil {
		c, err := u.GetCandidate(ctx, id)
		if err != nil {
			return candidate.Candidate{}, err
		}
		jobs, err := u.jobs.List(ctx, repository.JobFilter{})
		if err != nil {
			return candidate.Candidate{}, err
		}
		rescored := scoring.RescoreCandidate(c, jobs)
		if err := u.persistScores(ctx, []candidate.Candidate{rescored}, repository.ProvenanceHeuristic); err != nil {
			return candidate.Candidate{}, err
		}
		u.invalidate(ctx)
		ws.NotifyScoresUpdated(uuid.Nil)
		return rescored, nil
	}

	return u.GetCandidate(ctx, id)
}

// RecommendJobs is the candidate-detail view: open jobs ranked by
// skill overlap, computed on the fly.
func (u *Candidates) RecommendJobs(ctx context.Context, id uuid.UUID) ([]ranking.RecommendedJob, error) {
	c, err := u.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobs.List(ctx, repository.JobFilter{})
	if err != nil {
		return nil, err
	}
	return ranking.RecommendJobsForCandidate(c, jobs), nil
}

func (u *Candidates) persistScores(ctx context.Context, scored []candidate.Candidate, prov repository.Provenance) error {
	now := time.Now().UTC()
	batch := make([]repository.MatchScoreUpsert, 0)
	for _, c := range scored {
		for jobID, score := range c.MatchScores {
			batch = append(batch, repository.MatchScoreUpsert{
				CandidateID: c.ID,
				JobID:       jobID,
				Score:       score,
				Rationale:   c.MatchRationales[jobID],
				Provenance:  prov,
				ScoredAt:    now,
			})
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return u.scores.UpsertBatch(ctx, batch)
}

func (u *Candidates) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateScores(ctx); err != nil && u.logger != nil {
		u.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

func buildCandidate(in CandidateInput, now time.Time) (candidate.Candidate, error) {
	if !in.Type.Valid() {
		return candidate.Candidate{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return candidate.Candidate{}, ErrInvalidInput
	}

	// The variant payload must match the declared type; extra variants
	// are dropped rather than rejected.
	c := candidate.Candidate{
		ID:               uuid.New(),
		Type:             in.Type,
		Name:             name,
		Email:            strings.TrimSpace(in.Email),
		Skills:           cleanSkills(in.Skills),
		ProfileStatus:    in.ProfileStatus,
		EmploymentStatus: in.EmploymentStatus,
		CreatedAt:        now,
	}
	switch in.Type {
	case candidate.TypeInternal:
		c.Internal = in.Internal
	case candidate.TypePast:
		c.Past = in.Past
	case candidate.TypeUploaded:
		c.Uploaded = in.Uploaded
	}

	if c.ProfileStatus == "" {
		c.ProfileStatus = candidate.ProfileComplete
		if len(c.Skills) == 0 {
			c.ProfileStatus = candidate.ProfilePlaceholder
		}
	}
	if c.EmploymentStatus == "" {
		c.EmploymentStatus = candidate.EmploymentAvailable
	}
	return c, nil
}

func cleanSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
