package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
	"talent-sonar/internal/repository"
	"talent-sonar/internal/scoring"
	"talent-sonar/internal/ws"
)

type CreateJobParams struct {
	Title          string
	Department     string
	Location       string
	Description    string
	RequiredSkills []string
	Status         job.Status
	CompanyContext *job.CompanyContext
}

// CreatedJob pairs the stored requisition with the instant pool
// summary the dashboard shows right after posting.
type CreatedJob struct {
	Job   job.Job
	Stats scoring.JobMatchStats
}

type JobUsecase interface {
	CreateJob(ctx context.Context, params CreateJobParams) (CreatedJob, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListJobs(ctx context.Context, filter repository.JobFilter) ([]job.Job, error)
	UpdateStatus(ctx context.Context, jobID uuid.UUID, status job.Status) (job.Job, error)
}

type Jobs struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	scores     repository.MatchScoreRepository
	cache      ScoreCache
	logger     *zap.Logger
}

func NewJobUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository, scores repository.MatchScoreRepository, cache ScoreCache, logger *zap.Logger) *Jobs {
	return &Jobs{jobs: jobs, candidates: candidates, scores: scores, cache: cache, logger: logger}
}

// CreateJob stores the requisition and immediately scores the whole
// existing candidate pool against it, so the list view never shows a
// job without scores. The returned stats describe the pool as it stood
// before this job existed.
func (u *Jobs) CreateJob(ctx context.Context, params CreateJobParams) (CreatedJob, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return CreatedJob{}, ErrInvalidInput
	}
	status := params.Status
	if status == "" {
		status = job.StatusOpen
	}
	if !status.Valid() {
		return CreatedJob{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(params.RequiredSkills))
	for _, s := range params.RequiredSkills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	now := time.Now().UTC()
	j := job.Job{
		ID:             uuid.New(),
		Title:          title,
		Department:     strings.TrimSpace(params.Department),
		Location:       strings.TrimSpace(params.Location),
		Description:    params.Description,
		RequiredSkills: skills,
		PostedAt:       now,
		Status:         status,
		CompanyContext: params.CompanyContext,
		CreatedAt:      now,
	}

	if err := u.jobs.Insert(ctx, j); err != nil {
		return CreatedJob{}, err
	}

	pool, err := u.candidates.ListAll(ctx)
	if err != nil {
		return CreatedJob{}, err
	}

	scored, stats := scoring.ScoreAllForNewJob(j, pool)
	if err := u.persistHeuristicScores(ctx, j.ID, scored); err != nil {
		return CreatedJob{}, err
	}

	u.invalidate(ctx)
	ws.NotifyScoresUpdated(j.ID)

	if u.logger != nil {
		u.logger.Info("job created and pool scored",
			zap.String("job_id", j.ID.String()),
			zap.Int("pool_size", stats.Total),
			zap.Int("strong", stats.Strong),
			zap.Int("good", stats.Good),
		)
	}

	return CreatedJob{Job: j, Stats: stats}, nil
}

func (u *Jobs) GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (u *Jobs) ListJobs(ctx context.Context, filter repository.JobFilter) ([]job.Job, error) {
	return u.jobs.List(ctx, filter)
}

// UpdateStatus flips the requisition lifecycle. Stored scores are kept
// whatever the transition; closed jobs just stop appearing in
// recommendations.
func (u *Jobs) UpdateStatus(ctx context.Context, jobID uuid.UUID, status job.Status) (job.Job, error) {
	if !status.Valid() {
		return job.Job{}, ErrInvalidInput
	}
	if err := u.jobs.UpdateStatus(ctx, jobID, status); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	u.invalidate(ctx)
	return u.GetJob(ctx, jobID)
}

func (u *Jobs) persistHeuristicScores(ctx context.Context, jobID uuid.UUID, scored []candidate.Candidate) error {
	if len(scored) == 0 {
		return nil
	}
	now := time.Now().UTC()
	batch := make([]repository.MatchScoreUpsert, 0, len(scored))
	for _, c := range scored {
		batch = append(batch, repository.MatchScoreUpsert{
			CandidateID: c.ID,
			JobID:       jobID,
			Score:       c.ScoreFor(jobID),
			Rationale:   c.MatchRationales[jobID],
			Provenance:  repository.ProvenanceHeuristic,
			ScoredAt:    now,
		})
	}
	return u.scores.UpsertBatch(ctx, batch)
}

func (u *Jobs) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateScores(ctx); err != nil && u.logger != nil {
		u.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
