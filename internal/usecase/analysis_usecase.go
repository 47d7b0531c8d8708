package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-sonar/internal/ai"
	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/ranking"
	"talent-sonar/internal/repository"
	"talent-sonar/internal/ws"
)

// BatchAnalysisSummary reports one batch run over the top candidates.
// Failures leave the stored heuristic entries for those pairs intact.
type BatchAnalysisSummary struct {
	JobID     uuid.UUID
	Succeeded int
	Failed    int
	Total     int
}

type AnalysisUsecase interface {
	AnalyzeCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*ai.FitAnalysis, error)
	AnalyzeTopCandidates(ctx context.Context, jobID uuid.UUID) (BatchAnalysisSummary, error)
}

type Analysis struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	scores     repository.MatchScoreRepository
	batch      *ai.BatchRunner
	analyzer   ai.Analyzer
	cache      ScoreCache
	logger     *zap.Logger
}

func NewAnalysisUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository, scores repository.MatchScoreRepository, analyzer ai.Analyzer, batch *ai.BatchRunner, cache ScoreCache, logger *zap.Logger) *Analysis {
	return &Analysis{jobs: jobs, candidates: candidates, scores: scores, analyzer: analyzer, batch: batch, cache: cache, logger: logger}
}

// AnalyzeCandidate runs one AI assessment and, on success, overwrites
// the stored heuristic score for the pair. On failure the stored entry
// is untouched and the error is surfaced to the caller; there is no
// silent retry.
func (u *Analysis) AnalyzeCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*ai.FitAnalysis, error) {
	if u.analyzer == nil {
		return nil, ErrAnalyzerDisabled
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, mapJobErr(err)
	}
	c, err := u.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return nil, mapCandidateErr(err)
	}

	res, err := u.analyzer.AnalyzeFit(ctx, j, c)
	if err != nil {
		return nil, err
	}

	if err := u.persistAnalysis(ctx, j.ID, c, res); err != nil {
		return nil, err
	}

	u.invalidate(ctx)
	ws.NotifyScoresUpdated(j.ID)
	return res, nil
}

// AnalyzeTopCandidates runs the sequential batch pass over the top of
// the cross-pool ranking. Per-candidate failures are tallied, not
// fatal; cancellation stops the run after the in-flight call.
func (u *Analysis) AnalyzeTopCandidates(ctx context.Context, jobID uuid.UUID) (BatchAnalysisSummary, error) {
	if u.batch == nil {
		return BatchAnalysisSummary{}, ErrAnalyzerDisabled
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return BatchAnalysisSummary{}, mapJobErr(err)
	}
	pool, err := u.candidates.ListAll(ctx)
	if err != nil {
		return BatchAnalysisSummary{}, err
	}

	top := ranking.TopForBatchAnalysis(j.ID, pool)

	res, runErr := u.batch.Run(ctx, j, top, func(c candidate.Candidate, fit *ai.FitAnalysis, itemErr error) {
		if itemErr != nil || fit == nil {
			return
		}
		if err := u.persistAnalysis(ctx, j.ID, c, fit); err != nil && u.logger != nil {
			u.logger.Warn("persisting analysis failed",
				zap.String("candidate_id", c.ID.String()),
				zap.Error(err),
			)
		}
	})

	summary := BatchAnalysisSummary{
		JobID:     j.ID,
		Succeeded: res.Succeeded,
		Failed:    res.Failed,
		Total:     res.Total,
	}

	if summary.Succeeded > 0 {
		u.invalidate(ctx)
		ws.NotifyScoresUpdated(j.ID)
	}
	return summary, runErr
}

func (u *Analysis) persistAnalysis(ctx context.Context, jobID uuid.UUID, c candidate.Candidate, fit *ai.FitAnalysis) error {
	err := u.scores.Upsert(ctx, repository.MatchScoreUpsert{
		CandidateID: c.ID,
		JobID:       jobID,
		Score:       fit.MatchScore,
		Rationale:   fit.MatchRationale,
		Provenance:  repository.ProvenanceAI,
		ScoredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	if fit.HiddenGem && !c.IsHiddenGem {
		gem := true
		if err := u.candidates.Update(ctx, c.ID, repository.CandidateUpdate{IsHiddenGem: &gem}); err != nil {
			return err
		}
	}
	return nil
}

func (u *Analysis) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.InvalidateScores(ctx); err != nil && u.logger != nil {
		u.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}

func mapJobErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrJobNotFound) {
		return ErrJobNotFound
	}
	return err
}
