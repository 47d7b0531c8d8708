package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/ranking"
	"talent-sonar/internal/repository"
)

const rankingCacheTTL = 2 * time.Minute

// RankedView is one rendering of the candidate list for a job: the
// selected pool ordered by stored score, plus the tier summary that is
// always computed over the full pool.
type RankedView struct {
	Candidates []candidate.Candidate
	Tiers      ranking.TierCounts
}

type RankingUsecase interface {
	RankedCandidates(ctx context.Context, jobID uuid.UUID, mode ranking.Mode) (RankedView, error)
	DepartmentInsights(ctx context.Context) ([]ranking.DepartmentInsight, error)
}

type Rankings struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	cache      ScoreCache
	logger     *zap.Logger
}

func NewRankingUsecase(jobs repository.JobRepository, candidates repository.CandidateRepository, cache ScoreCache, logger *zap.Logger) *Rankings {
	return &Rankings{jobs: jobs, candidates: candidates, cache: cache, logger: logger}
}

func (u *Rankings) RankedCandidates(ctx context.Context, jobID uuid.UUID, mode ranking.Mode) (RankedView, error) {
	if mode == "" {
		mode = ranking.ModeAll
	}
	if !mode.Valid() {
		return RankedView{}, ErrInvalidInput
	}

	exists, err := u.jobs.ExistsByID(ctx, jobID)
	if err != nil {
		return RankedView{}, err
	}
	if !exists {
		return RankedView{}, ErrJobNotFound
	}

	key := rankingCacheKey(jobID, string(mode))
	if u.cache != nil {
		var cached RankedView
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	pool, err := u.candidates.ListAll(ctx)
	if err != nil {
		return RankedView{}, err
	}

	view := RankedView{
		Candidates: ranking.RankForJob(jobID, pool, mode),
		Tiers:      ranking.CountTiers(jobID, pool),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, view, rankingCacheTTL); err != nil && u.logger != nil {
			u.logger.Warn("ranking cache write failed", zap.Error(err))
		}
	}
	return view, nil
}

func (u *Rankings) DepartmentInsights(ctx context.Context) ([]ranking.DepartmentInsight, error) {
	key := insightsCacheKey()
	if u.cache != nil {
		var cached []ranking.DepartmentInsight
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.List(ctx, repository.JobFilter{})
	if err != nil {
		return nil, err
	}

	insights := ranking.DepartmentSkillInsights(jobs)
	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, insights, rankingCacheTTL); err != nil && u.logger != nil {
			u.logger.Warn("insights cache write failed", zap.Error(err))
		}
	}
	return insights, nil
}
