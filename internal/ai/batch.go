package ai

import (
	"context"
	"time"

	"go.uber.org/zap"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
)

// DefaultBatchDelay spaces successive model calls to respect the
// provider rate limit. It is a policy knob, not a correctness
// requirement; zero disables the pause.
const DefaultBatchDelay = 500 * time.Millisecond

// ItemFunc receives each completed analysis. A nil analysis with a
// non-nil error marks a per-item failure; the batch continues either
// way. Each invocation is an independent merge, so abandoning the
// batch mid-flight leaves already-delivered results valid.
type ItemFunc func(c candidate.Candidate, res *FitAnalysis, err error)

type BatchResult struct {
	Succeeded int
	Failed    int
	Total     int
}

// BatchRunner drives a sequence of fit analyses one at a time. Calls
// are never issued concurrently and never retried.
type BatchRunner struct {
	analyzer Analyzer
	delay    time.Duration
	logger   *zap.Logger
}

func NewBatchRunner(analyzer Analyzer, delay time.Duration, logger *zap.Logger) *BatchRunner {
	if delay < 0 {
		delay = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchRunner{analyzer: analyzer, delay: delay, logger: logger}
}

// Run analyzes each candidate against the job in order. Context
// cancellation stops the loop after the in-flight item completes; the
// partial tally is returned alongside ctx.Err().
func (r *BatchRunner) Run(ctx context.Context, j job.Job, candidates []candidate.Candidate, onItem ItemFunc) (BatchResult, error) {
	result := BatchResult{Total: len(candidates)}

	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		res, err := r.analyzer.AnalyzeFit(ctx, j, c)
		if err != nil {
			result.Failed++
			r.logger.Warn("batch fit analysis item failed",
				zap.String("job_id", j.ID.String()),
				zap.String("candidate_id", c.ID.String()),
				zap.Error(err),
			)
		} else {
			result.Succeeded++
		}

		if onItem != nil {
			onItem(c, res, err)
		}

		if r.delay > 0 && i < len(candidates)-1 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(r.delay):
			}
		}
	}

	r.logger.Info("batch fit analysis complete",
		zap.String("job_id", j.ID.String()),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}
