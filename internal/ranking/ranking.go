package ranking

import (
	"sort"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/scoring"
)

type Mode string

const (
	ModeAll      Mode = "all"
	ModeBest     Mode = "best"
	ModeInternal Mode = "internal"
	ModePast     Mode = "past"
	ModeUploaded Mode = "uploaded"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeAll, ModeBest, ModeInternal, ModePast, ModeUploaded:
		return true
	}
	return false
}

const (
	// BestMatchesLimit truncates the cross-pool view.
	BestMatchesLimit = 15

	// BatchAnalysisLimit is the fixed size of the "deep analysis"
	// selection, always taken from the cross-pool order.
	BatchAnalysisLimit = 10
)

// TierCounts partitions a candidate pool by stored score for one job.
type TierCounts struct {
	Strong int
	Good   int
	Other  int
	Total  int
}

// RankForJob sorts candidates descending by their stored score for the
// given job. Missing score entries count as 0 and ties keep their
// original relative order. ModeBest merges all pools and truncates to
// the top 15; the per-variant modes restrict to one pool without
// truncation.
func RankForJob(jobID uuid.UUID, candidates []candidate.Candidate, mode Mode) []candidate.Candidate {
	pool := candidates
	switch mode {
	case ModeInternal:
		pool = filterByType(candidates, candidate.TypeInternal)
	case ModePast:
		pool = filterByType(candidates, candidate.TypePast)
	case ModeUploaded:
		pool = filterByType(candidates, candidate.TypeUploaded)
	}

	out := append([]candidate.Candidate(nil), pool...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScoreFor(jobID) > out[j].ScoreFor(jobID)
	})

	if mode == ModeBest && len(out) > BestMatchesLimit {
		out = out[:BestMatchesLimit]
	}
	return out
}

// TopForBatchAnalysis selects the candidates sent to the AI analyzer in
// a batch run: the top 10 of the cross-pool order, regardless of which
// view the caller has active.
func TopForBatchAnalysis(jobID uuid.UUID, candidates []candidate.Candidate) []candidate.Candidate {
	out := RankForJob(jobID, candidates, ModeAll)
	if len(out) > BatchAnalysisLimit {
		out = out[:BatchAnalysisLimit]
	}
	return out
}

// CountTiers buckets stored scores for a job into strong / good /
// other. The three buckets always partition the pool.
func CountTiers(jobID uuid.UUID, candidates []candidate.Candidate) TierCounts {
	counts := TierCounts{Total: len(candidates)}
	for _, c := range candidates {
		score := c.ScoreFor(jobID)
		switch {
		case score >= scoring.StrongThreshold:
			counts.Strong++
		case score >= scoring.GoodThreshold:
			counts.Good++
		default:
			counts.Other++
		}
	}
	return counts
}

func filterByType(candidates []candidate.Candidate, t candidate.Type) []candidate.Candidate {
	out := make([]candidate.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}
