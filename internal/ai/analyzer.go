package ai

import (
	"context"

	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/domain/job"
)

// FitAnalysis is the authoritative assessment returned by the external
// model. MatchScore and MatchRationale overwrite the heuristic entry
// for the pair; the richer sub-fields are stored and forwarded but
// never interpreted locally.
type FitAnalysis struct {
	MatchScore     int              `json:"matchScore"`
	MatchRationale string           `json:"matchRationale"`
	Strengths      []string         `json:"strengths,omitempty"`
	Gaps           []string         `json:"gaps,omitempty"`
	Dimensions     []DimensionScore `json:"dimensions,omitempty"`
	HiddenGem      bool             `json:"hiddenGem,omitempty"`
	Raw            string           `json:"-"`
}

type DimensionScore struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

// Analyzer is the contract with the external model service. Calls are
// slow, cost money and may fail; callers must never retry silently or
// invoke them speculatively.
type Analyzer interface {
	AnalyzeFit(ctx context.Context, j job.Job, c candidate.Candidate) (*FitAnalysis, error)
}
