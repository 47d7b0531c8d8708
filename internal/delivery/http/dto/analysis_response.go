package dto

import (
	"github.com/google/uuid"

	"talent-sonar/internal/ai"
	"talent-sonar/internal/usecase"
)

type DimensionScoreResponse struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

type FitAnalysisResponse struct {
	MatchScore     int                      `json:"match_score"`
	MatchRationale string                   `json:"match_rationale"`
	Strengths      []string                 `json:"strengths"`
	Gaps           []string                 `json:"gaps"`
	Dimensions     []DimensionScoreResponse `json:"dimensions"`
	HiddenGem      bool                     `json:"hidden_gem"`
}

func FromFitAnalysis(fit *ai.FitAnalysis) FitAnalysisResponse {
	out := FitAnalysisResponse{
		MatchScore:     fit.MatchScore,
		MatchRationale: fit.MatchRationale,
		Strengths:      fit.Strengths,
		Gaps:           fit.Gaps,
		Dimensions:     make([]DimensionScoreResponse, 0, len(fit.Dimensions)),
		HiddenGem:      fit.HiddenGem,
	}
	if out.Strengths == nil {
		out.Strengths = []string{}
	}
	if out.Gaps == nil {
		out.Gaps = []string{}
	}
	for _, d := range fit.Dimensions {
		out.Dimensions = append(out.Dimensions, DimensionScoreResponse{
			Dimension: d.Dimension,
			Score:     d.Score,
			Rationale: d.Rationale,
		})
	}
	return out
}

type BatchAnalysisResponse struct {
	JobID     uuid.UUID `json:"job_id"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Total     int       `json:"total"`
}

func FromBatchSummary(s usecase.BatchAnalysisSummary) BatchAnalysisResponse {
	return BatchAnalysisResponse{
		JobID:     s.JobID,
		Succeeded: s.Succeeded,
		Failed:    s.Failed,
		Total:     s.Total,
	}
}
