package dto

import (
	"talent-sonar/internal/ranking"
	"talent-sonar/internal/usecase"
)

type TierCountsResponse struct {
	Strong int `json:"strong"`
	Good   int `json:"good"`
	Other  int `json:"other"`
	Total  int `json:"total"`
}

type RankedCandidatesResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Tiers      TierCountsResponse  `json:"tiers"`
}

func FromRankedView(view usecase.RankedView) RankedCandidatesResponse {
	return RankedCandidatesResponse{
		Candidates: FromCandidates(view.Candidates),
		Tiers: TierCountsResponse{
			Strong: view.Tiers.Strong,
			Good:   view.Tiers.Good,
			Other:  view.Tiers.Other,
			Total:  view.Tiers.Total,
		},
	}
}

type SkillCountResponse struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type DepartmentInsightResponse struct {
	Department string               `json:"department"`
	TopSkills  []SkillCountResponse `json:"top_skills"`
}

func FromInsights(insights []ranking.DepartmentInsight) []DepartmentInsightResponse {
	out := make([]DepartmentInsightResponse, 0, len(insights))
	for _, in := range insights {
		skills := make([]SkillCountResponse, 0, len(in.TopSkills))
		for _, s := range in.TopSkills {
			skills = append(skills, SkillCountResponse{Skill: s.Skill, Count: s.Count})
		}
		out = append(out, DepartmentInsightResponse{Department: in.Department, TopSkills: skills})
	}
	return out
}

type RecommendedJobResponse struct {
	Job   JobResponse `json:"job"`
	Score float64     `json:"score"`
}

func FromRecommendations(recs []ranking.RecommendedJob) []RecommendedJobResponse {
	out := make([]RecommendedJobResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendedJobResponse{Job: FromJob(r.Job), Score: r.Score})
	}
	return out
}
