package dto

import (
	"github.com/google/uuid"

	"talent-sonar/internal/domain/candidate"
)

type InternalProfileResponse struct {
	CurrentRole       string `json:"current_role"`
	Department        string `json:"department"`
	ExperienceYears   int    `json:"experience_years"`
	PerformanceRating int    `json:"performance_rating"`
	CareerAspirations string `json:"career_aspirations,omitempty"`
	DevelopmentGoals  string `json:"development_goals,omitempty"`
	LearningAgility   int    `json:"learning_agility,omitempty"`
}

type PastProfileResponse struct {
	PreviousRoleAppliedFor string `json:"previous_role_applied_for"`
	LastContactDate        string `json:"last_contact_date,omitempty"`
	Notes                  string `json:"notes,omitempty"`
}

type UploadedProfileResponse struct {
	Summary         string `json:"summary,omitempty"`
	ExperienceYears int    `json:"experience_years,omitempty"`
	FileName        string `json:"file_name,omitempty"`
}

type CandidateResponse struct {
	ID     uuid.UUID `json:"id"`
	Type   string    `json:"type"`
	Name   string    `json:"name"`
	Email  string    `json:"email,omitempty"`
	Skills []string  `json:"skills"`

	Internal *InternalProfileResponse `json:"internal,omitempty"`
	Past     *PastProfileResponse     `json:"past,omitempty"`
	Uploaded *UploadedProfileResponse `json:"uploaded,omitempty"`

	MatchScores     map[string]int    `json:"match_scores"`
	MatchRationales map[string]string `json:"match_rationales"`
	Feedback        map[string]string `json:"feedback"`

	ProfileStatus    string `json:"profile_status"`
	EmploymentStatus string `json:"employment_status"`
	IsHiddenGem      bool   `json:"is_hidden_gem"`
}

func FromCandidate(c candidate.Candidate) CandidateResponse {
	out := CandidateResponse{
		ID:               c.ID,
		Type:             string(c.Type),
		Name:             c.Name,
		Email:            c.Email,
		Skills:           c.Skills,
		MatchScores:      make(map[string]int, len(c.MatchScores)),
		MatchRationales:  make(map[string]string, len(c.MatchRationales)),
		Feedback:         make(map[string]string, len(c.Feedback)),
		ProfileStatus:    string(c.ProfileStatus),
		EmploymentStatus: string(c.EmploymentStatus),
		IsHiddenGem:      c.IsHiddenGem,
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	for jobID, score := range c.MatchScores {
		out.MatchScores[jobID.String()] = score
	}
	for jobID, rationale := range c.MatchRationales {
		out.MatchRationales[jobID.String()] = rationale
	}
	for jobID, value := range c.Feedback {
		out.Feedback[jobID.String()] = string(value)
	}

	if p := c.Internal; p != nil {
		out.Internal = &InternalProfileResponse{
			CurrentRole:       p.CurrentRole,
			Department:        p.Department,
			ExperienceYears:   p.ExperienceYears,
			PerformanceRating: p.PerformanceRating,
			CareerAspirations: p.CareerAspirations,
			DevelopmentGoals:  p.DevelopmentGoals,
			LearningAgility:   p.LearningAgility,
		}
	}
	if p := c.Past; p != nil {
		out.Past = &PastProfileResponse{
			PreviousRoleAppliedFor: p.PreviousRoleAppliedFor,
			LastContactDate:        p.LastContactDate,
			Notes:                  p.Notes,
		}
	}
	if p := c.Uploaded; p != nil {
		out.Uploaded = &UploadedProfileResponse{
			Summary:         p.Summary,
			ExperienceYears: p.ExperienceYears,
			FileName:        p.FileName,
		}
	}

	return out
}

func FromCandidates(candidates []candidate.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, FromCandidate(c))
	}
	return out
}

type CandidateMatchStatsResponse struct {
	StrongMatch int `json:"strong_match"`
	GoodMatch   int `json:"good_match"`
}

type IngestResponse struct {
	Candidates []CandidateResponse         `json:"candidates"`
	Matches    CandidateMatchStatsResponse `json:"matches"`
}
