package dto

import (
	"time"

	"github.com/google/uuid"

	"talent-sonar/internal/domain/job"
)

type CompanyContextResponse struct {
	Industry           string `json:"industry,omitempty"`
	CompanySize        string `json:"company_size,omitempty"`
	ReportingStructure string `json:"reporting_structure,omitempty"`
	RoleContextNotes   string `json:"role_context_notes,omitempty"`
}

type JobResponse struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Department     string                  `json:"department"`
	Location       string                  `json:"location"`
	Description    string                  `json:"description"`
	RequiredSkills []string                `json:"required_skills"`
	PostedDate     string                  `json:"posted_date"`
	Status         string                  `json:"status"`
	CompanyContext *CompanyContextResponse `json:"company_context,omitempty"`
}

type CreatedJobResponse struct {
	Job     JobResponse           `json:"job"`
	Matches JobMatchStatsResponse `json:"matches"`
}

type JobMatchStatsResponse struct {
	Strong int `json:"strong"`
	Good   int `json:"good"`
	Total  int `json:"total"`
}

func FromJob(j job.Job) JobResponse {
	out := JobResponse{
		ID:             j.ID,
		Title:          j.Title,
		Department:     j.Department,
		Location:       j.Location,
		Description:    j.Description,
		RequiredSkills: j.RequiredSkills,
		Status:         string(j.Status),
	}
	if out.RequiredSkills == nil {
		out.RequiredSkills = []string{}
	}
	if !j.PostedAt.IsZero() {
		out.PostedDate = j.PostedAt.UTC().Format(time.RFC3339)
	}
	if cc := j.CompanyContext; cc != nil {
		out.CompanyContext = &CompanyContextResponse{
			Industry:           cc.Industry,
			CompanySize:        cc.CompanySize,
			ReportingStructure: cc.ReportingStructure,
			RoleContextNotes:   cc.RoleContextNotes,
		}
	}
	return out
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
