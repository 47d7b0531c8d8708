package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-sonar/internal/delivery/http/dto"
	"talent-sonar/internal/delivery/http/middleware"
	"talent-sonar/internal/domain/job"
	"talent-sonar/internal/pkg/response"
	"talent-sonar/internal/repository"
	"talent-sonar/internal/usecase"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title          string                 `json:"title"`
	Department     string                 `json:"department"`
	Location       string                 `json:"location"`
	Description    string                 `json:"description"`
	RequiredSkills []string               `json:"required_skills"`
	Status         string                 `json:"status"`
	CompanyContext *companyContextRequest `json:"company_context"`
}

type companyContextRequest struct {
	Industry           string `json:"industry"`
	CompanySize        string `json:"company_size"`
	ReportingStructure string `json:"reporting_structure"`
	RoleContextNotes   string `json:"role_context_notes"`
}

type updateJobStatusRequest struct {
	Status string `json:"status"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.HandleCreateJob)
	r.Get("/", h.HandleListJobs)
	r.Get("/:id", h.HandleGetJob)
	r.Patch("/:id/status", h.HandleUpdateStatus)
}

func (h *JobHandler) HandleCreateJob(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	params := usecase.CreateJobParams{
		Title:          req.Title,
		Department:     req.Department,
		Location:       req.Location,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Status:         job.Status(req.Status),
	}
	if cc := req.CompanyContext; cc != nil {
		params.CompanyContext = &job.CompanyContext{
			Industry:           cc.Industry,
			CompanySize:        cc.CompanySize,
			ReportingStructure: cc.ReportingStructure,
			RoleContextNotes:   cc.RoleContextNotes,
		}
	}

	created, err := h.uc.CreateJob(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.CreatedJobResponse{
		Job: dto.FromJob(created.Job),
		Matches: dto.JobMatchStatsResponse{
			Strong: created.Stats.Strong,
			Good:   created.Stats.Good,
			Total:  created.Stats.Total,
		},
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *JobHandler) HandleListJobs(c fiber.Ctx) error {
	filter := repository.JobFilter{
		Title:      strings.TrimSpace(c.Query("title")),
		Department: strings.TrimSpace(c.Query("department")),
		Status:     job.Status(strings.TrimSpace(c.Query("status"))),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status filter", nil, nil)
	}

	jobs, err := h.uc.ListJobs(c.Context(), filter)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(jobs))
}

func (h *JobHandler) HandleGetJob(c fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.GetJob(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobHandler) HandleUpdateStatus(c fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateJobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.uc.UpdateStatus(c.Context(), jobID, job.Status(req.Status))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func parseIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

func mapUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrAnalyzerDisabled):
		return middleware.NewAppError(fiber.StatusConflict, "AI analysis is not configured", nil, err)
	default:
		return err
	}
}
