package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-sonar/internal/delivery/http/dto"
	"talent-sonar/internal/delivery/http/middleware"
	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/pkg/response"
	"talent-sonar/internal/repository"
	"talent-sonar/internal/usecase"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

type candidateInputRequest struct {
	Type   string   `json:"type"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`

	Internal *internalProfileRequest `json:"internal"`
	Past     *pastProfileRequest     `json:"past"`
	Uploaded *uploadedProfileRequest `json:"uploaded"`

	ProfileStatus    string `json:"profile_status"`
	EmploymentStatus string `json:"employment_status"`
}

type internalProfileRequest struct {
	CurrentRole       string `json:"current_role"`
	Department        string `json:"department"`
	ExperienceYears   int    `json:"experience_years"`
	PerformanceRating int    `json:"performance_rating"`
	CareerAspirations string `json:"career_aspirations"`
	DevelopmentGoals  string `json:"development_goals"`
	LearningAgility   int    `json:"learning_agility"`
}

type pastProfileRequest struct {
	PreviousRoleAppliedFor string `json:"previous_role_applied_for"`
	LastContactDate        string `json:"last_contact_date"`
	Notes                  string `json:"notes"`
}

type uploadedProfileRequest struct {
	Summary         string `json:"summary"`
	ExperienceYears int    `json:"experience_years"`
	FileName        string `json:"file_name"`
}

type ingestRequest struct {
	Candidates []candidateInputRequest `json:"candidates"`
}

type updateCandidateRequest struct {
	Name             *string  `json:"name"`
	Email            *string  `json:"email"`
	Skills           []string `json:"skills"`
	ProfileStatus    *string  `json:"profile_status"`
	EmploymentStatus *string  `json:"employment_status"`
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.HandleIngest)
	r.Get("/", h.HandleList)
	r.Get("/:id", h.HandleGet)
	r.Patch("/:id", h.HandleUpdate)
	r.Get("/:id/recommended-jobs", h.HandleRecommendedJobs)
}

func (h *CandidateHandler) HandleIngest(c fiber.Ctx) error {
	var req ingestRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	inputs := make([]usecase.CandidateInput, 0, len(req.Candidates))
	for _, in := range req.Candidates {
		inputs = append(inputs, toCandidateInput(in))
	}

	res, err := h.uc.Ingest(c.Context(), inputs)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.IngestResponse{
		Candidates: dto.FromCandidates(res.Candidates),
		Matches: dto.CandidateMatchStatsResponse{
			StrongMatch: res.Stats.StrongMatch,
			GoodMatch:   res.Stats.GoodMatch,
		},
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, out)
}

func (h *CandidateHandler) HandleList(c fiber.Ctx) error {
	t := candidate.Type(strings.TrimSpace(c.Query("type")))

	candidates, err := h.uc.ListCandidates(c.Context(), t)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidates(candidates))
}

func (h *CandidateHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	cand, err := h.uc.GetCandidate(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(cand))
}

func (h *CandidateHandler) HandleUpdate(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	upd := repository.CandidateUpdate{
		Name:   req.Name,
		Email:  req.Email,
		Skills: req.Skills,
	}
	if req.ProfileStatus != nil {
		st := candidate.ProfileStatus(*req.ProfileStatus)
		upd.ProfileStatus = &st
	}
	if req.EmploymentStatus != nil {
		st := candidate.EmploymentStatus(*req.EmploymentStatus)
		upd.EmploymentStatus = &st
	}

	cand, err := h.uc.UpdateCandidate(c.Context(), id, upd)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(cand))
}

func (h *CandidateHandler) HandleRecommendedJobs(c fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	recs, err := h.uc.RecommendJobs(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRecommendations(recs))
}

func toCandidateInput(in candidateInputRequest) usecase.CandidateInput {
	out := usecase.CandidateInput{
		Type:             candidate.Type(in.Type),
		Name:             in.Name,
		Email:            in.Email,
		Skills:           in.Skills,
		ProfileStatus:    candidate.ProfileStatus(in.ProfileStatus),
		EmploymentStatus: candidate.EmploymentStatus(in.EmploymentStatus),
	}
	if p := in.Internal; p != nil {
		out.Internal = &candidate.InternalProfile{
			CurrentRole:       p.CurrentRole,
			Department:        p.Department,
			ExperienceYears:   p.ExperienceYears,
			PerformanceRating: p.PerformanceRating,
			CareerAspirations: p.CareerAspirations,
			DevelopmentGoals:  p.DevelopmentGoals,
			LearningAgility:   p.LearningAgility,
		}
	}
	if p := in.Past; p != nil {
		out.Past = &candidate.PastProfile{
			PreviousRoleAppliedFor: p.PreviousRoleAppliedFor,
			LastContactDate:        p.LastContactDate,
			Notes:                  p.Notes,
		}
	}
	if p := in.Uploaded; p != nil {
		out.Uploaded = &candidate.UploadedProfile{
			Summary:         p.Summary,
			ExperienceYears: p.ExperienceYears,
			FileName:        p.FileName,
		}
	}
	return out
}
