package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-sonar/internal/delivery/http/dto"
	"talent-sonar/internal/delivery/http/middleware"
	"talent-sonar/internal/domain/candidate"
	"talent-sonar/internal/pkg/response"
	"talent-sonar/internal/usecase"
)

type FeedbackHandler struct {
	uc usecase.FeedbackUsecase
}

type matchFeedbackRequest struct {
	JobID string `json:"job_id"`
	Value string `json:"value"`
}

type hireRequest struct {
	JobID string `json:"job_id"`
}

func NewFeedbackHandler(uc usecase.FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/feedback", h.HandleMatchFeedback)
	r.Post("/:id/hire", h.HandleHire)
}

func (h *FeedbackHandler) HandleMatchFeedback(c fiber.Ctx) error {
	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req matchFeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := parseUUID(req.JobID)
	if err != nil {
		return err
	}

	value, err := h.uc.RecordMatchFeedback(c.Context(), candidateID, jobID, candidate.FeedbackValue(req.Value))
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{
		"candidate_id": candidateID,
		"job_id":       jobID,
		"value":        string(value),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func (h *FeedbackHandler) HandleHire(c fiber.Ctx) error {
	candidateID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req hireRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := parseUUID(req.JobID)
	if err != nil {
		return err
	}

	hired, err := h.uc.HireCandidate(c.Context(), candidateID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidate(hired))
}
