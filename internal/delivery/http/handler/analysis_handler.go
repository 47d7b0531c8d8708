package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"talent-sonar/internal/delivery/http/dto"
	"talent-sonar/internal/delivery/http/middleware"
	"talent-sonar/internal/pkg/response"
	"talent-sonar/internal/usecase"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

type analyzeRequest struct {
	CandidateID string `json:"candidate_id"`
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/analyze", h.HandleAnalyzeCandidate)
	r.Post("/:id/analyze-top", h.HandleAnalyzeTop)
}

// HandleAnalyzeCandidate runs one on-demand AI assessment. The call is
// synchronous; a model failure maps to 502 and leaves the stored score
// untouched.
func (h *AnalysisHandler) HandleAnalyzeCandidate(c fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req analyzeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	candidateID, err := parseUUID(req.CandidateID)
	if err != nil {
		return err
	}

	fit, err := h.uc.AnalyzeCandidate(c.Context(), jobID, candidateID)
	if err != nil {
		return mapAnalysisError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromFitAnalysis(fit))
}

func (h *AnalysisHandler) HandleAnalyzeTop(c fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	summary, err := h.uc.AnalyzeTopCandidates(c.Context(), jobID)
	if err != nil {
		return mapAnalysisError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromBatchSummary(summary))
}

func mapAnalysisError(err error) error {
	switch mapped := mapUsecaseError(err); mapped.(type) {
	case *middleware.AppError:
		return mapped
	default:
		return middleware.NewAppError(fiber.StatusBadGateway, "AI analysis failed", nil, err)
	}
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}
