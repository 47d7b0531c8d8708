package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"talent-sonar/internal/delivery/http/dto"
	"talent-sonar/internal/pkg/response"
	"talent-sonar/internal/ranking"
	"talent-sonar/internal/usecase"
)

type RankingHandler struct {
	uc usecase.RankingUsecase
}

func NewRankingHandler(uc usecase.RankingUsecase) *RankingHandler {
	return &RankingHandler{uc: uc}
}

func (h *RankingHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/candidates", h.HandleRankedCandidates)
}

func (h *RankingHandler) RegisterInsightRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/departments", h.HandleDepartmentInsights)
}

// HandleRankedCandidates serves the candidate list for a job in one of
// the five view modes. The tier summary in the payload always covers
// the full pool, whatever mode is selected.
func (h *RankingHandler) HandleRankedCandidates(c fiber.Ctx) error {
	jobID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	mode := ranking.Mode(strings.TrimSpace(c.Query("view")))

	view, err := h.uc.RankedCandidates(c.Context(), jobID, mode)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRankedView(view))
}

func (h *RankingHandler) HandleDepartmentInsights(c fiber.Ctx) error {
	insights, err := h.uc.DepartmentInsights(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromInsights(insights))
}
