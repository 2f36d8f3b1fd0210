package handler

import (
	"errors"

	"placematch/internal/delivery/http/dto"
	"placematch/internal/delivery/http/middleware"
	"placematch/internal/pkg/response"
	"placematch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillGapHandler struct {
	uc usecase.SkillGapUsecase
}

func NewSkillGapHandler(uc usecase.SkillGapUsecase) *SkillGapHandler {
	return &SkillGapHandler{uc: uc}
}

func (h *SkillGapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/candidates")
	grp.Get("/skill-gaps", h.GetSkillGaps)
}

func (h *SkillGapHandler) GetSkillGaps(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var target *uuid.UUID
	if raw := c.Query("opportunity_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid opportunity_id", nil, err)
		}
		target = &id
	}

	analysis, err := h.uc.GetSkillGaps(c.Context(), candidateID, target)
	if err != nil {
		return mapSkillGapUsecaseError(err)
	}

	levels := make([]dto.SkillLevelGapResponse, 0, len(analysis.SkillLevels))
	for _, lv := range analysis.SkillLevels {
		levels = append(levels, dto.SkillLevelGapResponse{
			Skill:            lv.Skill,
			CurrentLevel:     lv.CurrentLevel,
			RecommendedLevel: lv.RecommendedLevel,
		})
	}

	out := dto.SkillGapResponse{
		MissingSkills:   analysis.MissingSkills,
		SkillLevels:     levels,
		Recommendations: analysis.Recommendations,
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapSkillGapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrOpportunityNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Opportunity not found", nil, err)
	case errors.Is(err, usecase.ErrNoOpportunitiesFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No open opportunities found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
