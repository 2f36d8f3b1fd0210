package handler

import (
	"errors"
	"strconv"

	"placematch/internal/delivery/http/dto"
	"placematch/internal/delivery/http/middleware"
	"placematch/internal/pkg/response"
	"placematch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/opportunities")
	grp.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	params := usecase.RecommendationParams{
		Limit:    parseQueryInt(c, "limit", 20),
		Offset:   parseQueryInt(c, "offset", 0),
		MinScore: parseQueryFloat(c, "min_score", 0),
	}

	items, err := h.uc.GetRecommendations(c.Context(), candidateID, params)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := make([]dto.RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.RecommendationResponse{
			OpportunityID:   it.OpportunityID,
			Title:           it.Title,
			Company:         it.Company,
			Location:        it.Location,
			OverallScore:    it.OverallScore,
			MatchPercentage: it.MatchPercentage,
			Reasons:         it.Reasons,
			Factors: dto.FactorScoresResponse{
				Skill:        it.Factors.Skill,
				Experience:   it.Factors.Experience,
				Location:     it.Factors.Location,
				Compensation: it.Factors.Compensation,
				OrgSize:      it.Factors.OrgSize,
				WorkMode:     it.Factors.WorkMode,
				Academic:     it.Factors.Academic,
			},
			InterestLine: it.InterestLine,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryFloat(c fiber.Ctx, key string, defaultVal float64) float64 {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapRecommendationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	case errors.Is(err, usecase.ErrNoOpportunitiesFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No open opportunities found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
