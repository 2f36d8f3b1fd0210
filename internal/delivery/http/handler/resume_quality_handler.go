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

type ResumeQualityHandler struct {
	uc usecase.ResumeQualityUsecase
}

type analyzeResumeRequest struct {
	OpportunityID string `json:"opportunity_id"`
	ResumeText    string `json:"resume_text"`
}

func NewResumeQualityHandler(uc usecase.ResumeQualityUsecase) *ResumeQualityHandler {
	return &ResumeQualityHandler{uc: uc}
}

func (h *ResumeQualityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/resume")
	grp.Post("/analyze", h.AnalyzeResume)
}

func (h *ResumeQualityHandler) AnalyzeResume(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req analyzeResumeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	opportunityID, err := uuid.Parse(req.OpportunityID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid opportunity_id", nil, err)
	}

	report, err := h.uc.AnalyzeResume(c.Context(), candidateID, opportunityID, req.ResumeText)
	if err != nil {
		return mapResumeQualityUsecaseError(err)
	}

	keywords := make([]dto.KeywordMatchResponse, 0, len(report.KeywordMatches))
	for _, km := range report.KeywordMatches {
		keywords = append(keywords, dto.KeywordMatchResponse{
			Keyword:    km.Keyword,
			Found:      km.Found,
			Importance: km.Importance,
			Suggestion: km.Suggestion,
		})
	}

	suggestions := make([]dto.QualitySuggestionResponse, 0, len(report.Suggestions))
	for _, s := range report.Suggestions {
		suggestions = append(suggestions, dto.QualitySuggestionResponse{
			Category:    s.Category,
			Priority:    s.Priority,
			Title:       s.Title,
			Description: s.Description,
			Action:      s.Action,
		})
	}

	out := dto.ResumeQualityResponse{
		OverallScore:   report.OverallScore,
		Strengths:      report.Strengths,
		Weaknesses:     report.Weaknesses,
		Suggestions:    suggestions,
		KeywordMatches: keywords,
		ATSScore:       report.ATSScore,
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapResumeQualityUsecaseError(err error) error {
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
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
