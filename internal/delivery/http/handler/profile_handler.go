package handler

import (
	"errors"

	"placematch/internal/delivery/http/middleware"
	"placematch/internal/pkg/response"
	"placematch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type profileSkillRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type profileExperienceRequest struct {
	Title       string   `json:"title"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type updateProfileRequest struct {
	FullName       string   `json:"full_name"`
	Phone          string   `json:"phone"`
	Program        string   `json:"program"`
	Department     string   `json:"department"`
	GPA            float64  `json:"gpa"`
	Certifications []string `json:"certifications"`

	Skills     []profileSkillRequest      `json:"skills"`
	Experience []profileExperienceRequest `json:"experience"`

	Locations []string `json:"locations"`
	WorkMode  string   `json:"work_mode"`
	SalaryMin float64  `json:"salary_min"`
	SalaryMax float64  `json:"salary_max"`
	OrgSize   string   `json:"org_size"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/candidates")
	grp.Put("/profile", h.UpdateProfile)
}

func (h *ProfileHandler) UpdateProfile(c fiber.Ctx) error {
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.ProfileInput{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Program:        req.Program,
		Department:     req.Department,
		GPA:            req.GPA,
		Certifications: req.Certifications,
		Locations:      req.Locations,
		WorkMode:       req.WorkMode,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		OrgSize:        req.OrgSize,
	}
	for _, s := range req.Skills {
		in.Skills = append(in.Skills, usecase.ProfileSkillInput{Name: s.Name, Level: s.Level})
	}
	for _, e := range req.Experience {
		in.Experience = append(in.Experience, usecase.ProfileExperienceInput{
			Title:       e.Title,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
			Tags:        e.Tags,
		})
	}

	if err := h.uc.UpdateProfile(c.Context(), candidateID, in); err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid profile", nil, err)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Candidate not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
