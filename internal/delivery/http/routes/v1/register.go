package v1

import (
	"log"

	"placematch/internal/config"
	"placematch/internal/database"
	"placematch/internal/delivery/http/handler"
	"placematch/internal/delivery/http/middleware"
	"placematch/internal/domain/scoring"
	"placematch/internal/infrastructure/cache"
	"placematch/internal/pkg/jwt"
	"placematch/internal/repository"
	"placematch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	accountRepo := repository.NewPostgresAccountRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	opportunityRepo := repository.NewPostgresOpportunityRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	engine := scoring.NewEngine()

	var recCache usecase.RecommendationCache
	var invalidator usecase.CacheInvalidator
	if redis != nil {
		recCache = redis
		invalidator = redis
	}

	authUC := usecase.NewAuthUsecase(accountRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(accountRepo, invalidator)
	applicationUC := usecase.NewApplicationUsecase(opportunityRepo, applicationRepo, invalidator)
	recommendationUC := usecase.NewRecommendationUsecase(candidateRepo, opportunityRepo, applicationRepo, matchRepo, engine, recCache, logger)
	skillGapUC := usecase.NewSkillGapUsecase(candidateRepo, opportunityRepo, engine, recCache, logger)
	resumeQualityUC := usecase.NewResumeQualityUsecase(candidateRepo, opportunityRepo, engine)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	skillGapHandler := handler.NewSkillGapHandler(skillGapUC)
	resumeQualityHandler := handler.NewResumeQualityHandler(resumeQualityUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())
	profileHandler.RegisterRoutes(protected)
	applicationHandler.RegisterRoutes(protected)
	recommendationHandler.RegisterRoutes(protected)
	skillGapHandler.RegisterRoutes(protected)
	resumeQualityHandler.RegisterRoutes(protected)
}
