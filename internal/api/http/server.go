package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/vitorsm19/aisel-tech-case-vitor/internal/api/http/handlers"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/auth"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/config"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/domain"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/observability"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/repository"
	"github.com/vitorsm19/aisel-tech-case-vitor/internal/service"
)

// Server holds the assembled API application and the pieces tests poke at.
type Server struct {
	App      *fiber.App
	Auth     *service.AuthService
	Patients *service.PatientService
	Metrics  *observability.Metrics
}

// Seed describes the fixture data loaded at startup.
type Seed struct {
	Users    []domain.SeedUser
	Patients []domain.Patient
}

// DefaultSeed returns the built-in users and patients.
func DefaultSeed() Seed {
	return Seed{Users: domain.DefaultUsers(), Patients: domain.FixturePatients()}
}

// NewServer wires repositories, services, handlers and middlewares.
func NewServer(cfg *config.Config, logger *zap.Logger, seed Seed) (*Server, error) {
	users, err := service.SeedUsers(seed.Users, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	userRepo := repository.NewUserRepository(users)
	patientRepo := repository.NewMemoryPatientRepository(seed.Patients)

	authService := service.NewAuthService(cfg.Auth, userRepo, logger.Named("auth"))
	patientService := service.NewPatientService(patientRepo, logger.Named("patients"))
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ErrorHandler:          ErrorHandler(logger),
		DisableStartupMessage: true,
	})
	RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, patientService, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Patients:       handlers.NewPatientsHandler(patientService),
		AuthMiddleware: authMiddleware,
	})

	logger.Info("api assembled",
		zap.Int("users", len(users)),
		zap.Int("patients", len(seed.Patients)),
	)

	return &Server{App: app, Auth: authService, Patients: patientService, Metrics: metrics}, nil
}
