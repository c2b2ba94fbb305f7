package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kgrc4si/ikgrcscore/config"
	"github.com/kgrc4si/ikgrcscore/database"
	"github.com/kgrc4si/ikgrcscore/internal/controller"
	"github.com/kgrc4si/ikgrcscore/internal/controller/lookup"
	"github.com/kgrc4si/ikgrcscore/internal/controller/scoring"
	"github.com/kgrc4si/ikgrcscore/internal/logger"
	"github.com/kgrc4si/ikgrcscore/internal/repository"
	"github.com/kgrc4si/ikgrcscore/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"gorm.io/gorm"
)

// @title RESTful API
// @version 0.0.1
// @description Backend API
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url https://www.example.com/support
// @contact.email ugai@fujitsu.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:7000
// @BasePath /
// @schemes http
func main() {
	logger.Init()

	app := fx.New(appOptions())

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func appOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ConsoleLogger{W: log.Logger}
		}),

		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			controller.NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewScenarioRepository,
			repository.NewRankingRepository,
			func(db *gorm.DB, cfg *config.Config) repository.ProbeRepository {
				return repository.NewProbeRepository(db, cfg.Database.ProbeQuery)
			},
		),

		// Services
		fx.Provide(
			service.NewScenarioService,
			service.NewRankingService,
			func(probeRepo repository.ProbeRepository, cfg *config.Config) service.SubmissionService {
				return service.NewSubmissionService(probeRepo, cfg.Database.ProbeQuestions)
			},
		),

		// Controllers
		fx.Provide(
			scoring.NewScoringController,
			lookup.NewSenarioController,
			lookup.NewRankingController,
			controller.NewController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

// RegisterRoutesAndStartServer registers the API routes and ties the HTTP server to the app lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Score API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Check out ReDoc docs at %s/redoc", cfg.BaseURL())
			log.Info().Msgf("Check out Swagger UI docs at %s/swagger-ui", cfg.BaseURL())
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(probeRepo repository.ProbeRepository) error {
	log.Info().Msg("Running database migrations...")
	if err := probeRepo.Migrate(); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
