package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/itimock/config"
	"github.com/lshigami/itimock/database"
	_ "github.com/lshigami/itimock/docs"
	adminctrl "github.com/lshigami/itimock/internal/controller/admin"
	userctrl "github.com/lshigami/itimock/internal/controller/user"
	"github.com/lshigami/itimock/internal/logger"
	"github.com/lshigami/itimock/internal/model"
	"github.com/lshigami/itimock/internal/repository"
	"github.com/lshigami/itimock/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title ITI Mock Test API
// @version 1.0
// @description Generates randomized ITI trade-theory mock papers, lets students clone a paper by its code, and grades submissions.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewTradeRepository,
			repository.NewQuestionRepository,
			repository.NewPaperRepository,
		),

		// Services
		fx.Provide(
			service.NewScoreConverterService,
			service.NewPaperService,
			service.NewSubmissionService,
			service.NewLeaderboardService,
			service.NewTradeService,
			service.NewQuestionBankService,
			service.NewQuestionDraftService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewAdminTradeController,
			adminctrl.NewAdminQuestionController,
			userctrl.NewPaperController,
			userctrl.NewCatalogController,
		),

		fx.Invoke(logger.Apply),
		// migrations must run before the server accepts requests
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

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

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.AllowOrigin) == 0 || (len(cfg.Server.AllowOrigin) == 1 && cfg.Server.AllowOrigin[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.AllowOrigin
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(ctx *gin.Context) { ctx.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	return r
}

// RegisterRoutesAndStartServer mounts every controller and ties the HTTP server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminTradeCtrl *adminctrl.AdminTradeController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
	paperCtrl *userctrl.PaperController,
	catalogCtrl *userctrl.CatalogController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	adminTradeCtrl.RegisterRoutes(adminAPIGroup)
	adminQuestionCtrl.RegisterRoutes(adminAPIGroup)

	userAPIGroup := router.Group("/api/v1")
	paperCtrl.RegisterRoutes(userAPIGroup)
	catalogCtrl.RegisterRoutes(userAPIGroup)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("ITI mock test API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Trade{},
		&model.Question{},
		&model.Paper{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
