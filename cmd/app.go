package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/studyaid/config"
	"github.com/lshigami/studyaid/database"
	_ "github.com/lshigami/studyaid/docs" // Swagger docs
	"github.com/lshigami/studyaid/internal/auth"
	"github.com/lshigami/studyaid/internal/controller"
	authctrl "github.com/lshigami/studyaid/internal/controller/auth"
	perfctrl "github.com/lshigami/studyaid/internal/controller/performance"
	studyctrl "github.com/lshigami/studyaid/internal/controller/study"
	"github.com/lshigami/studyaid/internal/generation"
	"github.com/lshigami/studyaid/internal/llm"
	"github.com/lshigami/studyaid/internal/repository"
	"github.com/lshigami/studyaid/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const requestIDHeader = "X-Request-ID"

func appOptions(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),

		// Infrastructure
		fx.Provide(
			database.NewDatabase,
			database.NewRedis,
			NewGinEngine,
			func(cfg *config.Config) (*auth.TokenIssuer, error) {
				return auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
			},
		),

		// Generation
		fx.Provide(
			func(cfg *config.Config) (llm.Provider, error) {
				return llm.NewProvider(context.Background(), cfg.LLMConfig())
			},
			func(p llm.Provider) *generation.LLMGenerator {
				return generation.NewLLMGenerator(p, generation.DefaultGeneratorConfig())
			},
			func(g *generation.LLMGenerator) generation.QuestionGenerator { return g },
			func(g *generation.LLMGenerator) generation.NotesGenerator { return g },
			func(cfg *config.Config) generation.Policy { return cfg.RetryPolicy() },
		),

		// Repositories
		fx.Provide(
			repository.NewUserRepository,
			repository.NewPerformanceLogRepository,
			repository.NewSavedContentRepository,
		),

		// Services
		fx.Provide(
			service.NewWorkspaceRegistry,
			service.NewAuthService,
			service.NewPerformanceService,
			service.NewStudyService,
			service.NewSavedContentService,
			service.NewHealthService,
		),

		// Controllers
		fx.Provide(
			asRoutes(authctrl.NewAuthController),
			asRoutes(perfctrl.NewPerformanceController),
			asRoutes(studyctrl.NewStudyController),
			asRoutes(studyctrl.NewSavedContentController),
			controller.NewHealthController,
		),

		fx.Invoke(CloseStoresOnStop),
		fx.Invoke(CloseProviderOnStop),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

func asRoutes(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(controller.RouteRegistrar)),
		fx.ResultTags(`group:"routes"`),
	)
}

// requestID tags every request with an id, reusing the caller's when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(requestID())

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		reqID, _ := param.Keys["request_id"].(string)
		log.Info().
			Str("request_id", reqID).
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

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

type routeParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Router    *gin.Engine
	Config    *config.Config
	Issuer    *auth.TokenIssuer
	Health    *controller.HealthController
	Routes    []controller.RouteRegistrar `group:"routes"`
}

// RegisterRoutesAndStartServer mounts every controller and ties the HTTP
// server to the fx lifecycle.
func RegisterRoutesAndStartServer(p routeParams) {
	p.Health.RegisterRoutes(p.Router)

	api := p.Router.Group("/api")
	protected := api.Group("", auth.Middleware(p.Issuer))
	for _, r := range p.Routes {
		r.RegisterRoutes(api, protected)
	}

	server := &http.Server{
		Addr:    ":" + p.Config.Server.Port,
		Handler: p.Router,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("StudyAid API server starting on port %s", p.Config.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", p.Config.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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

// CloseStoresOnStop releases the database pool and redis client after the
// server has drained.
func CloseStoresOnStop(lc fx.Lifecycle, db *gorm.DB, rdb *redis.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("Closing redis client")
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

// CloseProviderOnStop releases the LLM client connection, if the provider holds one.
func CloseProviderOnStop(lc fx.Lifecycle, p llm.Provider) {
	c, ok := p.(io.Closer)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := c.Close(); err != nil {
				log.Warn().Err(err).Msg("Closing LLM provider")
			}
			return nil
		},
	})
}
