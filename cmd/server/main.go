package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mubarakmsm/myweb/internal/config"
	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/handler"
	"github.com/mubarakmsm/myweb/internal/middleware"
	"github.com/mubarakmsm/myweb/internal/pdf"
	"github.com/mubarakmsm/myweb/internal/service"
	"github.com/mubarakmsm/myweb/internal/session"
	"github.com/mubarakmsm/myweb/internal/store"
	"github.com/mubarakmsm/myweb/pkg/redis"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// The record store handle; refuses to construct without the project
	// URL and the public API key.
	storeClient, err := store.New(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure record store client")
	}
	storeAuth := store.NewAuth(storeClient, cfg.GoogleRedirectURL)

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	// Session state: Redis records plus the observable provider.
	sessionRepo := session.NewRepository(redisClient)
	provider := session.NewProvider()
	provider.Subscribe(func(state session.State, sess *domain.Session) {
		event := log.Info().Str("state", state.String())
		if sess != nil {
			event = event.Str("user_id", sess.UserID.String())
		}
		event.Msg("session state changed")
	})

	// Services
	authService := service.NewAuthService(cfg, storeAuth, sessionRepo, provider)
	projectService := service.NewProjectService(storeClient)
	offeringService := service.NewOfferingService(storeClient)
	skillService := service.NewSkillService(storeClient)
	cvService := service.NewCVService(storeClient)

	exporter, err := pdf.NewExporter()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize pdf exporter")
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	publicHandler := handler.NewPublicHandler(projectService, offeringService, skillService, cvService, exporter)
	projectHandler := handler.NewProjectHandler(projectService)
	offeringHandler := handler.NewOfferingHandler(offeringService)
	skillHandler := handler.NewSkillHandler(skillService)
	cvHandler := handler.NewCVHandler(cvService)

	router := setupRouter(cfg, sessionRepo, authService, authHandler, publicHandler, projectHandler, offeringHandler, skillHandler, cvHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server startup failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

func setupRouter(
	cfg *config.Config,
	sessionRepo session.Repository,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	publicHandler *handler.PublicHandler,
	projectHandler *handler.ProjectHandler,
	offeringHandler *handler.OfferingHandler,
	skillHandler *handler.SkillHandler,
	cvHandler *handler.CVHandler,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.FrontendURL))

	// ========== PUBLIC PAGES ==========
	router.GET("/", publicHandler.Home)
	router.GET("/projects", publicHandler.Projects)
	router.GET("/services", publicHandler.Services)
	router.GET("/skills", publicHandler.Skills)
	router.GET("/cv", publicHandler.CV)
	router.GET("/cv/pdf", publicHandler.CVDownload)
	router.GET("/contact", publicHandler.Contact)

	// ========== AUTHENTICATION ==========
	router.POST("/login", authHandler.Login)
	router.POST("/register", authHandler.Register)
	router.GET("/auth/google", authHandler.GoogleAuth)
	router.GET("/auth/google/callback", authHandler.GoogleCallback)

	// ========== DASHBOARD (protected) ==========
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.RouteGuard(cfg.JWTSecret, sessionRepo, authService))
	{
		dashboard.POST("/logout", authHandler.Logout)
		dashboard.GET("/me", authHandler.Me)
		dashboard.GET("/sessions", authHandler.Sessions)
		dashboard.DELETE("/sessions/:sessionId", authHandler.RevokeSession)

		projects := dashboard.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Save)
			projects.DELETE("/:id", projectHandler.Remove)
		}

		services := dashboard.Group("/services")
		{
			services.GET("", offeringHandler.List)
			services.GET("/icons", offeringHandler.Icons)
			services.POST("", offeringHandler.Save)
			services.DELETE("/:id", offeringHandler.Remove)
		}

		skills := dashboard.Group("/skills")
		{
			skills.GET("", skillHandler.List)
			skills.POST("", skillHandler.Save)
			skills.DELETE("/:id", skillHandler.Remove)
		}

		cv := dashboard.Group("/cv")
		{
			cv.GET("", cvHandler.List)
			cv.GET("/sections/new", cvHandler.NewSection)
			cv.POST("/sections", cvHandler.SaveSection)
			cv.DELETE("/sections/:id", cvHandler.RemoveSection)
			cv.POST("/personal-info", cvHandler.SavePersonalInfo)
		}
	}

	return router
}
