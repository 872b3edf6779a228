package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aureeture/careerhub/internal/cache"
	"github.com/aureeture/careerhub/internal/config"
	"github.com/aureeture/careerhub/internal/database"
	"github.com/aureeture/careerhub/internal/handlers"
	"github.com/aureeture/careerhub/internal/repositories"
	"github.com/aureeture/careerhub/internal/routes"
	"github.com/aureeture/careerhub/internal/services"
	ws "github.com/aureeture/careerhub/internal/websocket"
)

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}

	setupLogging(cfg)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("redis")
	}
	defer redisClient.Close()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			return weekdays[fl.Field().String()]
		})
	}

	sessionRepo := repositories.NewSessionRepository(db)
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	availabilityRepo := repositories.NewAvailabilityRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	mailer := services.NewEmailService(cfg)
	payments := services.NewPaymentService(cfg)
	sessionService := services.NewSessionService(sessionRepo, mailer, payments, services.RTCConfig{
		AppID:   cfg.AgoraAppID,
		AppCert: cfg.AgoraAppCert,
	})
	availabilityService := services.NewAvailabilityService(availabilityRepo, sessionRepo, cache.NewSlotsCache(redisClient))
	menteeService := services.NewMenteeService(sessionRepo)
	profileService := services.NewProfileService(profileRepo)
	projectService := services.NewProjectService(projectRepo)

	hub := ws.NewHub()

	sessionHandler := handlers.NewSessionHandler(sessionService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	menteeHandler := handlers.NewMenteeHandler(menteeService)
	profileHandler := handlers.NewProfileHandler(profileService)
	projectHandler := handlers.NewProjectHandler(projectService)
	contactHandler := handlers.NewContactHandler(contactRepo)
	webSocketHandler := handlers.NewWebSocketHandler(hub)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterPublicEndpoints(router, sessionHandler, availabilityHandler, menteeHandler, contactHandler, webSocketHandler)
	routes.RegisterProtectedEndpoints(router, profileHandler, projectHandler, userRepo, cfg.ClerkSecretKey)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server")
	}
}

func setupLogging(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
