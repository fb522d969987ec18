package main

import (
	"os"

	"turiapp/internal/config"
	"turiapp/internal/db"
	"turiapp/internal/handlers"
	"turiapp/internal/middleware"
	"turiapp/internal/repository"
	"turiapp/internal/router"
	"turiapp/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, reading env vars from system")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := newLogger(cfg)

	database, err := db.Init(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}

	store := repository.NewStore(database)
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpires)
	mailer := services.NewMailer(logger)

	authService := services.NewAuthService(store, tokens, mailer, logger)
	userService := services.NewUserService(store, logger)
	personService := services.NewPersonService(store, logger)
	placeService := services.NewPlaceService(store, store, logger)
	categoryService := services.NewCategoryService(store, logger)
	reviewService := services.NewReviewService(store, store, logger)
	commentService := services.NewCommentService(store, store, logger)
	favoriteService := services.NewFavoriteService(store, store, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.LoadUser(tokens, store))

	router.RegisterRoutes(r, router.Handlers{
		Meta:       handlers.NewMetaHandler(),
		Auth:       handlers.NewAuthHandler(authService),
		Users:      handlers.NewUserHandler(userService),
		Persons:    handlers.NewPersonHandler(personService),
		Places:     handlers.NewPlaceHandler(placeService),
		Categories: handlers.NewCategoryHandler(categoryService),
		Reviews:    handlers.NewReviewHandler(reviewService),
		Comments:   handlers.NewCommentHandler(commentService),
		Favorites:  handlers.NewFavoriteHandler(favoriteService),
	})

	logger.Info().Str("port", cfg.Port).Msg("TuriApp server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// newLogger builds the process logger: JSON in production, console output
// everywhere else.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.IsProduction() {
		return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).Level(level).With().Timestamp().Logger()
}
