package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"bearworld/database"
	"bearworld/internal/ai"
	"bearworld/internal/cache"
	"bearworld/internal/config"
	"bearworld/internal/http-api/handler"
	"bearworld/internal/http-api/middleware"
	"bearworld/internal/http-api/repository"
	"bearworld/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if cfg.SeedData {
		if err := database.SeedData(db, logger); err != nil {
			logger.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	statsCache, err := cache.NewStatsCache(cfg.RedisURL, cfg.RedisPassword, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		// The cache is optional; run without it rather than refusing to start
		logger.Warn("redis unavailable, stats served from database", "error", err)
		statsCache = nil
	}
	defer statsCache.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	articleRepo := repository.NewArticleRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	commentRepo := repository.NewCommentRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	configRepo := repository.NewConfigRepository(db)
	chatHistoryRepo := repository.NewChatHistoryRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	articleService := service.NewArticleService(articleRepo)
	projectService := service.NewProjectService(projectRepo)
	commentService := service.NewCommentService(commentRepo)
	messageService := service.NewMessageService(messageRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)
	searchService := service.NewSearchService(articleRepo, projectRepo)
	statsService := service.NewStatsService(articleRepo, projectRepo, commentRepo, userRepo, messageRepo, statsCache, logger)
	configService := service.NewConfigService(configRepo)

	responder := buildResponder(cfg, configService, logger)
	chatService := service.NewChatService(responder, chatHistoryRepo, logger)

	handlers := &handler.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Article:  handler.NewArticleHandler(articleService, commentService),
		Project:  handler.NewProjectHandler(projectService),
		Comment:  handler.NewCommentHandler(commentService),
		Message:  handler.NewMessageHandler(messageService),
		Favorite: handler.NewFavoriteHandler(favoriteService),
		Search:   handler.NewSearchHandler(searchService),
		Stats:    handler.NewStatsHandler(statsService),
		AI:       handler.NewAIHandler(chatService),
		Config:   handler.NewConfigHandler(configService),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.NoRoute(handler.NotFound)

	api := r.Group("/api")
	handlers.RegisterRoutes(api, middleware.AuthMiddleware(authService), middleware.OptionalAuth(authService))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server listening", "addr", addr, "env", cfg.GoEnv, "ai_provider", cfg.AIProvider)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// buildResponder picks the chat backend. The DeepSeek key comes from the
// environment, falling back to the operator config table.
func buildResponder(cfg *config.Config, configService service.ConfigService, logger *slog.Logger) ai.Responder {
	if cfg.AIProvider != "deepseek" {
		return ai.NewTemplateResponder()
	}

	apiKey := cfg.DeepSeekAPIKey
	if apiKey == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if stored, err := configService.Get(ctx, "deepseek_api_key"); err == nil {
			apiKey = stored
		}
	}
	if apiKey == "" {
		logger.Warn("deepseek selected but no API key configured, using canned replies")
		return ai.NewTemplateResponder()
	}
	return ai.NewDeepSeekResponder(apiKey, cfg.DeepSeekBaseURL, cfg.DeepSeekModel)
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
