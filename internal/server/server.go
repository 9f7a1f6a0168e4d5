package server

import (
	"net/http"

	"backend/internal/config"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router  *gin.Engine
	db      *sqlx.DB
	cfg     *config.Config
	logger  *zap.Logger
	repoLog *logrus.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, logger *zap.Logger, repoLog *logrus.Logger) *Server {
	router := gin.Default()

	s := &Server{
		router:  router,
		db:      db,
		cfg:     cfg,
		logger:  logger,
		repoLog: repoLog,
	}

	// Setup routes
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	codec := token.NewCodec([]byte(s.cfg.Auth.JWTSecret), s.cfg.SessionTTL())

	// Initialize repositories
	userRepo := repository.NewUserRepository(s.db, s.repoLog)
	videoRepo := repository.NewVideoRepository(s.db, s.logger)
	playbackTokenRepo := repository.NewPlaybackTokenRepository(s.db, s.logger)

	// Initialize services
	authService := service.NewAuthService(userRepo, codec, s.logger)
	playbackService := service.NewPlaybackService(playbackTokenRepo, videoRepo, s.cfg.PlaybackTokenTTL(), s.logger)
	videoService := service.NewVideoService(videoRepo, playbackService, s.cfg.Playback.DashboardLimit, s.logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, s.logger)
	videoHandler := handler.NewVideoHandler(videoService, playbackService, s.logger)

	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Authentication routes
	authGroup := s.router.Group("/auth")
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", middleware.AuthMiddleware(codec, userRepo, s.logger), authHandler.Me)

	// The dashboard is public in the current design: playback access is
	// gated by the per-video tokens it hands out, not by a session.
	s.router.GET("/dashboard", videoHandler.Dashboard)
	s.router.GET("/video/:id/stream", videoHandler.Stream)
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
