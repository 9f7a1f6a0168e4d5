package handler

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type VideoHandler interface {
	Dashboard(c *gin.Context)
	Stream(c *gin.Context)
}

type videoHandler struct {
	videoService    service.VideoService
	playbackService service.PlaybackService
	logger          *zap.Logger
}

func NewVideoHandler(videoService service.VideoService, playbackService service.PlaybackService, logger *zap.Logger) VideoHandler {
	return &videoHandler{videoService: videoService, playbackService: playbackService, logger: logger}
}

// Dashboard handles GET /dashboard
func (h *videoHandler) Dashboard(c *gin.Context) {
	videos, err := h.videoService.GetDashboard()
	if err != nil {
		h.logger.Error("Failed to get dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard"})
		return
	}

	c.JSON(http.StatusOK, videos)
}

// Stream handles GET /video/:id/stream?token=...
func (h *videoHandler) Stream(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Error("Invalid video ID", zap.String("id", idStr), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
		return
	}

	streamURL, err := h.playbackService.ResolveStream(id, c.Query("token"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
		case errors.Is(err, service.ErrTokenMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token mismatch"})
		case errors.Is(err, service.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Token expired"})
		default:
			h.logger.Error("Failed to resolve stream", zap.Int64("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve stream"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"stream_url": streamURL})
}
