package service

import (
	"fmt"

	"backend/internal/models"
	"backend/internal/repository"

	"go.uber.org/zap"
)

type VideoService interface {
	GetDashboard() ([]*models.DashboardVideo, error)
}

type videoService struct {
	videos   repository.VideoRepository
	playback PlaybackService
	limit    int
	logger   *zap.Logger
}

func NewVideoService(videos repository.VideoRepository, playback PlaybackService, limit int, logger *zap.Logger) VideoService {
	return &videoService{
		videos:   videos,
		playback: playback,
		limit:    limit,
		logger:   logger,
	}
}

// GetDashboard lists the active videos, each paired with a freshly issued
// playback token.
func (s *videoService) GetDashboard() ([]*models.DashboardVideo, error) {
	videos, err := s.videos.GetActiveVideos(s.limit)
	if err != nil {
		s.logger.Error("Failed to get active videos", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve videos: %w", err)
	}

	enriched := make([]*models.DashboardVideo, 0, len(videos))
	for _, v := range videos {
		playbackToken, err := s.playback.Issue(v.ID)
		if err != nil {
			return nil, err
		}

		enriched = append(enriched, &models.DashboardVideo{
			ID:            v.ID,
			Title:         v.Title,
			Description:   v.Description,
			Thumbnail:     v.ThumbnailURL,
			PlaybackToken: playbackToken,
		})
	}

	return enriched, nil
}
