package service

import (
	"errors"
	"fmt"
	"time"

	"backend/internal/crypto"
	"backend/internal/models"
	"backend/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrTokenNotFound = errors.New("playback token not found")
	ErrTokenMismatch = errors.New("playback token bound to another video")
	ErrTokenExpired  = errors.New("playback token expired")
)

const playbackTokenBytes = 32

type PlaybackService interface {
	Issue(videoID int64) (string, error)
	ResolveStream(videoID int64, tokenString string) (string, error)
}

type playbackService struct {
	tokens repository.PlaybackTokenRepository
	videos repository.VideoRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewPlaybackService(tokens repository.PlaybackTokenRepository, videos repository.VideoRepository, ttl time.Duration, logger *zap.Logger) PlaybackService {
	return &playbackService{
		tokens: tokens,
		videos: videos,
		ttl:    ttl,
		logger: logger,
	}
}

// Issue mints a random playback token bound to the given video and persists
// it with the configured expiry. An insert collision is returned as an error,
// never retried or overwritten.
func (s *playbackService) Issue(videoID int64) (string, error) {
	tokenString, err := crypto.RandomHex(playbackTokenBytes)
	if err != nil {
		s.logger.Error("Failed to generate playback token", zap.Error(err))
		return "", fmt.Errorf("failed to generate playback token: %w", err)
	}

	record := &models.PlaybackToken{
		Token:     tokenString,
		VideoID:   videoID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.tokens.CreateToken(record); err != nil {
		s.logger.Error("Failed to persist playback token", zap.Error(err))
		return "", fmt.Errorf("failed to persist playback token: %w", err)
	}

	return tokenString, nil
}

// ResolveStream checks a presented token against the requested video and,
// while the token is unexpired, derives the stream URL. A token stays valid
// for repeated resolves until its expiry.
func (s *playbackService) ResolveStream(videoID int64, tokenString string) (string, error) {
	record, err := s.tokens.GetToken(tokenString)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrTokenNotFound
		}
		s.logger.Error("Failed to look up playback token", zap.Error(err))
		return "", fmt.Errorf("failed to look up playback token: %w", err)
	}

	if record.VideoID != videoID {
		return "", ErrTokenMismatch
	}

	if !time.Now().Before(record.ExpiresAt) {
		return "", ErrTokenExpired
	}

	video, err := s.videos.GetVideoByID(record.VideoID)
	if err != nil {
		s.logger.Error("Failed to load video for playback token", zap.Int64("video_id", record.VideoID), zap.Error(err))
		return "", fmt.Errorf("failed to load video: %w", err)
	}

	return StreamURL(video.YouTubeID), nil
}

// StreamURL derives the playable URL for a video. The mobile watch URL is
// stable inside the app's WebView.
func StreamURL(youtubeID string) string {
	return fmt.Sprintf("https://m.youtube.com/watch?v=%s", youtubeID)
}
