package repository

import (
	"database/sql"
	"errors"

	"backend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type VideoRepository interface {
	GetActiveVideos(limit int) ([]*models.Video, error)
	GetVideoByID(id int64) (*models.Video, error)
}

type videoRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewVideoRepository(db *sqlx.DB, logger *zap.Logger) VideoRepository {
	return &videoRepository{db: db, logger: logger}
}

func (r *videoRepository) GetActiveVideos(limit int) ([]*models.Video, error) {
	var videos []*models.Video
	query := `SELECT id, title, description, youtube_id, thumbnail_url, is_active, created_at
	          FROM videos WHERE is_active = true ORDER BY id LIMIT $1`
	err := r.db.Select(&videos, query, limit)
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *videoRepository) GetVideoByID(id int64) (*models.Video, error) {
	var video models.Video
	query := `SELECT id, title, description, youtube_id, thumbnail_url, is_active, created_at FROM videos WHERE id = $1`
	err := r.db.Get(&video, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}
