package repository

import (
	"database/sql"
	"errors"

	"backend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type PlaybackTokenRepository interface {
	CreateToken(t *models.PlaybackToken) error
	GetToken(token string) (*models.PlaybackToken, error)
}

type playbackTokenRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaybackTokenRepository(db *sqlx.DB, logger *zap.Logger) PlaybackTokenRepository {
	return &playbackTokenRepository{db: db, logger: logger}
}

// CreateToken inserts the token record. The token column is the primary key,
// so a collision surfaces as a unique violation instead of an overwrite.
func (r *playbackTokenRepository) CreateToken(t *models.PlaybackToken) error {
	query := `INSERT INTO playback_tokens (token, video_id, expires_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(query, t.Token, t.VideoID, t.ExpiresAt)
	return err
}

func (r *playbackTokenRepository) GetToken(token string) (*models.PlaybackToken, error) {
	var t models.PlaybackToken
	query := `SELECT token, video_id, expires_at FROM playback_tokens WHERE token = $1`
	err := r.db.Get(&t, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
