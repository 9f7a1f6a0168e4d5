package models

import "time"

type Video struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	YouTubeID    string    `db:"youtube_id" json:"-"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnail"`
	IsActive     bool      `db:"is_active" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}

// PlaybackToken grants time-boxed access to exactly one video.
// The token string itself is the primary key.
type PlaybackToken struct {
	Token     string    `db:"token"`
	VideoID   int64     `db:"video_id"`
	ExpiresAt time.Time `db:"expires_at"`
}

// DashboardVideo is a video entry as returned by the dashboard listing,
// paired with a freshly issued playback token.
type DashboardVideo struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Thumbnail     string `json:"thumbnail"`
	PlaybackToken string `json:"playback_token"`
}
