package service

import (
	"errors"
	"testing"
	"time"

	"backend/internal/models"
	"backend/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePlaybackTokenRepo struct {
	tokens map[string]*models.PlaybackToken
}

func newFakePlaybackTokenRepo() *fakePlaybackTokenRepo {
	return &fakePlaybackTokenRepo{tokens: make(map[string]*models.PlaybackToken)}
}

func (f *fakePlaybackTokenRepo) CreateToken(t *models.PlaybackToken) error {
	if _, ok := f.tokens[t.Token]; ok {
		return errors.New("pq: duplicate key value violates unique constraint")
	}
	f.tokens[t.Token] = t
	return nil
}

func (f *fakePlaybackTokenRepo) GetToken(token string) (*models.PlaybackToken, error) {
	t, ok := f.tokens[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return t, nil
}

type fakeVideoRepo struct {
	videos map[int64]*models.Video
}

func newFakeVideoRepo(videos ...*models.Video) *fakeVideoRepo {
	f := &fakeVideoRepo{videos: make(map[int64]*models.Video)}
	for _, v := range videos {
		f.videos[v.ID] = v
	}
	return f
}

func (f *fakeVideoRepo) GetActiveVideos(limit int) ([]*models.Video, error) {
	var out []*models.Video
	for id := int64(1); len(out) < limit; id++ {
		v, ok := f.videos[id]
		if !ok {
			break
		}
		if v.IsActive {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVideoRepo) GetVideoByID(id int64) (*models.Video, error) {
	v, ok := f.videos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return v, nil
}

func testVideos() []*models.Video {
	return []*models.Video{
		{ID: 1, Title: "Heroes Tonight", YouTubeID: "3nQNiWdeH2Q", ThumbnailURL: "thumb1", IsActive: true},
		{ID: 2, Title: "Invincible", YouTubeID: "J2X5mJ3HDYE", ThumbnailURL: "thumb2", IsActive: true},
	}
}

func TestPlayback_IssueAndResolve(t *testing.T) {
	tokens := newFakePlaybackTokenRepo()
	videos := newFakeVideoRepo(testVideos()...)
	svc := NewPlaybackService(tokens, videos, 10*time.Minute, zap.NewNop())

	tok, err := svc.Issue(1)
	require.NoError(t, err)
	require.Len(t, tok, 64) // 32 random bytes, hex encoded

	url, err := svc.ResolveStream(1, tok)
	require.NoError(t, err)
	require.Equal(t, "https://m.youtube.com/watch?v=3nQNiWdeH2Q", url)

	// Tokens are multi-use within the validity window
	url, err = svc.ResolveStream(1, tok)
	require.NoError(t, err)
	require.Equal(t, "https://m.youtube.com/watch?v=3nQNiWdeH2Q", url)
}

func TestPlayback_TokenMismatch(t *testing.T) {
	tokens := newFakePlaybackTokenRepo()
	videos := newFakeVideoRepo(testVideos()...)
	svc := NewPlaybackService(tokens, videos, 10*time.Minute, zap.NewNop())

	tok, err := svc.Issue(1)
	require.NoError(t, err)

	// A token minted for video 1 must not unlock video 2
	_, err = svc.ResolveStream(2, tok)
	require.ErrorIs(t, err, ErrTokenMismatch)
}

func TestPlayback_TokenExpired(t *testing.T) {
	tokens := newFakePlaybackTokenRepo()
	videos := newFakeVideoRepo(testVideos()...)
	svc := NewPlaybackService(tokens, videos, -1*time.Second, zap.NewNop())

	tok, err := svc.Issue(1)
	require.NoError(t, err)

	_, err = svc.ResolveStream(1, tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestPlayback_TokenNotFound(t *testing.T) {
	tokens := newFakePlaybackTokenRepo()
	videos := newFakeVideoRepo(testVideos()...)
	svc := NewPlaybackService(tokens, videos, 10*time.Minute, zap.NewNop())

	_, err := svc.ResolveStream(1, "deadbeef")
	require.ErrorIs(t, err, ErrTokenNotFound)
}

func TestPlayback_IssuedTokensAreUnique(t *testing.T) {
	tokens := newFakePlaybackTokenRepo()
	videos := newFakeVideoRepo(testVideos()...)
	svc := NewPlaybackService(tokens, videos, 10*time.Minute, zap.NewNop())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tok, err := svc.Issue(1)
		require.NoError(t, err)
		require.False(t, seen[tok], "duplicate token issued")
		seen[tok] = true
	}
}

func TestPlayback_CollisionFailsLoudly(t *testing.T) {
	tokens := newFakePlaybackTokenRepo()

	// A colliding insert must error, not overwrite the existing binding
	require.NoError(t, tokens.CreateToken(&models.PlaybackToken{Token: "fixed", VideoID: 1, ExpiresAt: time.Now().Add(time.Minute)}))
	err := tokens.CreateToken(&models.PlaybackToken{Token: "fixed", VideoID: 2, ExpiresAt: time.Now().Add(time.Minute)})
	require.Error(t, err)

	got, err := tokens.GetToken("fixed")
	require.NoError(t, err)
	require.Equal(t, int64(1), got.VideoID)
}
