package token

import (
	"errors"
	"time"

	"backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Codec signs and verifies session tokens (HS256 JWTs). The signing secret
// and token lifetime are injected at construction so they can be rotated and
// isolated in tests.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{secret: secret, ttl: ttl}
}

// Sign produces a compact signed token carrying the user id, valid for the
// configured TTL from now.
func (c *Codec) Sign(userID int64) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks the signature and expiry and returns the encoded user id.
// Only the signed payload is trusted; verification has no side effects.
func (c *Codec) Verify(tokenString string) (int64, error) {
	claims := &models.Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is what we expect
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !tok.Valid {
		return 0, ErrTokenInvalid
	}

	return claims.UserID, nil
}
