package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// signingKey is resolved per call, not at package init: main loads .env
// after this package initializes, so an eager read would miss a secret
// supplied through godotenv.
func signingKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Claims carries the acting user and the server-side session id. The token is
// only half of the story: the session id must still be present in the session
// registry, so a logged-out token is dead even before it expires.
type Claims struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func CreateToken(sessionID uuid.UUID, userID uuid.UUID, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    userID.String(),
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return signingKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	return claims, nil
}
