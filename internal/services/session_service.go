package services

import (
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	mem "wanderlog/pkg/memcache"
	"wanderlog/pkg/utils"
)

const defaultSessionTTL = 60 * time.Minute

type SessionServiceInterface interface {
	// Issue opens a server-side session for the user and returns the signed
	// token handed to the client. One session, one identity.
	Issue(userID uuid.UUID) (string, error)

	// Revoke ends the session carried by the token. The token itself may
	// still be unexpired; resolution fails regardless once revoked.
	Revoke(token string) error
}

type SessionService struct {
	sessions mem.SessionRegistry
	ttl      time.Duration
}

func NewSessionService(sessions mem.SessionRegistry) SessionServiceInterface {
	return &SessionService{
		sessions: sessions,
		ttl:      sessionTTLFromEnv(),
	}
}

func sessionTTLFromEnv() time.Duration {
	minutes, err := strconv.Atoi(os.Getenv("SESSION_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return defaultSessionTTL
	}
	return time.Duration(minutes) * time.Minute
}

func (s *SessionService) Issue(userID uuid.UUID) (string, error) {
	sessionID := uuid.New()

	token, err := utils.CreateToken(sessionID, userID, s.ttl)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	s.sessions.Put(sessionID, userID, s.ttl)
	return token, nil
}

func (s *SessionService) Revoke(token string) error {
	claims, err := utils.ValidateToken(token)
	if err != nil {
		return utils.ErrUnauthenticated
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return utils.ErrUnauthenticated
	}

	s.sessions.Revoke(sessionID)
	return nil
}
