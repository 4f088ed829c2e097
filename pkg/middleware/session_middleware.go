package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	mem "wanderlog/pkg/memcache"
	"wanderlog/pkg/utils"
)

// SessionAuthMiddleware resolves the acting identity before any resource
// lookup happens. The bearer token must carry a valid signature and its
// session id must still be live in the registry.
func SessionAuthMiddleware(sessions mem.SessionRegistry) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		sessionID, err := uuid.Parse(claims.SessionID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		userID := sessions.Resolve(sessionID)
		if userID == uuid.Nil {
			utils.RespondError(c, http.StatusUnauthorized, "Session is no longer active")
			c.Abort()
			return
		}

		// Pass the resolved identity to the next handler
		c.Set("user_id", userID.String())
		c.Set("session_id", sessionID.String())
		c.Next()
	}
}
