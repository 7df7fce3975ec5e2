package middleware

import (
	"net/http"
	"strings"

	log "log/slog"

	"github.com/MyelinBots/stillalive-go/internal/faults"
	"github.com/MyelinBots/stillalive-go/internal/services/auth"
	"github.com/MyelinBots/stillalive-go/internal/services/context_manager"
	"github.com/gin-gonic/gin"
)

const UsernameKey = "username"

// AuthMiddleware verifies the bearer token and puts the username into the
// request context.
func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or malformed token"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			log.InfoContext(c.Request.Context(), "rejected token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": faults.Message(err)})
			return
		}

		c.Set(UsernameKey, claims.Username)
		c.Request = c.Request.WithContext(context_manager.SetUsernameContext(c.Request.Context(), claims.Username))
		c.Next()
	}
}
