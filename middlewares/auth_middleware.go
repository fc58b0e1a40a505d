package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mgamergo/MacroMate/identity"
)

const subjectKey = "userID"

// AuthMiddleware resolves the bearer credential through the identity
// provider and injects the verified subject identifier into the
// request context. Requests without one never reach a handler.
func AuthMiddleware(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}

		credential := strings.TrimPrefix(authHeader, "Bearer ")
		subject, err := provider.ResolveCaller(c.Request.Context(), credential)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
			return
		}

		c.Set(subjectKey, subject)
		c.Next()
	}
}

// SubjectID returns the verified subject identifier set by
// AuthMiddleware, or "" when the request is unauthenticated.
func SubjectID(c *gin.Context) string {
	return c.GetString(subjectKey)
}
