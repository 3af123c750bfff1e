package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextCallerKey is the gin context key storing the opaque caller id.
const ContextCallerKey = "callerId"

// Identity attaches the caller identity carried on a bearer token, used
// only to scope entry reads and stamp entry ownership. Authentication
// itself is owned by an external service; a missing or invalid token just
// leaves the request anonymous.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if subject, err := token.Claims.GetSubject(); err == nil && subject != "" {
			c.Set(ContextCallerKey, subject)
		}
		c.Next()
	}
}

// CallerID returns the caller id stored on the context, empty when
// anonymous.
func CallerID(c *gin.Context) string {
	if v, exists := c.Get(ContextCallerKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
