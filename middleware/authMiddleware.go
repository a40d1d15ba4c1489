package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	helper "github.com/Korux/SnP-REST-API/helpers"
)

// Authentication guards every mutating route. Missing or invalid tokens are
// reported the same way so callers learn nothing about why they failed.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, ok := bearerSubject(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"Error": "JWT Missing or Invalid"})
			c.Abort()
			return
		}
		c.Set("subject", subject)
		c.Next()
	}
}

// OptionalAuthentication is for routes that serve both anonymous and
// authenticated callers (playlist listing and reads). A valid token sets the
// subject; anything else continues anonymous.
func OptionalAuthentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if subject, ok := bearerSubject(c); ok {
			c.Set("subject", subject)
		}
		c.Next()
	}
}

func bearerSubject(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	claims, err := helper.ValidateToken(parts[1])
	if err != nil {
		return "", false
	}
	return claims.Subject, true
}

// Subject returns the verified caller subject, or "" for anonymous.
func Subject(c *gin.Context) string {
	return c.GetString("subject")
}
