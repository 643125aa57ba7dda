package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hirestack/jobboard-go/internal/config"
	"github.com/hirestack/jobboard-go/pkg/types"
)

var jwtKey []byte

const claimsContextKey = "claims"

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil || !token.Valid {
		return nil, err
	}

	return claims, nil
}

// OptionalAuth attaches claims when a valid Bearer token (header or
// cookie) is present and continues anonymously otherwise. Listing is a
// public operation; identity only makes search-term tracking
// attributable, so a bad token is never a reason to reject.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenStr = parts[1]
			}
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}

		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil || claims == nil {
			c.Next()
			return
		}
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			c.Next()
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated caller, if any.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	raw, ok := c.Get(claimsContextKey)
	if !ok {
		return 0, false
	}
	claims, ok := raw.(*types.Claims)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
