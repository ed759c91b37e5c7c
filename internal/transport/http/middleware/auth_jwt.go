package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"cat-cafe/internal/core/auth"
	resp "cat-cafe/internal/transport/http/response"
)

// 上下文 key
const (
	KeyClaims   = "claims"
	KeyUserID   = "userId"
	KeyUsername = "username"
)

// AuthJWT 校验 Bearer access token；disabled 时直接放行
func AuthJWT(j *auth.JWTer, disabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disabled {
			c.Next()
			return
		}
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "authentication required"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "), auth.AccessToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid or expired token"))
			return
		}
		c.Set(KeyClaims, claims)
		c.Set(KeyUserID, claims.UID)
		c.Set(KeyUsername, claims.Username)
		c.Next()
	}
}

// RequireUsers 只放行名单内的用户（需先经过 AuthJWT）
func RequireUsers(usernames []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(usernames, c.GetString(KeyUsername)) {
			c.AbortWithStatusJSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Next()
	}
}
