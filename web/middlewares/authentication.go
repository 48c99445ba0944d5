package middlewares

import (
	"net/http"
	"strings"

	"fasol.store/staffapp/security"
	"fasol.store/staffapp/web/common"
	"github.com/gin-gonic/gin"
)

// SessionCookie carries the session token for clients that don't send a
// bearer header. Login sets it, logout clears it.
const SessionCookie = "fasol.SessionCookie"

const claimsKey = "claims"

// Authentication checks for a valid session token in the Authorization
// header or the session cookie and stores the claims in the context.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			tokenStr = parts[1]
		}

		claims, err := security.ParseSessionToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose session is not one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentSession(c)
		if claims == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("Недостаточно прав"))
	}
}

// CurrentSession returns the session claims set by Authentication, or nil.
func CurrentSession(c *gin.Context) *security.SessionClaims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*security.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
