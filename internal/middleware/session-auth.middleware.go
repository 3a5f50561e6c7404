package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/auth"
	"github.com/wanderlustbites/content-service/internal/constant"
)

// RequireSession gates a route group on a valid session cookie. The token is
// verified fail-closed: a missing cookie and every rejection reason collapse
// to the same 401 response, with the reason kept to the logs.
func RequireSession(issuer *auth.Issuer, cookie auth.CookieOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.SessionToken(c, cookie)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, constant.NOT_AUTHENTICATED)
			return
		}

		claims, reason := issuer.Verify(token)
		if reason != auth.RejectNone {
			zap.L().Debug("session token rejected",
				zap.String("reason", reason.String()),
				zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, constant.NOT_AUTHENTICATED)
			return
		}

		c.Set(constant.SessionClaimsKey, claims)
		c.Set(constant.UserIDKey, claims.UserID)
		c.Set(constant.UserEmailKey, claims.Email)
		c.Next()
	}
}

// SessionClaims returns the verified claims set by RequireSession.
func SessionClaims(c *gin.Context) (*auth.Claims, bool) {
	v, exists := c.Get(constant.SessionClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
