package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	DefaultCookieName = "auth-token"

	// DefaultCookieMaxAge mirrors the token TTL: 7 days in seconds.
	DefaultCookieMaxAge = 7 * 24 * 60 * 60
)

// CookieOpts fixes the transport attributes of the session cookie.
type CookieOpts struct {
	Name   string
	Domain string
	MaxAge int // seconds
	Secure bool
}

func (o CookieOpts) name() string {
	if o.Name == "" {
		return DefaultCookieName
	}
	return o.Name
}

func (o CookieOpts) maxAge() int {
	if o.MaxAge <= 0 {
		return DefaultCookieMaxAge
	}
	return o.MaxAge
}

// SetSessionCookie persists the session token on the client. The cookie is
// HttpOnly (never exposed to script), SameSite=Lax and site-wide; Secure is
// set only in production-equivalent environments.
func SetSessionCookie(c *gin.Context, o CookieOpts, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(o.name(), token, o.maxAge(), "/", o.Domain, o.Secure, true)
}

// ClearSessionCookie deletes the session token on the client. Logout is
// purely this deletion signal: there is no server-side session table, so an
// already-issued token stays verifiable until its natural expiry.
func ClearSessionCookie(c *gin.Context, o CookieOpts) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(o.name(), "", -1, "/", o.Domain, o.Secure, true)
}

// SessionToken returns the raw token from the request cookie, or "" when
// no session is present.
func SessionToken(c *gin.Context, o CookieOpts) string {
	v, err := c.Cookie(o.name())
	if err != nil {
		return ""
	}
	return v
}
