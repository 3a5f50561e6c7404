package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieFromRecorder(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := w.Result()
	defer res.Body.Close()
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSetSessionCookie_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetSessionCookie(c, CookieOpts{}, "the-token")

	ck := cookieFromRecorder(t, w, DefaultCookieName)
	assert.Equal(t, "the-token", ck.Value)
	assert.Equal(t, "/", ck.Path)
	assert.Equal(t, DefaultCookieMaxAge, ck.MaxAge)
	assert.True(t, ck.HttpOnly)
	assert.False(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
}

func TestSetSessionCookie_Production(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SetSessionCookie(c, CookieOpts{Secure: true}, "the-token")

	ck := cookieFromRecorder(t, w, DefaultCookieName)
	assert.True(t, ck.Secure)
	assert.True(t, ck.HttpOnly)
}

func TestClearSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ClearSessionCookie(c, CookieOpts{})

	ck := cookieFromRecorder(t, w, DefaultCookieName)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
	assert.Equal(t, "/", ck.Path)
}

func TestSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "abc"})
	c.Request = req
	require.Equal(t, "abc", SessionToken(c, CookieOpts{}))

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	assert.Empty(t, SessionToken(c, CookieOpts{}))
}
