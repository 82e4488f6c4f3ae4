package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"detailops/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doPing(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Real-IP", ip)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitHonorsConfiguredLimit(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	r := rateLimitedRouter()
	// Limiters are cached per IP, so each test uses a fresh address.
	ip := "10.1.1.1"
	assert.Equal(t, http.StatusOK, doPing(r, ip))
	assert.Equal(t, http.StatusOK, doPing(r, ip))
	assert.Equal(t, http.StatusTooManyRequests, doPing(r, ip))
}

func TestRateLimitIsPerClientIP(t *testing.T) {
	prev := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 1
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = prev })

	r := rateLimitedRouter()
	assert.Equal(t, http.StatusOK, doPing(r, "10.1.2.1"))
	assert.Equal(t, http.StatusTooManyRequests, doPing(r, "10.1.2.1"))
	assert.Equal(t, http.StatusOK, doPing(r, "10.1.2.2"))
}

func TestGetClientIPHeaderPrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() (*gin.Context, *http.Request) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.9:4711"
		c.Request = req
		return c, req
	}

	c, req := newCtx()
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "203.0.113.7", getClientIP(c))

	c, req = newCtx()
	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", getClientIP(c))

	c, _ = newCtx()
	assert.Equal(t, "192.0.2.9", getClientIP(c))
}
