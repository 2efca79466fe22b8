package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucaspalermo/defesapix/internal/handlers"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(rl *handlers.IPRateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func requestFrom(r http.Handler, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestIPRateLimiter_PerIP(t *testing.T) {
	rl := handlers.NewIPRateLimiter(0.001, 2)
	r := limitedRouter(rl)

	assert.Equal(t, http.StatusOK, requestFrom(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, requestFrom(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, requestFrom(r, "10.0.0.2"))
	assert.Equal(t, 2, rl.Len())
}

func TestIPRateLimiter_Sweep(t *testing.T) {
	rl := handlers.NewIPRateLimiter(10, 10)
	r := limitedRouter(rl)

	requestFrom(r, "10.0.0.1")
	rl.Sweep(time.Hour)
	assert.Equal(t, 1, rl.Len())

	time.Sleep(5 * time.Millisecond)
	rl.Sweep(time.Millisecond)
	assert.Equal(t, 0, rl.Len())
}
