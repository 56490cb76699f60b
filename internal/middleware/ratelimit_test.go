package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewIPRateLimiter(0.001, 2)
	r := gin.New()
	r.POST("/form", RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/form", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d = %d, want 200", i, code)
		}
	}
	if code := send("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("over burst = %d, want 429", code)
	}
	if code := send("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other ip = %d, want 200", code)
	}
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	limiter.GetLimiter("1.1.1.1")
	limiter.visitors["1.1.1.1"].lastSeen = time.Now().Add(-time.Hour)
	limiter.GetLimiter("2.2.2.2")

	limiter.Cleanup(10 * time.Minute)
	if _, ok := limiter.visitors["1.1.1.1"]; ok {
		t.Error("idle visitor not removed")
	}
	if _, ok := limiter.visitors["2.2.2.2"]; !ok {
		t.Error("active visitor removed")
	}
}
