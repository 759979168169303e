package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"patient-portal-assistant/internal/metrics"
	"patient-portal-assistant/internal/model"
	"patient-portal-assistant/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		sc, _ := model.GetScopeFromContext(c.Request.Context())
		c.String(http.StatusOK, sc.UserID+"|"+sc.Username)
	})
	r.GET("/t", chain...)
	return r
}

func do(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScope(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{}, nil)
	r := newRouter(mw, mw.Scope())

	t.Run("missing header", func(t *testing.T) {
		w := do(r, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("blank header", func(t *testing.T) {
		w := do(r, map[string]string{HeaderUserID: "   "})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("scope on context", func(t *testing.T) {
		w := do(r, map[string]string{HeaderUserID: "patient-1", HeaderUsername: "jane"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if got := w.Body.String(); got != "patient-1|jane" {
			t.Errorf("body = %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	m := metrics.New()
	// 10/min gives a burst of 1 and a refill far slower than the test.
	mw := New(log.NewNop(), RateLimitConfig{RequestsPerMin: 10}, m)
	r := newRouter(mw, mw.Scope(), mw.RateLimit())

	if w := do(r, map[string]string{HeaderUserID: "u1"}); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d", w.Code)
	}
	if w := do(r, map[string]string{HeaderUserID: "u1"}); w.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", w.Code)
	}
	if w := do(r, map[string]string{HeaderUserID: "u2"}); w.Code != http.StatusOK {
		t.Errorf("other user status = %d, want 200", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{}, nil)
	r := newRouter(mw, mw.Scope(), mw.RateLimit())

	for i := 0; i < 20; i++ {
		if w := do(r, map[string]string{HeaderUserID: "u1"}); w.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, w.Code)
		}
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := newRateLimiter(RateLimitConfig{RequestsPerMin: 60, Capacity: 2})
	if rl.burst != 6 {
		t.Errorf("burst = %d, want 6", rl.burst)
	}
	for i := 0; i < 6; i++ {
		if !rl.Allow("k") {
			t.Fatalf("request %d should be allowed within burst", i)
		}
	}
	if rl.Allow("k") {
		t.Error("request beyond burst should be rejected")
	}

	var disabled *rateLimiter
	if !disabled.Allow("k") {
		t.Error("nil limiter must allow")
	}
}

func TestLogging_RequestID(t *testing.T) {
	mw := New(log.NewNop(), RateLimitConfig{}, nil)
	r := newRouter(mw, mw.Logging())

	w := do(r, map[string]string{HeaderRequestID: "req-123"})
	if got := w.Header().Get(HeaderRequestID); got != "req-123" {
		t.Errorf("request id = %q, want echo of inbound id", got)
	}

	w = do(r, nil)
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("expected a generated request id")
	}
}
