package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limitedEngine serves GET /videos behind rl. The X-User header stands in
// for Auth.
func limitedEngine(rl *RateLimiter, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.Use(func(c *gin.Context) {
		if u := c.GetHeader("X-User"); u != "" {
			c.Set(ctxUserIDKey, u)
		}
		c.Next()
	})
	r.Use(pre...)
	r.Use(rl.Handler())
	r.GET("/videos", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/videos/upload", func(c *gin.Context) { c.String(http.StatusCreated, "created") })
	return r
}

func hit(r *gin.Engine, method, user, ip string, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/videos", nil)
	if method == http.MethodPost {
		req = httptest.NewRequest(method, "/videos/upload", nil)
	}
	req.RemoteAddr = ip + ":4242"
	if user != "" {
		req.Header.Set("X-User", user)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestKeyByUserOrIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/shorts", nil)
	c.Request.RemoteAddr = "198.51.100.7:5000"

	if got := KeyByUserOrIP()(c); got != "ip:198.51.100.7" {
		t.Fatalf("anonymous key = %q", got)
	}
	c.Set(ctxUserIDKey, "2b1f")
	if got := KeyByUserOrIP()(c); got != "user:2b1f" {
		t.Fatalf("authenticated key = %q", got)
	}
	c.Set(ctxUserIDKey, "")
	if got := KeyByUserOrIP()(c); got != "ip:198.51.100.7" {
		t.Fatalf("empty user must fall back to ip, got %q", got)
	}
}

func TestRateLimiter_DeniesWithEnvelope(t *testing.T) {
	r := limitedEngine(NewRateLimiter(0.001, 1, KeyByUserOrIP()))

	if w := hit(r, http.MethodGet, "", "203.0.113.1", nil); w.Code != http.StatusOK {
		t.Fatalf("first request: %d", w.Code)
	}
	w := hit(r, http.MethodGet, "", "203.0.113.1", map[string]string{"X-Request-ID": "rid-429"})
	if w.Code != http.StatusTooManyRequests || w.Header().Get("Retry-After") != "1" {
		t.Fatalf("second request: %d retry-after=%q", w.Code, w.Header().Get("Retry-After"))
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body["success"] != false || body["code"] != "rate_limited" || body["request_id"] != "rid-429" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestRateLimiter_UsersBehindOneIPHaveOwnBuckets(t *testing.T) {
	r := limitedEngine(NewRateLimiter(0.001, 1, KeyByUserOrIP()))
	const nat = "192.0.2.50"

	if w := hit(r, http.MethodGet, "alice", nat, nil); w.Code != http.StatusOK {
		t.Fatalf("alice: %d", w.Code)
	}
	if w := hit(r, http.MethodGet, "bob", nat, nil); w.Code != http.StatusOK {
		t.Fatalf("bob shares alice's bucket: %d", w.Code)
	}
	if w := hit(r, http.MethodGet, "alice", nat, nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("alice again: want 429, got %d", w.Code)
	}
	if w := hit(r, http.MethodGet, "", nat, nil); w.Code != http.StatusOK {
		t.Fatalf("anonymous caller uses the ip bucket: %d", w.Code)
	}
}

func TestRateLimiter_ReplayedUploadSkipsLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 1, KeyByUserOrIP())
	seen := func(_ context.Context, userID, scope, key string, _ time.Time) (bool, error) {
		return userID == "alice" && scope == "videos.upload" && key == "retry-1", nil
	}
	r := limitedEngine(rl, IdempotencyValidator(IdempotencyOptions{Scope: "videos.upload"}, seen))

	if w := hit(r, http.MethodPost, "alice", "192.0.2.1", nil); w.Code != http.StatusCreated {
		t.Fatalf("first upload: %d", w.Code)
	}
	if w := hit(r, http.MethodPost, "alice", "192.0.2.1", nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second fresh upload: want 429, got %d", w.Code)
	}
	replay := map[string]string{HeaderIdempotencyKey: "retry-1"}
	for i := 0; i < 3; i++ {
		if w := hit(r, http.MethodPost, "alice", "192.0.2.1", replay); w.Code != http.StatusCreated {
			t.Fatalf("replay %d: want pass-through, got %d", i, w.Code)
		}
	}
	unknown := map[string]string{HeaderIdempotencyKey: "retry-2"}
	if w := hit(r, http.MethodPost, "alice", "192.0.2.1", unknown); w.Code != http.StatusTooManyRequests {
		t.Fatalf("unseen key: want 429, got %d", w.Code)
	}
}

func TestIsRateBypass_NonBool(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if IsRateBypass(c) {
		t.Fatalf("unset flag must read false")
	}
	c.Set(ctxKeyRateBypass, "true")
	if IsRateBypass(c) {
		t.Fatalf("non-bool flag must read false")
	}
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 0, KeyByUserOrIP())
	if rl.burst != 1 {
		t.Fatalf("burst not coerced to 1: %d", rl.burst)
	}
	if rl.getVisitor("user:a") != rl.getVisitor("user:a") {
		t.Fatalf("bucket not reused")
	}

	rl.mu.Lock()
	rl.visitors["ip:idle"] = &visitor{limiter: rate.NewLimiter(1, 1), lastSeen: time.Now().Add(-2 * visitorTTL)}
	rl.cleanupN = visitorGCEveryN - 1
	rl.mu.Unlock()

	_ = rl.getVisitor("user:b")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.visitors["ip:idle"]; ok {
		t.Fatalf("idle visitor survived the sweep")
	}
	if _, ok := rl.visitors["user:a"]; !ok {
		t.Fatalf("recent visitor evicted")
	}
	if rl.cleanupN != 0 {
		t.Fatalf("sweep counter not reset: %d", rl.cleanupN)
	}
}
