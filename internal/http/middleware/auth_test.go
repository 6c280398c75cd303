package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-video-backend/internal/auth"
)

func newAuthRouter(t *testing.T, mw gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), mw)
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	return r
}

func TestAuth_RequiresValidBearer(t *testing.T) {
	tokens := auth.NewTokens("0123456789abcdef", time.Hour)
	tok, _, err := tokens.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	r := newAuthRouter(t, Auth(tokens))

	cases := map[string]struct {
		header string
		code   int
	}{
		"missing":    {"", http.StatusUnauthorized},
		"wrong type": {"Basic abc", http.StatusUnauthorized},
		"garbage":    {"Bearer not-a-jwt", http.StatusUnauthorized},
		"valid":      {"Bearer " + tok, http.StatusOK},
		"lowercase":  {"bearer " + tok, http.StatusOK},
	}
	for name, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.code {
			t.Fatalf("%s: code = %d, want %d", name, w.Code, tc.code)
		}
		if tc.code == http.StatusOK && w.Body.String() != "user-1" {
			t.Fatalf("%s: user = %q", name, w.Body.String())
		}
		if tc.code == http.StatusUnauthorized {
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("%s: invalid json: %v", name, err)
			}
			if body["code"] != "unauthorized" || body["success"] != false {
				t.Fatalf("%s: body = %v", name, body)
			}
			if w.Header().Get("WWW-Authenticate") == "" {
				t.Fatalf("%s: missing WWW-Authenticate", name)
			}
		}
	}
}

func TestOptionalAuth_AnonymousAllowed(t *testing.T) {
	tokens := auth.NewTokens("0123456789abcdef", time.Hour)
	tok, _, _ := tokens.Issue("user-2")
	r := newAuthRouter(t, OptionalAuth(tokens))

	cases := []struct{ header, want string }{
		{"", ""},
		{"Bearer garbage", ""},
		{"Bearer " + tok, "user-2"},
	}
	for _, tc := range cases {
		header, want := tc.header, tc.want
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("header %q: code=%d user=%q", header, w.Code, w.Body.String())
		}
	}
}
