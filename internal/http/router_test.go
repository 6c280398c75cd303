package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-video-backend/internal/auth"
	"github.com/tbourn/go-video-backend/internal/config"
	"github.com/tbourn/go-video-backend/internal/events"
	"github.com/tbourn/go-video-backend/internal/http/middleware"
	"github.com/tbourn/go-video-backend/internal/repo"
	"github.com/tbourn/go-video-backend/internal/storage"
)

// --- test DB helper (pure-Go sqlite, no CGO) ---
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:routerdb_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		APIBasePath:       "/api/v1",
		AppEnv:            "development",
		RateRPS:           1000,
		RateBurst:         1000,
		MaxBodyBytes:      1 << 20,
		HistoryMaxEntries: 100,
		IdempotencyTTL:    time.Hour,
		Upload:            config.UploadConfig{TTL: time.Hour, MaxUploadBytes: 1 << 20},
		CORS:              config.CORSConfig{AllowedOrigins: nil},
		Security:          config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:              config.OTELConfig{ServiceName: "test-svc"},
	}
}

type testAPI struct {
	r      *gin.Engine
	db     *gorm.DB
	videos *storage.MemoryStorage
	events *events.Recorder
	svc    *Services
}

func newTestAPI(t *testing.T, cfg config.Config) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a := &testAPI{
		r:      gin.New(),
		db:     newTestDB(t),
		videos: storage.NewMemoryStorage("/static/videos"),
		events: &events.Recorder{},
	}
	a.svc = RegisterRoutes(a.r, Deps{
		DB:      a.db,
		Tokens:  auth.NewTokens("0123456789abcdef0123456789abcdef", time.Hour),
		Avatars: storage.NewMemoryStorage("/static/profile"),
		Videos:  a.videos,
		Events:  a.events,
	}, cfg)
	return a
}

type request struct {
	method, path, token string
	body                io.Reader
	contentType         string
	headers             map[string]string
}

func (a *testAPI) do(t *testing.T, rq request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(rq.method, rq.path, rq.body)
	if rq.contentType != "" {
		req.Header.Set("Content-Type", rq.contentType)
	}
	if rq.token != "" {
		req.Header.Set("Authorization", "Bearer "+rq.token)
	}
	for k, v := range rq.headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)

	body := map[string]any{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &body)
	}
	return w, body
}

func (a *testAPI) json(t *testing.T, method, path, token string, payload any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}
	return a.do(t, request{method: method, path: path, token: token, body: body, contentType: "application/json"})
}

// register creates an account and returns (token, userID).
func (a *testAPI) register(t *testing.T, username string) (string, string) {
	t.Helper()
	w, body := a.json(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"fullname": "Test User",
		"username": username,
		"email":    username + "@example.com",
		"password": "Str0ng!pass",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: %d %s", username, w.Code, w.Body.String())
	}
	user := body["user"].(map[string]any)
	return body["token"].(string), user["id"].(string)
}

func (a *testAPI) createChannel(t *testing.T, token, name string) string {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", name)
	_ = mw.Close()
	w, body := a.do(t, request{
		method: http.MethodPost, path: "/api/v1/channels", token: token,
		body: &buf, contentType: mw.FormDataContentType(),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create channel: %d %s", w.Code, w.Body.String())
	}
	return body["channel"].(map[string]any)["id"].(string)
}

func uploadForm(t *testing.T, title string, duration int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("video", "clip.mp4")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write([]byte("fake video bytes"))
	_ = mw.WriteField("title", title)
	_ = mw.WriteField("description", "a clip #demo")
	_ = mw.WriteField("category", "Education")
	_ = mw.WriteField("duration", fmt.Sprint(duration))
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func (a *testAPI) upload(t *testing.T, token, title string, duration int, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	buf, ct := uploadForm(t, title, duration)
	return a.do(t, request{
		method: http.MethodPost, path: "/api/v1/videos/upload", token: token,
		body: buf, contentType: ct, headers: headers,
	})
}

func count(body map[string]any) int {
	n, _ := body["count"].(float64)
	return int(n)
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	a := newTestAPI(t, testConfig())

	w, _ := a.do(t, request{method: http.MethodGet, path: "/health"})
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" || w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing request id or security headers: %#v", w.Header())
	}

	w, _ = a.do(t, request{method: http.MethodGet, path: "/metrics"})
	if w.Code != http.StatusOK || w.Body.Len() == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	w, body := a.do(t, request{method: http.MethodGet, path: "/nope"})
	if w.Code != http.StatusNotFound || body["success"] != false || body["code"] != "not_found" {
		t.Fatalf("GET /nope expected 404 envelope, got %d %v", w.Code, body)
	}

	w, _ = a.do(t, request{method: http.MethodPost, path: "/health"})
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	cfg := testConfig()
	cfg.CORS = config.CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	a := newTestAPI(t, cfg)

	w, _ := a.do(t, request{method: http.MethodGet, path: "/health", headers: map[string]string{"Origin": "http://example.com"}})
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
}

func TestAuthRequired(t *testing.T) {
	a := newTestAPI(t, testConfig())

	for _, path := range []string{"/api/v1/users/me", "/api/v1/history/my-history", "/api/v1/notifications"} {
		w, body := a.do(t, request{method: http.MethodGet, path: path})
		if w.Code != http.StatusUnauthorized || body["code"] != "unauthorized" {
			t.Fatalf("GET %s: want 401, got %d %v", path, w.Code, body)
		}
	}
	w, _ := a.do(t, request{method: http.MethodGet, path: "/api/v1/users/me", token: "garbage"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: want 401, got %d", w.Code)
	}
}

func TestUsers_RegisterLoginMe(t *testing.T) {
	a := newTestAPI(t, testConfig())
	token, uid := a.register(t, "alice")

	w, body := a.json(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"fullname": "Alice Again", "username": "alice", "email": "other@example.com", "password": "Str0ng!pass",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: want 409, got %d %v", w.Code, body)
	}

	w, body = a.json(t, http.MethodPost, "/api/v1/users/register", "", map[string]string{
		"fullname": "X", "username": "Bad Name", "email": "nope", "password": "weak",
	})
	if w.Code != http.StatusBadRequest || body["code"] != "validation_failed" {
		t.Fatalf("invalid register: want 400 validation_failed, got %d %v", w.Code, body)
	}
	if fields, _ := body["fields"].([]any); len(fields) != 4 {
		t.Fatalf("want 4 field errors, got %v", body["fields"])
	}

	w, body = a.json(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{"email": "alice@example.com", "password": "Str0ng!pass"})
	if w.Code != http.StatusOK || body["token"] == "" {
		t.Fatalf("login: %d %v", w.Code, body)
	}
	w, _ = a.json(t, http.MethodPost, "/api/v1/users/login", "", map[string]string{"username": "alice", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: want 401, got %d", w.Code)
	}

	w, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/users/me", token: token})
	if w.Code != http.StatusOK || body["user"].(map[string]any)["id"] != uid {
		t.Fatalf("me: %d %v", w.Code, body)
	}
	if _, leaked := body["user"].(map[string]any)["passwordHash"]; leaked {
		t.Fatalf("password hash serialized")
	}
}

func TestVideos_UploadCompleteFeedsAndLikes(t *testing.T) {
	a := newTestAPI(t, testConfig())
	tokenA, _ := a.register(t, "creator")
	tokenB, _ := a.register(t, "viewer")
	a.createChannel(t, tokenA, "Creator Channel")

	w, body := a.upload(t, tokenA, "Short one", 30, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: %d %s", w.Code, w.Body.String())
	}
	video := body["video"].(map[string]any)
	vid := video["id"].(string)
	if video["status"] != "temporary" || video["expiresAt"] == nil {
		t.Fatalf("fresh upload must be temporary with expiry: %v", video)
	}
	if a.videos.Len() != 1 {
		t.Fatalf("blob not stored")
	}

	// Temporary videos stay out of every feed.
	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/shorts"})
	if count(body) != 0 {
		t.Fatalf("temporary video listed: %v", body)
	}
	w, _ = a.do(t, request{method: http.MethodGet, path: "/api/v1/videos/" + vid})
	if w.Code != http.StatusNotFound {
		t.Fatalf("temporary video readable: %d", w.Code)
	}

	// Only the owner can complete.
	w, _ = a.do(t, request{method: http.MethodPost, path: "/api/v1/videos/" + vid + "/complete", token: tokenB})
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign complete: want 404, got %d", w.Code)
	}
	w, body = a.do(t, request{method: http.MethodPost, path: "/api/v1/videos/" + vid + "/complete", token: tokenA})
	if w.Code != http.StatusOK || body["video"].(map[string]any)["status"] != "completed" {
		t.Fatalf("complete: %d %v", w.Code, body)
	}
	w, _ = a.do(t, request{method: http.MethodPost, path: "/api/v1/videos/" + vid + "/complete", token: tokenA})
	if w.Code != http.StatusNotFound {
		t.Fatalf("second complete: want 404, got %d", w.Code)
	}

	w, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/shorts"})
	if w.Code != http.StatusOK || count(body) != 1 {
		t.Fatalf("shorts after complete: %d %v", w.Code, body)
	}
	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}
	w, _ = a.do(t, request{method: http.MethodGet, path: "/api/v1/shorts", headers: map[string]string{"If-None-Match": etag}})
	if w.Code != http.StatusNotModified {
		t.Fatalf("If-None-Match: want 304, got %d", w.Code)
	}
	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/videos"})
	if count(body) != 0 {
		t.Fatalf("short listed in long-form feed: %v", body)
	}

	// B likes, a second like conflicts, then B unlikes.
	w, body = a.do(t, request{method: http.MethodPost, path: "/api/v1/likes/" + vid, token: tokenB})
	if w.Code != http.StatusOK || body["likes"] != float64(1) {
		t.Fatalf("like: %d %v", w.Code, body)
	}
	w, body = a.do(t, request{method: http.MethodPost, path: "/api/v1/likes/" + vid, token: tokenB})
	if w.Code != http.StatusConflict || body["message"] != "Video already liked" {
		t.Fatalf("second like: %d %v", w.Code, body)
	}
	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/likes/check/" + vid, token: tokenB})
	if body["isLiked"] != true {
		t.Fatalf("check after like: %v", body)
	}
	w, body = a.do(t, request{method: http.MethodDelete, path: "/api/v1/likes/" + vid, token: tokenB})
	if w.Code != http.StatusOK || body["likes"] != float64(0) {
		t.Fatalf("unlike: %d %v", w.Code, body)
	}
	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/likes/check/" + vid, token: tokenB})
	if body["isLiked"] != false {
		t.Fatalf("check after unlike: %v", body)
	}

	// The like notified the creator.
	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/notifications/unread-count", token: tokenA})
	if body["unreadCount"] != float64(1) {
		t.Fatalf("creator notifications: %v", body)
	}
	if len(a.events.Events()) != 1 {
		t.Fatalf("want 1 published event, got %d", len(a.events.Events()))
	}

	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/videos/my-videos", token: tokenA})
	if count(body) != 1 {
		t.Fatalf("my-videos: %v", body)
	}
}

func TestVideos_FeedETagTracksCounters(t *testing.T) {
	a := newTestAPI(t, testConfig())
	tokenA, _ := a.register(t, "creator")
	tokenB, _ := a.register(t, "viewer")

	_, body := a.upload(t, tokenA, "Counted", 45, nil)
	vid := body["video"].(map[string]any)["id"].(string)
	if w, _ := a.do(t, request{method: http.MethodPost, path: "/api/v1/videos/" + vid + "/complete", token: tokenA}); w.Code != http.StatusOK {
		t.Fatalf("complete: %d", w.Code)
	}

	revalidate := func(etag string) (*httptest.ResponseRecorder, map[string]any) {
		return a.do(t, request{method: http.MethodGet, path: "/api/v1/shorts", headers: map[string]string{"If-None-Match": etag}})
	}
	first := func(body map[string]any) map[string]any {
		return body["videos"].([]any)[0].(map[string]any)
	}

	w, _ := a.do(t, request{method: http.MethodGet, path: "/api/v1/shorts"})
	etag := w.Header().Get("ETag")

	if w, _ := a.do(t, request{method: http.MethodPost, path: "/api/v1/likes/" + vid, token: tokenB}); w.Code != http.StatusOK {
		t.Fatalf("like: %d", w.Code)
	}
	w, body = revalidate(etag)
	if w.Code != http.StatusOK || w.Header().Get("ETag") == etag {
		t.Fatalf("after like: %d etag=%q (was %q)", w.Code, w.Header().Get("ETag"), etag)
	}
	if first(body)["likes"] != float64(1) {
		t.Fatalf("stale likes: %v", first(body))
	}
	etag = w.Header().Get("ETag")

	if w, _ := a.do(t, request{method: http.MethodPost, path: "/api/v1/history/" + vid, token: tokenB}); w.Code != http.StatusOK {
		t.Fatalf("history: %d", w.Code)
	}
	w, body = revalidate(etag)
	if w.Code != http.StatusOK || w.Header().Get("ETag") == etag {
		t.Fatalf("after view: %d etag=%q (was %q)", w.Code, w.Header().Get("ETag"), etag)
	}
	if first(body)["views"] != float64(1) {
		t.Fatalf("stale views: %v", first(body))
	}

	if w, _ := revalidate(w.Header().Get("ETag")); w.Code != http.StatusNotModified {
		t.Fatalf("unchanged feed: want 304, got %d", w.Code)
	}
}

func TestVideos_LocalStoreServesUploads(t *testing.T) {
	a := newTestAPI(t, testConfig())
	token, _ := a.register(t, "uploader")

	_, body := a.upload(t, token, "Served", 30, nil)
	url := body["video"].(map[string]any)["videoUrl"].(string)
	if url == "" || url[0] != '/' {
		t.Fatalf("unexpected video url %q", url)
	}
	w, _ := a.do(t, request{method: http.MethodGet, path: url})
	if w.Code != http.StatusOK || w.Body.String() != "fake video bytes" {
		t.Fatalf("GET %s = %d %q", url, w.Code, w.Body.String())
	}
	if w, _ := a.do(t, request{method: http.MethodGet, path: "/static/videos/nope.mp4"}); w.Code != http.StatusNotFound {
		t.Fatalf("missing blob = %d", w.Code)
	}
}

func TestSearch_StopwordsFromConfig(t *testing.T) {
	a := newTestAPI(t, testConfig())
	if w, _ := a.do(t, request{method: http.MethodGet, path: "/api/v1/search/videos?q=the"}); w.Code != http.StatusOK {
		t.Fatalf("no stopwords configured: %d", w.Code)
	}

	cfg := testConfig()
	cfg.Search = config.SearchConfig{Stopwords: []string{"the"}, MaxTerms: 4}
	a = newTestAPI(t, cfg)
	w, body := a.do(t, request{method: http.MethodGet, path: "/api/v1/search/videos?q=The"})
	if w.Code != http.StatusBadRequest || body["message"] != "Search query is required" {
		t.Fatalf("stopword-only query: %d %v", w.Code, body)
	}
}

func TestVideos_IdempotentUploadReplays(t *testing.T) {
	a := newTestAPI(t, testConfig())
	token, _ := a.register(t, "uploader")
	key := map[string]string{middleware.HeaderIdempotencyKey: "upload-key-1"}

	w1, body1 := a.upload(t, token, "First", 120, key)
	if w1.Code != http.StatusCreated {
		t.Fatalf("first upload: %d %s", w1.Code, w1.Body.String())
	}
	w2, body2 := a.upload(t, token, "First", 120, key)
	if w2.Code != http.StatusOK || w2.Header().Get("Idempotency-Replayed") != "true" {
		t.Fatalf("replay: %d headers=%v", w2.Code, w2.Header())
	}
	id1 := body1["video"].(map[string]any)["id"]
	id2 := body2["video"].(map[string]any)["id"]
	if id1 != id2 {
		t.Fatalf("replay returned a different video: %v vs %v", id1, id2)
	}
	if a.videos.Len() != 1 {
		t.Fatalf("replay uploaded again: %d blobs", a.videos.Len())
	}

	w, body := a.upload(t, token, "Bad key", 120, map[string]string{middleware.HeaderIdempotencyKey: "has spaces!"})
	if w.Code != http.StatusBadRequest || body["code"] != "bad_idempotency_key" {
		t.Fatalf("bad key: %d %v", w.Code, body)
	}
}

func TestVideos_UploadTooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.Upload.MaxUploadBytes = 64
	a := newTestAPI(t, cfg)
	token, _ := a.register(t, "bigfile")

	w, body := a.upload(t, token, "Huge", 120, nil)
	if w.Code != http.StatusRequestEntityTooLarge || body["code"] != "payload_too_large" {
		t.Fatalf("want 413, got %d %v", w.Code, body)
	}
}

func TestHistory_DedupAndClear(t *testing.T) {
	a := newTestAPI(t, testConfig())
	token, _ := a.register(t, "watcher")

	var ids []string
	for i := 0; i < 2; i++ {
		_, body := a.upload(t, token, fmt.Sprintf("Video %d", i), 90, nil)
		id := body["video"].(map[string]any)["id"].(string)
		a.do(t, request{method: http.MethodPost, path: "/api/v1/videos/" + id + "/complete", token: token})
		ids = append(ids, id)
	}

	for _, id := range []string{ids[0], ids[1], ids[0]} {
		w, _ := a.do(t, request{method: http.MethodPost, path: "/api/v1/history/" + id, token: token})
		if w.Code != http.StatusOK {
			t.Fatalf("add history: %d", w.Code)
		}
	}
	_, body := a.do(t, request{method: http.MethodGet, path: "/api/v1/history/my-history", token: token})
	videos := body["videos"].([]any)
	if len(videos) != 2 || videos[0].(map[string]any)["videoId"] != ids[0] {
		t.Fatalf("history must hold each video once, most recent first: %v", body)
	}

	w, _ := a.do(t, request{method: http.MethodPost, path: "/api/v1/history/not-a-uuid", token: token})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: want 400, got %d", w.Code)
	}

	w, _ = a.do(t, request{method: http.MethodDelete, path: "/api/v1/history/clear", token: token})
	if w.Code != http.StatusOK {
		t.Fatalf("clear: %d", w.Code)
	}
	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/history/my-history", token: token})
	if count(body) != 0 {
		t.Fatalf("history not cleared: %v", body)
	}
}

func TestSubscriptions_Lifecycle(t *testing.T) {
	a := newTestAPI(t, testConfig())
	tokenA, _ := a.register(t, "owner")
	tokenB, _ := a.register(t, "fan")
	chID := a.createChannel(t, tokenA, "Owner TV")

	w, _ := a.json(t, http.MethodPost, "/api/v1/subscriptions/"+chID, tokenA, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("self subscribe: want 400, got %d", w.Code)
	}
	w, _ = a.json(t, http.MethodPost, "/api/v1/subscriptions/"+chID, tokenB, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("subscribe: %d %s", w.Code, w.Body.String())
	}
	w, _ = a.json(t, http.MethodPost, "/api/v1/subscriptions/"+chID, tokenB, map[string]string{"tier": "premium"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate subscribe: want 409, got %d", w.Code)
	}
	_, body := a.do(t, request{method: http.MethodGet, path: "/api/v1/subscriptions/check/" + chID, token: tokenB})
	if body["isSubscribed"] != true {
		t.Fatalf("check: %v", body)
	}
	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/channels/" + chID})
	if body["channel"].(map[string]any)["subscribersCount"] != float64(1) {
		t.Fatalf("counter: %v", body)
	}
	_, body = a.do(t, request{method: http.MethodGet, path: "/api/v1/subscriptions/channel/" + chID + "/subscribers"})
	if count(body) != 1 {
		t.Fatalf("subscribers: %v", body)
	}

	w, _ = a.do(t, request{method: http.MethodDelete, path: "/api/v1/subscriptions/" + chID, token: tokenB})
	if w.Code != http.StatusOK {
		t.Fatalf("unsubscribe: %d", w.Code)
	}
	w, _ = a.do(t, request{method: http.MethodDelete, path: "/api/v1/subscriptions/" + chID, token: tokenB})
	if w.Code != http.StatusNotFound {
		t.Fatalf("second unsubscribe: want 404, got %d", w.Code)
	}
}

func TestPlaylists_PrivateVisibility(t *testing.T) {
	a := newTestAPI(t, testConfig())
	tokenA, _ := a.register(t, "curator")
	tokenB, _ := a.register(t, "stranger")

	w, body := a.json(t, http.MethodPost, "/api/v1/playlists", tokenA, map[string]string{"title": "Secret", "visibility": "private"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create playlist: %d %v", w.Code, body)
	}
	pid := body["playlist"].(map[string]any)["id"].(string)

	w, _ = a.do(t, request{method: http.MethodGet, path: "/api/v1/playlists/" + pid})
	if w.Code != http.StatusForbidden {
		t.Fatalf("anonymous read of private playlist: want 403, got %d", w.Code)
	}
	w, _ = a.do(t, request{method: http.MethodGet, path: "/api/v1/playlists/" + pid, token: tokenA})
	if w.Code != http.StatusOK {
		t.Fatalf("owner read: want 200, got %d", w.Code)
	}
	w, _ = a.json(t, http.MethodPut, "/api/v1/playlists/"+pid, tokenB, map[string]string{"title": "Mine now"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign update: want 403, got %d", w.Code)
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}

	r2 := gin.New()
	r2.Use(limitBody(0))
	r2.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	})
	w = httptest.NewRecorder()
	r2.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")))
	if w.Code != http.StatusOK || w.Body.String() != "0123456789AB" {
		t.Fatalf("zero cap must disable the limit, got %d %q", w.Code, w.Body.String())
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	groupWithPrefix(r, "/").GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	groupWithPrefix(r, "").GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })
	groupWithPrefix(r, "/api").GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for path, want := range map[string]string{"/one": "one", "/two": "two", "/api/ping": "pong"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != want {
			t.Fatalf("GET %s got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}
