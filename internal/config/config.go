// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes server timeouts,
// logging, persistence, object storage, auth, upload lifecycle, messaging,
// rate limiting, and observability settings.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "go-video-backend")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// BucketConfig describes one object-storage bucket. Profile images and video
// assets live in separate buckets, each with its own credentials.
type BucketConfig struct {
	Bucket    string // S3_<KIND>_BUCKET
	Region    string // S3_<KIND>_REGION, falls back to S3_REGION
	Endpoint  string // S3_<KIND>_ENDPOINT, falls back to S3_ENDPOINT (MinIO, R2, ...)
	AccessKey string // S3_<KIND>_ACCESS_KEY, falls back to S3_ACCESS_KEY
	SecretKey string // S3_<KIND>_SECRET_KEY, falls back to S3_SECRET_KEY
	PublicURL string // S3_<KIND>_PUBLIC_URL; base for returned object URLs
}

// Enabled reports whether the bucket is configured. Without a bucket name the
// application falls back to in-process storage.
func (b BucketConfig) Enabled() bool { return strings.TrimSpace(b.Bucket) != "" }

// AuthConfig holds bearer-token settings.
type AuthConfig struct {
	JWTSecret string        // JWT_SECRET
	TokenTTL  time.Duration // JWT_TTL
}

// UploadConfig governs the temporary-upload lifecycle.
type UploadConfig struct {
	TTL            time.Duration // UPLOAD_TTL: how long a temporary video lives before reclamation
	SweepInterval  time.Duration // SWEEP_INTERVAL: reclamation sweep period
	MaxUploadBytes int64         // MAX_UPLOAD_BYTES: multipart body limit for upload routes
}

// KafkaConfig configures the notification event publisher.
type KafkaConfig struct {
	Brokers            []string // KAFKA_BROKERS (CSV); empty disables publishing
	NotificationsTopic string   // KAFKA_NOTIFICATIONS_TOPIC
}

// SearchConfig tunes query tokenization.
type SearchConfig struct {
	Stopwords []string // SEARCH_STOPWORDS (CSV); words dropped from queries
	MaxTerms  int      // SEARCH_MAX_TERMS: terms kept per query
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// App
	AppEnv            string // development|production; controls error detail in responses
	DBPath            string // SQLite path
	DatabaseURL       string // PostgreSQL DSN; takes precedence over DBPath when set
	HistoryMaxEntries int    // watch-history cap per user
	MaxBodyBytes      int64  // JSON body limit

	// Collaborators
	Auth          AuthConfig
	Upload        UploadConfig
	ProfileBucket BucketConfig
	VideoBucket   BucketConfig
	Kafka         KafkaConfig
	Search        SearchConfig

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Idempotency
	IdempotencyTTL time.Duration // how long a given Idempotency-Key is valid

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api/v1")),

		// App
		AppEnv:            strings.ToLower(getenv("APP_ENV", "production")),
		DBPath:            getenv("DB_PATH", "app.db"),
		DatabaseURL:       getenv("DATABASE_URL", ""),
		HistoryMaxEntries: getint("HISTORY_MAX_ENTRIES", 1000),
		MaxBodyBytes:      int64(getint("MAX_BODY_BYTES", 1<<20)),

		// Collaborators
		Auth: AuthConfig{
			JWTSecret: getenv("JWT_SECRET", ""),
			TokenTTL:  getdur("JWT_TTL", 7*24*time.Hour),
		},
		Upload: UploadConfig{
			TTL:            getdur("UPLOAD_TTL", 24*time.Hour),
			SweepInterval:  getdur("SWEEP_INTERVAL", 15*time.Minute),
			MaxUploadBytes: int64(getint("MAX_UPLOAD_BYTES", 512<<20)),
		},
		ProfileBucket: bucket("PROFILE"),
		VideoBucket:   bucket("VIDEO"),
		Kafka: KafkaConfig{
			Brokers:            splitCSV(getenv("KAFKA_BROKERS", "")),
			NotificationsTopic: getenv("KAFKA_NOTIFICATIONS_TOPIC", "notifications"),
		},
		Search: SearchConfig{
			Stopwords: splitCSV(getenv("SEARCH_STOPWORDS", "a,an,and,the,of,to,in,on,for,with")),
			MaxTerms:  getint("SEARCH_MAX_TERMS", 8),
		},

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Idempotency
		IdempotencyTTL: getdur("IDEMPOTENCY_TTL", 24*time.Hour),

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-video-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}
	if cfg.AppEnv == "dev" {
		cfg.AppEnv = "development"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	if cfg.HistoryMaxEntries < 1 {
		return cfg, errors.New("HISTORY_MAX_ENTRIES must be >= 1")
	}
	if cfg.MaxBodyBytes <= 0 || cfg.Upload.MaxUploadBytes <= 0 {
		return cfg, errors.New("MAX_BODY_BYTES and MAX_UPLOAD_BYTES must be > 0")
	}
	if len(cfg.Auth.JWTSecret) < 16 {
		return cfg, errors.New("JWT_SECRET must be at least 16 characters")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return cfg, errors.New("JWT_TTL must be > 0")
	}
	if cfg.Upload.TTL <= 0 || cfg.Upload.SweepInterval <= 0 {
		return cfg, errors.New("UPLOAD_TTL and SWEEP_INTERVAL must be > 0")
	}
	if cfg.Search.MaxTerms < 1 {
		return cfg, errors.New("SEARCH_MAX_TERMS must be >= 1")
	}
	if len(cfg.Kafka.Brokers) > 0 && strings.TrimSpace(cfg.Kafka.NotificationsTopic) == "" {
		return cfg, errors.New("KAFKA_NOTIFICATIONS_TOPIC must not be empty when KAFKA_BROKERS is set")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.IdempotencyTTL <= 0 {
		return cfg, errors.New("IDEMPOTENCY_TTL must be > 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}
	return cfg, nil
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c Config) IsDevelopment() bool { return c.AppEnv == "development" }

// ---- helpers (no external deps) ----

// bucket reads S3_<kind>_* keys, falling back to the shared S3_* keys.
func bucket(kind string) BucketConfig {
	shared := func(k, def string) string {
		return getenv("S3_"+kind+"_"+k, getenv("S3_"+k, def))
	}
	return BucketConfig{
		Bucket:    getenv("S3_"+kind+"_BUCKET", ""),
		Region:    shared("REGION", "us-east-1"),
		Endpoint:  shared("ENDPOINT", ""),
		AccessKey: shared("ACCESS_KEY", ""),
		SecretKey: shared("SECRET_KEY", ""),
		PublicURL: getenv("S3_"+kind+"_PUBLIC_URL", ""),
	}
}

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
