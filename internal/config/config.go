package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"fukuro_studio/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageFile     = "file"

	SessionRedis  = "redis"
	SessionMemory = "memory"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port          int
	LogLevel      string
	PublicBaseURL string
	CORSOrigins   []string
	Timezone      string

	// Pricing
	RatesFile string
	Rates     entities.RateSchedule

	// Persistence
	StorageDriver    string
	DataDir          string
	QuotesTable      string
	ProjectsTable    string
	PaymentsTable    string
	AWSRegion        string
	DynamoEndpoint   string
	DynamoAutoCreate bool

	// Intake sessions
	SessionStore  string
	RedisURL      string
	SessionTTL    time.Duration
	ChatRateLimit float64
	ChatBurst     int

	// Extraction (Gemini)
	GeminiAPIKey      string
	GeminiModel       string
	ExtractionTimeout time.Duration

	// Resilience
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int

	// Notifications
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	StudioEmail  string

	// Object storage
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	UploadURLTTL   time.Duration

	// Payments
	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool

	// Auth
	JWTSecret         string
	JWTTTL            time.Duration
	AdminUsername     string
	AdminPasswordHash string
}

// Load reads configuration from environment variables with defaults. The rate
// schedule starts from the published rates, is overlaid by RATES_FILE (YAML)
// and then by RATE_* variables, and must validate.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnvInt("PORT", 8080),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		CORSOrigins:   getEnvList("CORS_ORIGINS", []string{"*"}),
		Timezone:      getEnv("STUDIO_TIMEZONE", "America/Mexico_City"),

		RatesFile: getEnv("RATES_FILE", ""),

		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", StorageDynamoDB)),
		DataDir:        getEnv("DATA_DIR", "data"),
		QuotesTable:    getEnv("DYNAMODB_QUOTES_TABLE", "quotes"),
		ProjectsTable:  getEnv("DYNAMODB_PROJECTS_TABLE", "projects"),
		PaymentsTable:  getEnv("DYNAMODB_PAYMENTS_TABLE", "billing_payments"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		DynamoEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		// Local DynamoDB starts empty; production tables are provisioned outside the service.
		DynamoAutoCreate: getEnvBool("DYNAMODB_AUTO_CREATE", false),

		SessionStore:  strings.ToLower(getEnv("SESSION_STORE", SessionMemory)),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379/0"),
		SessionTTL:    getEnvDuration("SESSION_TTL", 24*time.Hour),
		ChatRateLimit: getEnvFloat("CHAT_RATE_LIMIT", 1),
		ChatBurst:     getEnvInt("CHAT_RATE_BURST", 5),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ExtractionTimeout: getEnvDuration("EXTRACTION_TIMEOUT", 20*time.Second),

		MaxRetries:     getEnvInt("MAX_RETRIES", 2),
		InitialBackoff: getEnvDuration("INITIAL_BACKOFF", 200*time.Millisecond),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 10),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "cotizaciones@fukuro.studio"),
		StudioEmail:  getEnv("STUDIO_EMAIL", ""),

		MinioEndpoint:  getEnv("MINIO_ENDPOINT", ""),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", ""),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", ""),
		MinioBucket:    getEnv("MINIO_BUCKET", "deliverables"),
		MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),
		UploadURLTTL:   getEnvDuration("UPLOAD_URL_TTL", 15*time.Minute),

		MercadoPagoAccessToken:     getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoTestPayerEmail:  getEnv("MERCADOPAGO_TEST_PAYER_EMAIL", ""),
		MercadoPagoTestPayerUserID: getEnv("MERCADOPAGO_TEST_PAYER_USER_ID", ""),
		PaymentGatewayMock:         getEnvBool("PAYMENT_GATEWAY_MOCK", false) || getEnvBool("MERCADOPAGO_MOCK", false),

		JWTSecret:         getEnv("JWT_SECRET", "fukuro-dev-secret-change-me"),
		JWTTTL:            getEnvDuration("JWT_TTL", 12*time.Hour),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	rates, err := LoadRates(cfg.RatesFile)
	if err != nil {
		return nil, err
	}
	cfg.Rates = rates

	switch cfg.StorageDriver {
	case StorageDynamoDB, StorageFile:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	switch cfg.SessionStore {
	case SessionRedis, SessionMemory:
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q", cfg.SessionStore)
	}

	return cfg, nil
}

// Location resolves the studio timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoadRates builds the rate schedule from defaults, an optional YAML file and
// RATE_* environment overrides.
func LoadRates(path string) (entities.RateSchedule, error) {
	rates := entities.DefaultRateSchedule()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return entities.RateSchedule{}, fmt.Errorf("read rates file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &rates); err != nil {
			return entities.RateSchedule{}, fmt.Errorf("parse rates file: %w", err)
		}
	}

	rates.BaseFee = getEnvFloat("RATE_BASE_FEE", rates.BaseFee)
	rates.AudioTier1 = getEnvFloat("RATE_AUDIO_TIER1", rates.AudioTier1)
	rates.AudioTier2 = getEnvFloat("RATE_AUDIO_TIER2", rates.AudioTier2)
	rates.VideoTier1 = getEnvFloat("RATE_VIDEO_TIER1", rates.VideoTier1)
	rates.VideoTier2 = getEnvFloat("RATE_VIDEO_TIER2", rates.VideoTier2)
	rates.UrgencyPercent = getEnvFloat("RATE_URGENCY_PERCENT", rates.UrgencyPercent)

	if err := validator.New().Struct(rates); err != nil {
		return entities.RateSchedule{}, fmt.Errorf("invalid rate schedule: %w", err)
	}
	return rates, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
