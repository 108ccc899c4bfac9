package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	// Database
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	RunMigrations     bool

	// Security
	APIKey         string   // API key for admin routes
	JWTSecret      string   // HMAC secret shared with the identity provider
	JWTIssuer      string   // expected "iss" claim, empty disables the check
	TrustedProxies []string // proxies allowed to set X-Forwarded-For

	// Leaderboard
	ProfileCacheSize int
	ProfileCacheTTL  time.Duration

	// Background jobs
	WorkerCount       int
	LockWatchInterval time.Duration

	// Notifications
	DiscordWebhookURL string
	NotifyTopN        int

	// Team logo storage (S3 compatible)
	Logo LogoStorageConfig
}

// LogoStorageConfig configures the S3 compatible bucket used for team logos
type LogoStorageConfig struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// Enabled reports whether logo uploads can be served
func (l LogoStorageConfig) Enabled() bool {
	return l.Bucket != "" && l.AccessKeyID != "" && l.SecretAccessKey != ""
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "playpredix"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		RunMigrations:     getEnvAsBool("RUN_MIGRATIONS", true),

		APIKey:         getEnv("API_KEY", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTIssuer:      getEnv("JWT_ISSUER", ""),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),

		ProfileCacheSize: getEnvAsInt("PROFILE_CACHE_SIZE", DefaultProfileCacheSize),
		ProfileCacheTTL:  getEnvAsDuration("PROFILE_CACHE_TTL", DefaultProfileCacheTTL),

		WorkerCount:       getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		LockWatchInterval: getEnvAsDuration("LOCK_WATCH_INTERVAL", DefaultLockWatchInterval),

		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),
		NotifyTopN:        getEnvAsInt("NOTIFY_TOP_N", DefaultNotifyTopN),

		Logo: LogoStorageConfig{
			Bucket:          getEnv("LOGO_BUCKET", ""),
			Region:          getEnv("LOGO_REGION", "auto"),
			Endpoint:        getEnv("LOGO_ENDPOINT", ""),
			AccessKeyID:     getEnv("LOGO_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("LOGO_SECRET_ACCESS_KEY", ""),
			PublicBaseURL:   getEnv("LOGO_PUBLIC_BASE_URL", ""),
		},
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value: %d out of range", port)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set to verify participant tokens")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
