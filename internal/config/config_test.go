package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
		assert.Equal(t, DefaultEnvironment, cfg.Environment)
		assert.Equal(t, "postgres", cfg.DBUser)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "playpredix", cfg.DBName)
		assert.Equal(t, "test-key", cfg.APIKey)
		assert.True(t, cfg.RunMigrations)
		assert.Equal(t, DefaultLockWatchInterval, cfg.LockWatchInterval)
		assert.Equal(t, DefaultNotifyTopN, cfg.NotifyTopN)
		assert.Empty(t, cfg.TrustedProxies)
		assert.False(t, cfg.Logo.Enabled())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("DB_USER", "customuser")
		t.Setenv("DB_PASSWORD", "custompass")
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "customdb")
		t.Setenv("RUN_MIGRATIONS", "false")
		t.Setenv("JWT_ISSUER", "https://id.example.com")
		t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2 ,")
		t.Setenv("LOCK_WATCH_INTERVAL", "30s")
		t.Setenv("PROFILE_CACHE_TTL", "1m")
		t.Setenv("NOTIFY_TOP_N", "10")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "customuser", cfg.DBUser)
		assert.Equal(t, "custompass", cfg.DBPassword)
		assert.Equal(t, "db.example.com", cfg.DBHost)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "customdb", cfg.DBName)
		assert.False(t, cfg.RunMigrations)
		assert.Equal(t, "https://id.example.com", cfg.JWTIssuer)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.Equal(t, 30*time.Second, cfg.LockWatchInterval)
		assert.Equal(t, time.Minute, cfg.ProfileCacheTTL)
		assert.Equal(t, 10, cfg.NotifyTopN)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("JWT_SECRET", "secret")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	t.Run("returns error when JWT_SECRET is missing", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("API_KEY", "test-key")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("handles PORT edge cases", func(t *testing.T) {
		tests := []struct {
			name    string
			port    string
			wantErr bool
		}{
			{"minimum port", "1", false},
			{"maximum port", "65535", false},
			{"zero", "0", true},
			{"negative", "-1", true},
			{"too large", "65536", true},
			{"not a number", "abc", true},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				clearEnvVars(t)
				setSecrets(t)
				t.Setenv("PORT", tc.port)

				_, err := Load()
				if tc.wantErr {
					assert.Error(t, err)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	t.Run("loads default database pool configuration", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns, "Should use default max connections")
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime, "Should use default idle time")
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime, "Should use default lifetime")
	})

	t.Run("uses defaults for invalid pool config values", func(t *testing.T) {
		clearEnvVars(t)
		setSecrets(t)
		t.Setenv("DB_MAX_CONNS", "not-a-number")
		t.Setenv("DB_MAX_CONN_IDLE_TIME", "invalid")
		t.Setenv("DB_MAX_CONN_LIFETIME", "bad-duration")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 20, cfg.DBMaxConns)
		assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
		assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
	})
}

func TestLogoStorageConfig_Enabled(t *testing.T) {
	assert.False(t, LogoStorageConfig{}.Enabled())
	assert.False(t, LogoStorageConfig{Bucket: "logos"}.Enabled())
	assert.True(t, LogoStorageConfig{Bucket: "logos", AccessKeyID: "id", SecretAccessKey: "secret"}.Enabled())
}

func TestEnvHelpers(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
		t.Setenv("TEST_INT_VAR", "nope")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m")
		assert.Equal(t, 90*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		t.Setenv("TEST_DURATION_VAR", "100")
		assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Minute), "numbers without unit fall back")
	})

	t.Run("bool", func(t *testing.T) {
		t.Setenv("TEST_BOOL_VAR", "0")
		assert.False(t, getEnvAsBool("TEST_BOOL_VAR", true))
		t.Setenv("TEST_BOOL_VAR", "maybe")
		assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true))
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "user",
		DBPassword: "p@ss",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "predix",
	}

	assert.Equal(t, "postgres://user:p@ss@db:5433/predix?sslmode=disable", cfg.GetDBConnString())
}

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("API_KEY", "test-key")
	t.Setenv("JWT_SECRET", "test-secret")
}

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
		"SERVICE_NAME", "VERSION", "ENVIRONMENT",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_MAX_CONNS", "DB_MAX_CONN_IDLE_TIME", "DB_MAX_CONN_LIFETIME", "RUN_MIGRATIONS",
		"JWT_SECRET", "JWT_ISSUER", "TRUSTED_PROXIES",
		"PROFILE_CACHE_SIZE", "PROFILE_CACHE_TTL", "WORKER_COUNT", "LOCK_WATCH_INTERVAL",
		"DISCORD_WEBHOOK_URL", "NOTIFY_TOP_N",
		"LOGO_BUCKET", "LOGO_REGION", "LOGO_ENDPOINT", "LOGO_ACCESS_KEY_ID",
		"LOGO_SECRET_ACCESS_KEY", "LOGO_PUBLIC_BASE_URL",
	}

	for _, key := range envVars {
		// t.Setenv registers the restore, Unsetenv then clears it for this test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
