package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// MinJWTSecretLength is the shortest HMAC secret accepted without a warning
const MinJWTSecretLength = 32

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
	"JWT_SECRET",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// envWarning flags a non-fatal configuration problem
type envWarning struct {
	applies func() bool
	message string
}

func equalsEnv(key, value string) func() bool {
	return func() bool { return os.Getenv(key) == value }
}

var envWarnings = []envWarning{
	{
		applies: equalsEnv("DB_PASSWORD", "change_this_secure_password"),
		message: "DB_PASSWORD appears to be using the example value - please use a secure password",
	},
	{
		applies: equalsEnv("API_KEY", "generate_with_openssl_rand_hex_32"),
		message: "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32",
	},
	{
		applies: func() bool { return len(os.Getenv("JWT_SECRET")) < MinJWTSecretLength },
		message: "JWT_SECRET is shorter than 32 bytes - HS256 tokens signed with it are easy to brute force",
	},
	{
		applies: equalsEnv("DISCORD_WEBHOOK_URL", ""),
		message: "DISCORD_WEBHOOK_URL is not set - standings notifications are disabled",
	},
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports insecure or
// incomplete settings that do not stop the server
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies() {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
