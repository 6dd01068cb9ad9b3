package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout version this build understands
const ExpectedEnvSchemaVersion = "1.0"

// MinJWTSecretLength is the shortest secret accepted without a warning
const MinJWTSecretLength = 32

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"JWT_SECRET",
}

// exampleValues are the placeholders shipped in .env.example
var exampleValues = []struct {
	key, value, warning string
}{
	{"DB_PASSWORD", "change_this_secure_password", "DB_PASSWORD appears to be using the example value - please use a secure password"},
	{"JWT_SECRET", "generate_with_openssl_rand_hex_32", "JWT_SECRET appears to be using the example value - generate a secure key with: openssl rand -hex 32"},
}

// ValidateEnv checks the .env schema version, then that every required
// variable is set
func ValidateEnv() error {
	switch schemaVersion := os.Getenv("ENV_SCHEMA_VERSION"); schemaVersion {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and lists settings that work but
// should not reach production
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, ex := range exampleValues {
		if os.Getenv(ex.key) == ex.value {
			warnings = append(warnings, ex.warning)
		}
	}

	if len(os.Getenv("JWT_SECRET")) < MinJWTSecretLength {
		warnings = append(warnings, fmt.Sprintf("JWT_SECRET is shorter than %d characters", MinJWTSecretLength))
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins == "" || origins == "*" {
		warnings = append(warnings, "CORS_ORIGINS allows every origin - restrict it outside development")
	}

	return warnings, nil
}
