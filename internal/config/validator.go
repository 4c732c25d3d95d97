package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be present before the service will start
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// placeholderValues are the example values shipped in .env.example, checked in this order
var placeholderValues = []struct {
	key   string
	value string
	hint  string
}{
	{"DB_PASSWORD", "change_this_secure_password", "please use a secure password"},
	{"API_KEY", "generate_with_openssl_rand_hex_32", "generate a secure key with: openssl rand -hex 32"},
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	switch schemaVersion := os.Getenv("ENV_SCHEMA_VERSION"); {
	case schemaVersion == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s)", ExpectedEnvSchemaVersion)
	case schemaVersion != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, schemaVersion)
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

// ValidateEnvWithWarnings runs ValidateEnv and then flags values copied verbatim from the example file
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, p := range placeholderValues {
		if os.Getenv(p.key) == p.value {
			warnings = append(warnings, fmt.Sprintf("%s appears to be using the example value - %s", p.key, p.hint))
		}
	}
	return warnings, nil
}
