package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that required settings are present. Production
// additionally refuses development fallbacks for secrets.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_NAME":     cfg.DBName,
		"SERVER_PORT": cfg.ServerPort,
		"JWT_SECRET":  cfg.JWTSecret,
	}
	for field, value := range required {
		if value == "" {
			errors = append(errors, ValidationError{Field: field, Message: "is required"}.Error())
		}
	}

	if IsProduction() {
		if cfg.JWTSecret == "dev-secret-key" {
			errors = append(errors, ValidationError{Field: "JWT_SECRET", Message: "must not use the development default in production"}.Error())
		}
		if cfg.DBPassword == "postgres" {
			errors = append(errors, ValidationError{Field: "DB_PASSWORD", Message: "must not use the development default in production"}.Error())
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}
	return nil
}
