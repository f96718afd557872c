package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("tzname", validateTimezone)
	return v
}

// validateTimezone accepts any IANA name plus "Local" and "UTC"
func validateTimezone(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// Validate checks the struct tags on cfg and returns one error listing every bad field
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf(ErrMsgInvalidConfig, err.Error())
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, describe(e))
	}
	sort.Strings(problems)
	return fmt.Errorf(ErrMsgInvalidConfig, strings.Join(problems, "; "))
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", e.Field(), e.Param(), e.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "ip":
		return fmt.Sprintf("%s must be an IP address, got %v", e.Field(), e.Value())
	case "tzname":
		return fmt.Sprintf("%s is not a known time zone: %v", e.Field(), e.Value())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// Warnings returns non-fatal issues worth logging at startup
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.StoreBackend == "postgres" && cfg.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if cfg.IsProduction() {
		for _, origin := range cfg.AllowedOrigins {
			if origin == "*" {
				warnings = append(warnings, "ALLOWED_ORIGINS contains '*' in production")
				break
			}
		}
		if cfg.AdminAPIKey == "" {
			warnings = append(warnings, "ADMIN_API_KEY is empty, admin endpoints are disabled")
		}
		if cfg.StoreBackend == "memory" {
			warnings = append(warnings, "STORE_BACKEND=memory loses the saved game on restart")
		}
	}

	return warnings
}
