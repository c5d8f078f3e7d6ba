package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateUserConfig checks the decoded config.toml values
func ValidateUserConfig(cfg *UserConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, describeValidationError(err))
	}
	return nil
}

// ValidateWeatherURL checks an endpoint that did not come from config.toml
// (environment override)
func ValidateWeatherURL(url string) error {
	if err := validate.Var(url, "required,url,startswith=http"); err != nil {
		return fmt.Errorf("%w: weather endpoint %q is not an http(s) URL", ErrInvalidConfig, url)
	}
	return nil
}

func describeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	var parts []string
	for _, fe := range fieldErrs {
		field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "UserConfig."))
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "url", "startswith":
			parts = append(parts, fmt.Sprintf("%s must be an http(s) URL, got %q", field, fe.Value()))
		case "min", "max":
			parts = append(parts, fmt.Sprintf("%s must be between 1 and 1000, got %v", field, fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
