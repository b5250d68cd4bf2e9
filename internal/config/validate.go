package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lodestone-studio/lodestone/internal/routes"
	lodestoneerrors "github.com/lodestone-studio/lodestone/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field names in errors use
// the mapstructure keys, so they match YAML files and viper keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("route", func(fl validator.FieldLevel) bool {
			return routes.Known(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks cfg and reports the first problem as a ValidationError.
func Validate(cfg *Config) error {
	if cfg == nil {
		return lodestoneerrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		return lodestoneerrors.NewValidationError(field, describe(ve), err)
	}

	return lodestoneerrors.NewValidationError("config", err.Error(), err)
}

// fieldName drops the root struct from the namespace: "Config.api.base_url"
// becomes "api.base_url".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	case "url", "http_url":
		return fmt.Sprintf("must be an http(s) URL, got %q", fe.Value())
	case "file":
		return fmt.Sprintf("file %q does not exist", fe.Value())
	case "route":
		return fmt.Sprintf("unknown route %q", fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
