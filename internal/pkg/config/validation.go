package config

import (
	"reflect"
	"strings"

	"go-netcfg/internal/pkg/validate"

	"github.com/go-playground/validator/v10"
)

var structValidator *validator.Validate

func init() {
	structValidator = validator.New()

	// dotted_quad enforces the exact four-group 0-255 literal form. The
	// built-in ipv4 rule is looser, so the engine's own check is registered
	// instead.
	if err := structValidator.RegisterValidation("dotted_quad", validateDottedQuad); err != nil {
		panic(err)
	}

	// Report field names as they appear in the YAML files.
	structValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct runs struct-tag validation on any configuration-shaped
// value (main config, profiles, desired interface configurations).
func ValidateStruct(v interface{}) error {
	return structValidator.Struct(v)
}

func validateDottedQuad(fl validator.FieldLevel) bool {
	return validate.IsValidIPv4(fl.Field().String())
}
