package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// MaxServerNameLength bounds the server parameter
const MaxServerNameLength = 64

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report fields by their query or JSON name instead of the Go field name
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("server", validateServer)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"query", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// FormatValidationError formats validation errors into a field map and
// picks the error code: missing_parameter when any required field is absent
func FormatValidationError(err error) (string, map[string]string) {
	if err == nil {
		return "", nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return CodeInvalidBody, errs
	}

	code := CodeInvalidParameter
	for _, e := range validationErrors {
		field := e.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
			code = CodeMissingParameter
		case "server":
			errs[field] = "Invalid server name"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gtefield":
			errs[field] = fmt.Sprintf("Must not be less than %s", e.Param())
		case "gtfield":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return code, errs
}

// validateServer accepts a trimmed, printable server name. Empty values
// pass so that "required" decides whether the field is mandatory.
func validateServer(fl validator.FieldLevel) bool {
	server := fl.Field().String()
	if server == "" {
		return true
	}
	if len(server) > MaxServerNameLength || strings.TrimSpace(server) != server {
		return false
	}
	for _, r := range server {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
