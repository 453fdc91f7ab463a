package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var val *validator.Validate

// intlPhoneRegex is the strict submit-time phone pattern: optional leading +
// then 10 to 15 digits. Human-friendly formats with spaces or dashes are
// accepted on the display tier only, never here.
var intlPhoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var validationMessages = map[string]string{
	"required":   "is required",
	"number":     "must be a number",
	"gt":         "must be greater than %s",
	"oneof":      "must be one of the allowed values: %s",
	"min":        "must be greater than or equal to %s",
	"max":        "must be less than or equal to %s",
	"intl_phone": "must be an international phone number (optional +, 10-15 digits)",
}

func Setup() error {
	val = validator.New(validator.WithRequiredStructEnabled())

	if err := registerValidations(val); err != nil {
		return fmt.Errorf("failed to register custom validations: %w", err)
	}

	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return nil
}

func registerValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("intl_phone", validateIntlPhone); err != nil {
		return fmt.Errorf("failed to register intl_phone validation: %w", err)
	}
	return nil
}

func validateIntlPhone(fl validator.FieldLevel) bool {
	return intlPhoneRegex.MatchString(fl.Field().String())
}

// Var checks a single value against a validator tag expression.
func Var(field any, tag string) error {
	return val.Var(field, tag)
}

// Validate runs struct validation and flattens failures into one message.
func Validate(payload interface{}) error {
	if err := val.Struct(payload); err != nil {
		return errors.New("Validation failed: " + parsingErrorValidate(err))
	}

	return nil
}

func parsingErrorValidate(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		var sb strings.Builder
		for _, e := range errs {
			msg := validationMessages[e.Tag()]
			if msg == "" {
				msg = "is invalid"
			} else if strings.Contains(msg, "%s") {
				msg = fmt.Sprintf(msg, e.Param())
			}
			sb.WriteString(fmt.Sprintf("%s %s", e.Field(), msg))
			sb.WriteString(", ")
		}
		return strings.TrimSuffix(sb.String(), ", ")
	}
	return err.Error()
}
