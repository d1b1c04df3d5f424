package command

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"

	clierrors "github.com/accordproject/ergorun/internal/errors"
)

// TimeLayouts are the accepted --currentTime formats.
var TimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("option")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
		return ValidTime(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidTime reports whether s is in one of TimeLayouts.
func ValidTime(s string) bool {
	for _, layout := range TimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Validate checks opts (one of the *Options structs) against spec. Every
// missing required option is reported in a single usage error; otherwise the
// first invalid value is reported.
func Validate(spec Spec, opts any) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating %s options: %w", spec.Name, err)
	}

	var missing []string
	var invalid validator.FieldError
	for _, fe := range verrs {
		if isMissing(fe) {
			missing = append(missing, fe.Field())
			continue
		}
		if invalid == nil {
			invalid = fe
		}
	}

	if len(missing) > 0 {
		return clierrors.MissingOptions(string(spec.Name), missing, spec.Usage)
	}
	return clierrors.InvalidOption(string(spec.Name), optionName(invalid), fmt.Sprint(invalid.Value()), reason(invalid.Tag()), spec.Usage)
}

// isMissing distinguishes an absent option (nil pointer or nil/empty array)
// from one given with a bad value.
func isMissing(fe validator.FieldError) bool {
	rv := reflect.ValueOf(fe.Value())
	switch {
	case !rv.IsValid():
		return true
	case rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Slice:
		return rv.IsNil() || (rv.Kind() == reflect.Slice && rv.Len() == 0)
	}
	return false
}

// optionName strips the element index from array option errors ("request[1]").
func optionName(fe validator.FieldError) string {
	name := fe.Field()
	for i := range name {
		if name[i] == '[' {
			return name[:i]
		}
	}
	return name
}

func reason(tag string) string {
	switch tag {
	case "iso8601":
		return "must be an ISO-8601 timestamp such as 2006-01-02T15:04:05Z07:00"
	case "required", "min":
		return "must not be empty"
	default:
		return "failed " + tag + " check"
	}
}
