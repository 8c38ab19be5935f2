package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Error aggregates every failed rule for a request. Endpoints surface only the
// first message to the client.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	if len(e.Messages) == 0 {
		return "Invalid input"
	}
	return e.Messages[0]
}

// NewError builds a validation error from explicit messages.
func NewError(messages ...string) *Error {
	return &Error{Messages: messages}
}

// Validator wraps go-playground/validator for Echo request binding.
type Validator struct {
	validate *validator.Validate
}

// New builds the shared request validator.
func New() *Validator {
	v := validator.New()

	// Report fields by their JSON names so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// deadline accepts anything a reasonable client sends for a date
	_ = v.RegisterValidation("dateparse", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, messageFor(fe))
	}
	return &Error{Messages: messages}
}

// dateLayouts are tried in order when parsing deadline values.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseDate parses a client-supplied date string.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// messageFor converts a failed rule into a human-readable message.
func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return humanize(field) + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		if field == "password" {
			return "Password must be at least " + fe.Param() + " characters"
		}
		return humanize(field) + " is too short"
	case "max":
		return humanize(field) + " too long"
	case "gte":
		return humanize(field) + " must be positive"
	case "lte":
		return humanize(field) + " too high"
	case "oneof":
		return "Invalid " + field
	case "dateparse":
		return "Invalid date format"
	}
	return humanize(field) + " is invalid"
}

func humanize(field string) string {
	if field == "" {
		return "Field"
	}
	// camelCase json names read fine once the first letter is capitalized.
	return strings.ToUpper(field[:1]) + field[1:]
}
