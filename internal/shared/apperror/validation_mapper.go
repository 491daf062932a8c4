package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ValidationError carries every failing field of a submitted form.
// Keys are the form field names, values the message shown next to the field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Field returns the message for one field, or "".
func (e *ValidationError) Field(name string) string {
	if e == nil {
		return ""
	}
	return e.Fields[name]
}

func formatFieldName(s string) string {
	// 1. Ganti underscore dengan spasi (recipient_phone -> recipient phone)
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Ubah jadi Title Case (recipient phone -> Recipient Phone)
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationErrors converts validator output into a *ValidationError.
// messages overrides the default text per "field.tag" (e.g. "email.basic_email").
func MapValidationErrors(err error, messages map[string]string) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return New(
			CodeInvalidInput,
			"Invalid input",
			http.StatusBadRequest,
		)
	}

	out := &ValidationError{Fields: make(map[string]string, len(errs))}
	for _, e := range errs {
		// e.Field() sudah berupa nama tag form karena RegisterTagNameFunc di Init()
		field := e.Field()
		if _, seen := out.Fields[field]; seen {
			continue
		}
		if msg, ok := messages[field+"."+e.Tag()]; ok {
			out.Fields[field] = msg
			continue
		}

		humanReadableField := formatFieldName(field)
		switch e.Tag() {
		case "required":
			out.Fields[field] = RequiredField(humanReadableField).Message
		default:
			out.Fields[field] = InvalidField(humanReadableField).Message
		}
	}
	return out
}
