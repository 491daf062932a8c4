package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// local@domain.tld: satu '@', local part tidak kosong, domain mengandung '.'
var basicEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Init() {
	// Daftarkan fungsi kustom ke validator bawaan Gin
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			// Form pages post `form:"employee_id"`, JSON callers use `json:"..."`
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
			return basicEmailPattern.MatchString(fl.Field().String())
		})
	}
}

// ValidateWith runs the gin validation engine over a bound struct, using
// per-field messages keyed "field.tag" where given.
func ValidateWith(obj any, messages map[string]string) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return MapValidationErrors(err, messages)
	}
	return nil
}
