package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-hris-web/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	EmployeeID string `form:"employee_id" binding:"required"`
	Email      string `form:"email" binding:"required,basic_email"`
}

func TestValidateWith(t *testing.T) {
	apperror.Init()

	t.Run("all fields missing", func(t *testing.T) {
		err := apperror.ValidateWith(&signupForm{}, map[string]string{
			"employee_id.required": "Employee ID is required",
		})

		var verr *apperror.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, "Employee ID is required", verr.Field("employee_id"))
		assert.Equal(t, "Email is required", verr.Field("email"))
	})

	t.Run("malformed email uses default invalid message", func(t *testing.T) {
		err := apperror.ValidateWith(&signupForm{EmployeeID: "E1", Email: "a@b"}, nil)

		var verr *apperror.ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Equal(t, "Valid email is required", verr.Field("email"))
		assert.Empty(t, verr.Field("employee_id"))
	})

	t.Run("basic email accepts local@domain.tld", func(t *testing.T) {
		for _, email := range []string{"a@b.co", "first.last@mail.example.org"} {
			assert.NoError(t, apperror.ValidateWith(&signupForm{EmployeeID: "E1", Email: email}, nil), email)
		}
		for _, email := range []string{"a@@b.co", "@b.co", "a@bco", "a b@c.d", "a@b."} {
			assert.Error(t, apperror.ValidateWith(&signupForm{EmployeeID: "E1", Email: email}, nil), email)
		}
	})
}

func TestAppError_Is(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "Employee already exists", http.StatusConflict)
	wrapped := sentinel.WithCause(errors.New("409 from upstream"))

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, apperror.ErrNotFound)
	assert.Contains(t, wrapped.Error(), "409 from upstream")
}

func TestToHTTP(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		h := apperror.ToHTTP(&apperror.ValidationError{Fields: map[string]string{"date": "Date is required"}})
		assert.Equal(t, http.StatusUnprocessableEntity, h.Status)
		assert.Equal(t, apperror.CodeInvalidInput, h.Code)
	})

	t.Run("app error", func(t *testing.T) {
		h := apperror.ToHTTP(apperror.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, h.Status)
		assert.Equal(t, "Resource not found", h.Message)
	})

	t.Run("unknown error is masked", func(t *testing.T) {
		h := apperror.ToHTTP(errors.New("dial tcp: refused"))
		assert.Equal(t, http.StatusInternalServerError, h.Status)
		assert.Equal(t, apperror.ErrInternal.Message, h.Message)
	})
}
