package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/Aidin1998/contacts_manager/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := errors.NotFound("Contact", "id", 42)

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, errors.KindNotFound, err.Kind)
	assert.Equal(t, "Contact with id '42' not found", err.Detail)

	body, jerr := json.Marshal(err.Payload())
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"detail":"Contact with id '42' not found","resource":"Contact","key":"id","value":42}`, string(body))
}

func TestConflict(t *testing.T) {
	err := errors.Conflict("Contact", "email", "jane@example.com")

	assert.Equal(t, http.StatusConflict, err.Status)
	assert.Equal(t, "Contact with email 'jane@example.com' already exists", err.Detail)
	assert.Equal(t, "jane@example.com", err.Payload().Value)
}

func TestInternal(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{"default message", "", errors.MessageInternalServerError},
		{"custom message", errors.MessageDatabaseConnection, "Error connecting to the database"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Internal(tt.detail)
			assert.Equal(t, http.StatusInternalServerError, err.Status)

			body, jerr := json.Marshal(err.Payload())
			require.NoError(t, jerr)
			assert.JSONEq(t, `{"detail":"`+tt.want+`"}`, string(body))
		})
	}
}

func TestHTTPErrorIsAndUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := errors.Internal(errors.MessageDatabaseConnection).Wrap(cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, errors.Internal("")))
	assert.False(t, errors.Is(err, errors.NotFound("Contact", "id", 1)))
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotContains(t, err.Payload().Detail, "connection refused")
}

func TestStatus(t *testing.T) {
	err := errors.Status(http.StatusNotFound)
	assert.Equal(t, "Not Found", err.Detail)
	assert.Equal(t, errors.KindStatus, err.Kind)
}

func TestValidationError(t *testing.T) {
	base := errors.NewValidationError()
	err := base.WithField([]string{"body", "email"}, "must be a valid email", "value_error.email")

	assert.Empty(t, base.Errors)
	require.Len(t, err.Errors, 1)
	assert.Equal(t, []string{"body", "email"}, err.Errors[0].Loc)
	assert.Contains(t, err.Error(), "body.email")

	var target *errors.ValidationError
	assert.True(t, errors.As(error(err), &target))
}

func TestValidationErrorWrapKeepsOriginal(t *testing.T) {
	cause := stderrors.New("strconv: bad input")
	base := errors.NewValidationError().WithField([]string{"query", "limit"}, "Input should be a valid integer", "int_parsing")

	wrapped := base.Wrap(cause)

	assert.NoError(t, base.Unwrap())
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, base.Errors, wrapped.Errors)
}
