package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"resort/shared/failure"
	"resort/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Salary   float64 `json:"salary"   validate:"required,gt=0"`
}

type occupancyPayload struct {
	NumberOfAdults *int `json:"numberOfAdults" validate:"required,gte=0"`
	NumberOfKids   *int `json:"numberOfKids"   validate:"required,gte=0"`
}

func TestValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		body := `{"name":"Alice","email":"alice@example.com","password":"longenough","salary":45000}`

		var payload signupPayload
		err := validator.Validate(strings.NewReader(body), &payload)

		require.NoError(t, err)
		assert.Equal(t, "Alice", payload.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		var payload signupPayload
		err := validator.Validate(strings.NewReader(`{"name":`), &payload)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing required field", func(t *testing.T) {
		body := `{"name":"Alice","password":"longenough","salary":45000}`

		var payload signupPayload
		err := validator.Validate(strings.NewReader(body), &payload)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("invalid email", func(t *testing.T) {
		body := `{"name":"Alice","email":"not-an-email","password":"longenough","salary":45000}`

		var payload signupPayload
		err := validator.Validate(strings.NewReader(body), &payload)

		require.Error(t, err)
	})

	t.Run("short password", func(t *testing.T) {
		body := `{"name":"Alice","email":"alice@example.com","password":"short","salary":45000}`

		var payload signupPayload
		err := validator.Validate(strings.NewReader(body), &payload)

		require.Error(t, err)
	})

	t.Run("zero counts pass through pointer fields", func(t *testing.T) {
		body := `{"numberOfAdults":2,"numberOfKids":0}`

		var payload occupancyPayload
		err := validator.Validate(strings.NewReader(body), &payload)

		require.NoError(t, err)
		require.NotNil(t, payload.NumberOfKids)
		assert.Equal(t, 0, *payload.NumberOfKids)
	})

	t.Run("absent count is rejected", func(t *testing.T) {
		body := `{"numberOfAdults":2}`

		var payload occupancyPayload
		err := validator.Validate(strings.NewReader(body), &payload)

		require.Error(t, err)
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("alice@example.com", "required,email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "required,email"))
}
