package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"resort/shared/constant"
	"resort/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkg/errors"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestWithData(t *testing.T) {
	rec := httptest.NewRecorder()
	WithData(rec, http.StatusCreated, "created", map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "created", envelope.Message)
	assert.Equal(t, map[string]any{"id": "abc"}, envelope.Data)
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WithMessage(rec, http.StatusOK, "ok")

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "ok", envelope.Message)
	assert.Nil(t, envelope.Data)
}

func TestWithError(t *testing.T) {
	t.Run("client failure keeps its message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WithError(rec, failure.NotFound("booking"))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.False(t, envelope.Success)
		assert.Contains(t, envelope.Message, "booking")
	})

	t.Run("internal error is masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WithError(rec, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		envelope := decodeEnvelope(t, rec)
		assert.False(t, envelope.Success)
		assert.Equal(t, constant.ResponseErrorInternal, envelope.Message)
	})
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()
	WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, constant.ResponseErrorRequestLimitExceeded, envelope.Message)
}
