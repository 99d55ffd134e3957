package response

import (
	"encoding/json"
	"net/http"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/logger"
)

// Envelope is the uniform response body. Success mirrors the HTTP status
// class so clients can branch without inspecting the code.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: code < http.StatusBadRequest, Message: message})
}

// WithData sends a response containing a JSON payload
func WithData(writer http.ResponseWriter, code int, message string, data any) {
	response(writer, code, Envelope{Success: code < http.StatusBadRequest, Message: message, Data: data})
}

// WithError sends a response with an error message. Internal errors are
// masked with a generic message so details never reach the client.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := err.Error()
	if code >= http.StatusInternalServerError {
		message = constant.ResponseErrorInternal
	}

	response(writer, code, Envelope{Success: false, Message: message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
