package response

import (
	"encoding/json"
	"net/http"
	"rideflow/shared/constant"
	"rideflow/shared/failure"
	"rideflow/shared/logger"

	"github.com/rs/zerolog/log"
)

// Data is the success envelope, {"data": ...}.
type Data[T any] struct {
	Data T `json:"data"`
}

// Error is the failure envelope, {"error": "..."}.
type Error struct {
	Error string `json:"error"`
}

// Message carries a plain status text, {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: payload})
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

// WithError maps err to its failure code; anything that is not a failure.Failure is a 500.
// Server errors are logged and answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("code", code).Msg("request failed")
		write(writer, code, Error{Error: constant.ResponseErrorInternal})

		return
	}

	write(writer, code, Error{Error: err.Error()})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
