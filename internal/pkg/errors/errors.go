package errors

import "net/http"

// ErrorResp is the error type every layer below the handler returns.
// The handler boundary maps HttpCode onto the response envelope.
type ErrorResp struct {
	HttpCode int
	Message  string
}

func (e *ErrorResp) Error() string {
	return e.Message
}

func New(httpCode int, message string) error {
	return &ErrorResp{
		HttpCode: httpCode,
		Message:  message,
	}
}

func BadRequest(message string) error {
	return New(http.StatusBadRequest, message)
}

func UnauthorizedError(message string) error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

func UnprocessableEntity(message string) error {
	return New(http.StatusUnprocessableEntity, message)
}

func InternalServerError(message string) error {
	return New(http.StatusInternalServerError, message)
}
