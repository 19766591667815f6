package errs

import (
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
)

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

// NewInvalidSecretError is returned when the draft-enable secret does not
// match. The message never reveals whether the requested slug exists.
func NewInvalidSecretError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrUnauthorized,
		Details:    "invalid secret token",
		Field:      "secret",
	}
}

// NewMissingParamError is returned when a required query parameter is absent.
func NewMissingParamError(param string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrBadRequest,
		Details:    "missing " + param + " parameter",
		Field:      param,
	}
}
