package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// CMS & content-mapping errors
var (
	ErrQueryFailed     = errors.New("cms query failed")
	ErrMissingDocument = errors.New("required document missing")
	ErrMissingConfig   = errors.New("missing configuration")
)

// NewQueryError wraps a transport or query failure with the operation that
// issued it and the identifying parameter, so a single log line is enough to
// diagnose without retries.
func NewQueryError(operation, param string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrQueryFailed,
		Details:    fmt.Sprintf("operation %q (param %q)", operation, param),
		Cause:      cause,
	}
}

// NewConfigError marks a fatal configuration problem: a required environment
// value or a mandatory document field that the site cannot render without.
func NewConfigError(field, message string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMissingConfig,
		Details:    message,
		Field:      field,
	}
}

// NewMissingDocumentError reports an absent singleton document, which is a
// deployment problem rather than a user-facing not-found.
func NewMissingDocumentError(docType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMissingDocument,
		Details:    fmt.Sprintf("no %q document found in the CMS", docType),
	}
}
