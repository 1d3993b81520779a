package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrNoHeaderTerminator  = NewError(BadRequest, "headers block isn't terminated")
	ErrNoRequestLine       = NewError(BadRequest, "request line is missing")
	ErrBadRequestLine      = NewError(BadRequest, "malformed request line")
	ErrForbidden           = NewError(Forbidden, "forbidden")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)

// CodeOf extracts the status code out of the error, unwrapping it if needed. Errors not
// being HTTPError are considered internal.
func CodeOf(err error) Code {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return InternalServerError
}
