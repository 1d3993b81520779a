package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes the server is able to respond with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest       Code = 400 // RFC 9110, 15.5.1
	Forbidden        Code = 403 // RFC 9110, 15.5.4
	NotFound         Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed Code = 405 // RFC 9110, 15.5.6

	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

// KnownCodes lists every code having a status text.
var KnownCodes = []Code{
	OK, BadRequest, Forbidden, NotFound, MethodNotAllowed, InternalServerError,
}

// Text returns a text for the HTTP status code. Codes out of the table are reported
// as "Unknown".
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown"
	}
}

// StringCode returns the code as a decimal string. Codes of the table don't allocate.
func StringCode(code Code) string {
	switch code {
	case OK:
		return "200"
	case BadRequest:
		return "400"
	case Forbidden:
		return "403"
	case NotFound:
		return "404"
	case MethodNotAllowed:
		return "405"
	case InternalServerError:
		return "500"
	default:
		return strconv.Itoa(int(code))
	}
}
