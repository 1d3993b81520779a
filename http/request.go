package http

import (
	"github.com/indigo-web/staticd/http/method"
)

// Request is the parsed request line. Headers and body aren't retained, as the server
// consults the request line only.
type Request struct {
	// Method is an enum representing the request method. Methods out of the known set are
	// method.Unknown, whereas RawMethod keeps the token as it was sent.
	Method    method.Method
	RawMethod string
	// Path is the request target as it was sent by the client, before any decoding.
	Path string
	// Protocol is the version token. It's kept for logging purposes and never validated.
	Protocol string
}

// Respond returns a new response builder.
func (r Request) Respond() *Response {
	return NewResponse()
}
