package http

import (
	"strings"

	"github.com/indigo-web/staticd/http/method"
	"github.com/indigo-web/staticd/http/mime"
	"github.com/indigo-web/staticd/http/status"
	"github.com/indigo-web/staticd/internal/render"
	"github.com/indigo-web/staticd/internal/response"
	"github.com/indigo-web/utils/uf"
)

// why 2? Allow on 405 is the only header ever set explicitly.
const preallocRespHeaders = 2

type Response struct {
	fields *response.Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK
// and application/octet-stream content-type.
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Code:        status.OK,
			Headers:     make([]response.Header, 0, preallocRespHeaders),
			ContentType: response.DefaultContentType,
		},
	}
}

// Code sets a Response code. Status text is derived from it unless set explicitly via Status.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text.
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value string) *Response {
	r.fields.ContentType = value
	return r
}

// Header adds a header. Content-Type, Content-Length, Server, Date and Connection are
// managed by the serializer and must not be passed here.
func (r *Response) Header(key string, values ...string) *Response {
	for i := range values {
		r.fields.Headers = append(r.fields.Headers, response.Header{
			Key:   key,
			Value: values[i],
		})
	}

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// File sets the body to the file contents, resolving the content type by the file name.
func (r *Response) File(name string, contents []byte) *Response {
	return r.
		ContentType(mime.Resolve(name)).
		Bytes(contents)
}

// Error turns the response into an error page. If an instance of status.HTTPError is passed,
// its code is used, otherwise it's 500 Internal Server Error. Nil errors are no-op.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code := status.CodeOf(err)
	if code == status.MethodNotAllowed {
		r.Header("Allow", allowed())
	}

	return r.
		Code(code).
		ContentType(mime.HTML).
		Bytes(render.ErrorPage(code))
}

// Expose returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Expose() *response.Fields {
	return r.fields
}

// Error is a predicate to request.Respond().Error(...)
func Error(request Request, err error) *Response {
	return request.Respond().Error(err)
}

func allowed() string {
	names := make([]string, len(method.Allowed))
	for i, m := range method.Allowed {
		names[i] = m.String()
	}

	return strings.Join(names, ", ")
}
