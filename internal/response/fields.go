package response

import (
	"github.com/indigo-web/staticd/http/mime"
	"github.com/indigo-web/staticd/http/status"
)

const DefaultContentType = mime.OctetStream

type Header struct {
	Key, Value string
}

type Fields struct {
	Status      status.Status
	ContentType string
	Headers     []Header
	Body        []byte
	Code        status.Code
}
