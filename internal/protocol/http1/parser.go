package http1

import (
	"bytes"
	"strings"

	"github.com/indigo-web/staticd/http"
	"github.com/indigo-web/staticd/http/method"
	"github.com/indigo-web/staticd/http/status"
	"github.com/indigo-web/utils/uf"
)

var (
	crlf             = []byte("\r\n")
	headerTerminator = []byte("\r\n\r\n")
)

// HeadersCompleted tells whether the data contains the end of the headers block.
func HeadersCompleted(data []byte) bool {
	return bytes.Contains(data, headerTerminator)
}

// ParseRequest extracts the request line out of raw request bytes. Only the headers block,
// that is everything before the first CRLFCRLF, is consulted. Returned strings point into
// raw, so it must not be modified as long as the request is in use.
func ParseRequest(raw []byte) (http.Request, error) {
	end := bytes.Index(raw, headerTerminator)
	if end == -1 {
		return http.Request{}, status.ErrNoHeaderTerminator
	}

	line := raw[:end]
	if lineEnd := bytes.Index(line, crlf); lineEnd != -1 {
		line = line[:lineEnd]
	}

	if len(line) == 0 {
		return http.Request{}, status.ErrNoRequestLine
	}

	request, ok := ParseRequestLine(uf.B2S(line))
	if !ok {
		return http.Request{}, status.ErrBadRequestLine
	}

	return request, nil
}

// ParseRequestLine splits the line by the first two spaces into the method, the path and
// the protocol. The protocol is taken as is, with no validation. Fails if there are less
// than two spaces, or the method or the path are empty.
func ParseRequestLine(line string) (request http.Request, ok bool) {
	sp := strings.IndexByte(line, ' ')
	if sp <= 0 {
		return request, false
	}

	request.RawMethod = line[:sp]
	line = line[sp+1:]

	sp = strings.IndexByte(line, ' ')
	if sp <= 0 {
		return request, false
	}

	request.Path = line[:sp]
	request.Protocol = line[sp+1:]
	request.Method = method.Parse(request.RawMethod)

	return request, true
}
