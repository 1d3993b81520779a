package http1

import (
	"io"
	"strconv"
	"time"

	"github.com/indigo-web/staticd/http"
	"github.com/indigo-web/staticd/http/method"
	"github.com/indigo-web/staticd/http/status"
	"github.com/indigo-web/staticd/internal/response"
)

// TimeFormat is the layout of the Date header, as in RFC 1123 with the zone fixed to GMT.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

const protocol = "HTTP/1.1 "

// Serializer renders responses into the buffer and flushes them at once. It isn't safe
// for concurrent use, so every connection must own one.
type Serializer struct {
	buff   []byte
	server string
	now    func() time.Time
}

func NewSerializer(buff []byte, server string, now func() time.Time) *Serializer {
	return &Serializer{
		buff:   buff,
		server: server,
		now:    now,
	}
}

// Write renders the response into the buffer and writes it to w. The body is omitted for HEAD
// requests, Content-Length however stays equal to the length of the body. Connection is always
// marked as closing.
func (s *Serializer) Write(request http.Request, resp *http.Response, w io.Writer) error {
	defer s.cleanup()

	s.Render(request, resp)
	_, err := w.Write(s.buff)

	return err
}

// Render renders the response into the buffer without flushing it. The result is valid until
// the next call.
func (s *Serializer) Render(request http.Request, resp *http.Response) []byte {
	fields := resp.Expose()

	s.buff = append(s.buff, protocol...)
	s.appendStatus(fields)
	s.appendKnownHeader("Server: ", s.server)
	s.appendDate()
	s.appendKnownHeader("Content-Type: ", fields.ContentType)
	s.appendContentLength(len(fields.Body))
	s.appendKnownHeader("Connection: ", "close")

	for _, header := range fields.Headers {
		s.appendHeader(header)
	}

	s.crlf()

	if request.Method != method.HEAD {
		s.buff = append(s.buff, fields.Body...)
	}

	return s.buff
}

func (s *Serializer) cleanup() {
	s.buff = s.buff[:0]
}

func (s *Serializer) appendStatus(fields *response.Fields) {
	s.buff = append(s.buff, status.StringCode(fields.Code)...)
	s.sp()

	statusText := fields.Status
	if len(statusText) == 0 {
		statusText = status.Text(fields.Code)
	}

	s.buff = append(s.buff, statusText...)
	s.crlf()
}

func (s *Serializer) appendHeader(header response.Header) {
	s.buff = append(s.buff, header.Key...)
	s.colonsp()
	s.buff = append(s.buff, header.Value...)
	s.crlf()
}

// appendKnownHeader differs from appendHeader only by the fact that the key is known to already
// have a colon and a space included.
func (s *Serializer) appendKnownHeader(key, value string) {
	s.buff = append(s.buff, key...)
	s.buff = append(s.buff, value...)
	s.crlf()
}

func (s *Serializer) appendDate() {
	s.buff = append(s.buff, "Date: "...)
	s.buff = s.now().UTC().AppendFormat(s.buff, TimeFormat)
	s.crlf()
}

func (s *Serializer) appendContentLength(value int) {
	s.buff = append(s.buff, "Content-Length: "...)
	s.buff = strconv.AppendUint(s.buff, uint64(value), 10)
	s.crlf()
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) colonsp() {
	s.buff = append(s.buff, ':', ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}
