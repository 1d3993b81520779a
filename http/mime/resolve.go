package mime

import (
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

// contentTypes holds complete Content-Type values, including the charset parameter. It's
// built once and never mutated afterwards.
var contentTypes = newContentTypes()

func newContentTypes() map[string]string {
	types := make(map[string]string, len(Extension))

	for ext, mime := range Extension {
		types[ext] = WithCharset(mime)
	}

	return types
}

// WithCharset appends the default charset of the MIME, if it has one.
func WithCharset(mime MIME) string {
	if charset, ok := DefaultCharset[mime]; ok {
		return mime + "; charset=" + charset
	}

	return mime
}

// Resolve returns a Content-Type value for the filename, judging by its extension. The
// extension is everything starting at the last dot and is matched case-insensitively.
// Files with no or unknown extension are OctetStream.
func Resolve(filename string) string {
	dot := strings.LastIndexByte(filename, '.')
	if dot == -1 || dot == len(filename)-1 {
		return OctetStream
	}

	ext := filename[dot:]
	if contentType, found := contentTypes[ext]; found {
		return contentType
	}

	for known, contentType := range contentTypes {
		if strcomp.EqualFold(known, ext) {
			return contentType
		}
	}

	return OctetStream
}
