package uridecode

import (
	"strings"

	"github.com/indigo-web/staticd/internal/hexconv"
	"github.com/indigo-web/utils/uf"
)

// Decode translates urlencoded characters into their true form: %XY becomes a byte with
// the hex value XY and + becomes a space. Percent signs that aren't followed by two more
// characters, or followed by something that isn't a hex pair, are kept verbatim.
func Decode(src string) string {
	if strings.IndexByte(src, '%') == -1 && strings.IndexByte(src, '+') == -1 {
		return src
	}

	buff := make([]byte, 0, len(src))

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '+':
			buff = append(buff, ' ')
		case '%':
			if i+2 < len(src) {
				if b, ok := hexconv.Pair(src[i+1], src[i+2]); ok {
					buff = append(buff, b)
					i += 2
					continue
				}
			}

			buff = append(buff, c)
		default:
			buff = append(buff, c)
		}
	}

	return uf.B2S(buff)
}
