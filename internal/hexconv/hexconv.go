package hexconv

// Halfbyte maps an ASCII character to its hexadecimal value. Characters that aren't hex
// digits are mapped to 0xFF, which never is a valid half-byte.
var Halfbyte = newHalfbyteTable()

func newHalfbyteTable() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c&^0x20] = c - 'a' + 10
	}

	return table
}

// Pair decodes two hex digits into a single byte. ok is false if either of them isn't a
// hex digit.
func Pair(hi, lo byte) (b byte, ok bool) {
	x, y := Halfbyte[hi], Halfbyte[lo]
	if x|y == 0xFF {
		return 0, false
	}

	return x<<4 | y, true
}
