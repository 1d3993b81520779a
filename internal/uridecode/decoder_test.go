package uridecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("no escaping", func(t *testing.T) {
		for _, tc := range []string{"", "hello", "index.html", "a/b/c.txt", "ünïcode"} {
			require.Equal(t, tc, Decode(tc))
			require.Equal(t, tc, Decode(Decode(tc)))
		}
	})

	t.Run("plus", func(t *testing.T) {
		require.Equal(t, "hello world", Decode("hello+world"))
		require.Equal(t, "   ", Decode("+++"))
		require.Equal(t, " a b ", Decode("+a+b+"))
	})

	t.Run("corners", func(t *testing.T) {
		require.Equal(t, "/hello/", Decode("%2fhello%2F"))
	})

	t.Run("multiple consecutive", func(t *testing.T) {
		require.Equal(t, "/ hello", Decode("%2f%20hello"))
		require.Equal(t, "ABC", Decode("%41%42%43"))
	})

	t.Run("every byte", func(t *testing.T) {
		const hex = "0123456789abcdef"

		for i := 0; i < 256; i++ {
			encoded := "%" + string(hex[i>>4]) + string(hex[i&0xF])
			want := string([]byte{byte(i)})
			require.Equal(t, want, Decode(encoded), encoded)
			require.Equal(t, want, Decode(strings.ToUpper(encoded)), encoded)
		}
	})

	t.Run("trailing incomplete sequence", func(t *testing.T) {
		require.Equal(t, "%", Decode("%"))
		require.Equal(t, "%2", Decode("%2"))
		require.Equal(t, "a%", Decode("a%"))
		require.Equal(t, "a%4", Decode("a%4"))
		require.Equal(t, "A%4", Decode("%41%4"))
	})

	t.Run("malformed pair is kept", func(t *testing.T) {
		require.Equal(t, "%zz", Decode("%zz"))
		require.Equal(t, "%4g.txt", Decode("%4g.txt"))
		require.Equal(t, "% A", Decode("%+%41"))
	})

	t.Run("encoded dots", func(t *testing.T) {
		require.Equal(t, "../secret", Decode("%2e%2e/secret"))
	})
}

func TestIsSafe(t *testing.T) {
	for _, tc := range []string{
		"",
		"/",
		"/index.html",
		"/./",
		"/a.b.c",
		"/%2e%2e/secret",
		"/dir/file.txt",
	} {
		require.True(t, IsSafe(tc), tc)
	}

	for _, tc := range []string{
		"/..",
		"../",
		"/../secret",
		"/a..b",
		"//etc/passwd",
		"/a//b",
		`/a\b`,
		`\`,
	} {
		require.False(t, IsSafe(tc), tc)
	}
}

func BenchmarkDecode(b *testing.B) {
	bench := func(b *testing.B, segment string) {
		str := "/" + strings.Repeat(segment, 4095/len(segment))
		b.SetBytes(int64(len(str)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_ = Decode(str)
		}
	}

	b.Run("4kb unescaped", func(b *testing.B) {
		bench(b, "a")
	})

	b.Run("4kb slightly escaped", func(b *testing.B) {
		// one urlencoded part per 10 decoded characters
		bench(b, "%5faaaaaaaaa")
	})

	b.Run("4kb only escaped", func(b *testing.B) {
		bench(b, "%5f")
	})
}
