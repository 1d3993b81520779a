package buffer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkBuffer(b *testing.B) {
	smallString := []byte(strings.Repeat("a", 1023))
	bigString := []byte(strings.Repeat("a", 4095))

	b.Run("no overflow", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(smallString)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			buff := New(1024, 4096)
			_ = buff.AppendTruncated(smallString)
		}
	})

	b.Run("truncated", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(bigString)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			buff := New(1024, 2048)
			_ = buff.AppendTruncated(bigString)
		}
	})
}

func TestBuffer(t *testing.T) {
	t.Run("no overflow", func(t *testing.T) {
		buff := New(10, 20)
		require.True(t, buff.AppendTruncated([]byte("Hello")))
		require.True(t, buff.AppendTruncated([]byte("Here")))
		require.Equal(t, "HelloHere", string(buff.Preview()))
		require.Equal(t, 11, buff.Space())
		require.False(t, buff.Full())
	})

	t.Run("grows past the initial size", func(t *testing.T) {
		buff := New(10, 20)
		// "Hello, World!" is 13 characters length, so it will force the Buffer
		// to grow an underlying slice
		require.True(t, buff.AppendTruncated([]byte("Hello, ")))
		require.True(t, buff.AppendTruncated([]byte("World!")))
		require.Equal(t, "Hello, World!", string(buff.Preview()))
	})

	t.Run("truncated append", func(t *testing.T) {
		buff := New(4, 8)
		require.True(t, buff.AppendTruncated([]byte("GET ")))
		require.False(t, buff.AppendTruncated([]byte("/index.html")))
		require.Equal(t, "GET /ind", string(buff.Preview()))
		require.True(t, buff.Full())
		require.Zero(t, buff.Space())
		require.True(t, buff.AppendTruncated(nil))
		require.False(t, buff.AppendTruncated([]byte("x")))
		require.Equal(t, "GET /ind", string(buff.Preview()))
	})

	t.Run("initial size over the limit", func(t *testing.T) {
		buff := New(64, 8)
		require.Equal(t, 8, cap(buff.Preview()))
		require.Equal(t, 8, buff.Space())
	})
}
