package mime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("known", func(t *testing.T) {
		for _, tc := range []struct {
			Filename, Want string
		}{
			{"index.html", "text/html; charset=utf-8"},
			{"index.htm", "text/html; charset=utf-8"},
			{"style.css", "text/css; charset=utf-8"},
			{"app.js", "application/javascript; charset=utf-8"},
			{"data.json", "application/json; charset=utf-8"},
			{"notes.txt", "text/plain; charset=utf-8"},
			{"logo.png", PNG},
			{"photo.jpg", JPEG},
			{"photo.jpeg", JPEG},
			{"anim.gif", GIF},
			{"favicon.ico", ICO},
			{"icon.svg", SVG},
			{"dir/sub/archive.tar.gz.txt", "text/plain; charset=utf-8"},
		} {
			require.Equal(t, tc.Want, Resolve(tc.Filename), tc.Filename)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		require.Equal(t, Resolve("a.html"), Resolve("a.HTML"))
		require.Equal(t, Resolve("a.png"), Resolve("a.PnG"))
		require.Equal(t, Resolve("a.jpeg"), Resolve("A.JPEG"))
	})

	t.Run("no extension", func(t *testing.T) {
		for _, tc := range []string{"a", "noext.", "", ".", "Makefile"} {
			require.Equal(t, OctetStream, Resolve(tc), tc)
		}
	})

	t.Run("unknown extension", func(t *testing.T) {
		for _, tc := range []string{"a.exe", "a.tar.gz", "a.html5", "a.h"} {
			require.Equal(t, OctetStream, Resolve(tc), tc)
		}
	})
}

func TestWithCharset(t *testing.T) {
	require.Equal(t, "text/html; charset=utf-8", WithCharset(HTML))
	require.Equal(t, PNG, WithCharset(PNG))
}

func BenchmarkResolve(b *testing.B) {
	b.Run("lower", func(b *testing.B) {
		for range b.N {
			_ = Resolve("index.html")
		}
	})

	b.Run("upper", func(b *testing.B) {
		for range b.N {
			_ = Resolve("INDEX.HTML")
		}
	})
}
