package http

import (
	"errors"
	"testing"

	"github.com/indigo-web/staticd/http/mime"
	"github.com/indigo-web/staticd/http/status"
	"github.com/indigo-web/staticd/internal/render"
	"github.com/indigo-web/staticd/internal/response"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, mime.OctetStream, fields.ContentType)
		require.Empty(t, fields.Headers)
		require.Empty(t, fields.Body)
	})

	t.Run("file", func(t *testing.T) {
		fields := NewResponse().File("index.html", []byte("<h1>hi</h1>")).Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, "text/html; charset=utf-8", fields.ContentType)
		require.Equal(t, "<h1>hi</h1>", string(fields.Body))
	})

	t.Run("http error", func(t *testing.T) {
		fields := NewResponse().Error(status.ErrForbidden).Expose()
		require.Equal(t, status.Forbidden, fields.Code)
		require.Equal(t, mime.HTML, fields.ContentType)
		require.Equal(t, render.ErrorPage(status.Forbidden), fields.Body)
		require.Empty(t, fields.Headers)
	})

	t.Run("method not allowed carries allow", func(t *testing.T) {
		fields := Error(Request{}, status.ErrMethodNotAllowed).Expose()
		require.Equal(t, status.MethodNotAllowed, fields.Code)
		require.Equal(t, []response.Header{{Key: "Allow", Value: "GET, HEAD"}}, fields.Headers)
	})

	t.Run("arbitrary error", func(t *testing.T) {
		fields := NewResponse().Error(errors.New("disk is on fire")).Expose()
		require.Equal(t, status.InternalServerError, fields.Code)
		require.Equal(t, mime.HTML, fields.ContentType)
	})

	t.Run("nil error", func(t *testing.T) {
		fields := NewResponse().String("ok").Error(nil).Expose()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, "ok", string(fields.Body))
	})
}
