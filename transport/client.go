package transport

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/indigo-web/staticd/config"
	"github.com/indigo-web/staticd/internal/buffer"
)

// lingerLimit is the maximal number of bytes discarded by Linger.
const lingerLimit = 256 * 1024

// ErrTooLarge is returned together with the data collected so far, when the limit was reached
// before the data was complete.
var ErrTooLarge = errors.New("request headers exceed the limit")

type Client interface {
	ReadUntil(complete func(data []byte) bool) ([]byte, error)
	Write([]byte) (int, error)
	Linger()
	Conn() net.Conn
	Remote() net.Addr
	Close() error
}

type client struct {
	conn         net.Conn
	chunk        []byte
	data         buffer.Buffer
	readTimeout  time.Duration
	writeTimeout time.Duration
	linger       time.Duration
}

func NewClient(conn net.Conn, cfg config.NET) Client {
	return &client{
		conn:         conn,
		chunk:        make([]byte, cfg.ReadBufferSize),
		data:         buffer.New(cfg.ReadBufferSize, cfg.MaxHeaderSize),
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,
		linger:       cfg.LingerTimeout,
	}
}

// ReadUntil keeps reading until complete reports true on the collected data or the size limit
// is reached. Every read is bounded by the read timeout. Whatever has been collected is always
// returned, even along with an error, so the caller decides whether a partial request is
// worth processing.
func (c *client) ReadUntil(complete func(data []byte) bool) ([]byte, error) {
	for {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.readTimeout)); err != nil {
			return c.data.Preview(), err
		}

		n, err := c.conn.Read(c.chunk)
		if n > 0 {
			fits := c.data.AppendTruncated(c.chunk[:n])
			if complete(c.data.Preview()) {
				return c.data.Preview(), nil
			}

			if !fits || c.data.Full() {
				return c.data.Preview(), ErrTooLarge
			}
		}

		switch {
		case err != nil:
			return c.data.Preview(), err
		case n == 0:
			return c.data.Preview(), io.EOF
		}
	}
}

// Write writes data into the underlying connection, bounded by the write timeout.
func (c *client) Write(b []byte) (int, error) {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
		return 0, err
	}

	return c.conn.Write(b)
}

// Linger shuts down the writing side, if the connection supports it, and discards whatever
// the peer keeps sending until it closes its side, the linger timeout expires or lingerLimit
// bytes are read.
func (c *client) Linger() {
	if cw, ok := c.conn.(interface{ CloseWrite() error }); ok {
		_ = cw.CloseWrite()
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.linger)); err != nil {
		return
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(c.conn, lingerLimit))
}

// Conn unwraps the underlying net.Conn.
func (c *client) Conn() net.Conn {
	return c.conn
}

// Remote returns the remote address of the connection.
func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection.
func (c *client) Close() error {
	return c.conn.Close()
}
