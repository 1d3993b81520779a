package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is a net.Conn returning pre-defined chunks on every read, one per call. As soon as
// chunks are over, ReadErr is returned (io.EOF unless set otherwise). Everything written
// is accumulated in Data.
type Conn struct {
	Data         []byte
	Chunks       [][]byte
	ReadErr      error
	Closed       bool
	ReadDeadline time.Time
	nop          bool
}

func NewConn(chunks ...[]byte) *Conn {
	return &Conn{
		Chunks:  chunks,
		ReadErr: io.EOF,
	}
}

// Err replaces the error returned once the chunks are exhausted.
func (c *Conn) Err(err error) *Conn {
	c.ReadErr = err
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.Chunks) == 0 {
		return 0, c.ReadErr
	}

	n = copy(b, c.Chunks[0])
	if n < len(c.Chunks[0]) {
		c.Chunks[0] = c.Chunks[0][n:]
	} else {
		c.Chunks = c.Chunks[1:]
	}

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.Closed {
		return 0, net.ErrClosed
	}

	if !c.nop {
		c.Data = append(c.Data, b...)
	}

	return len(b), nil
}

func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (c *Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 49152}
}

func (c *Conn) SetDeadline(t time.Time) error {
	c.ReadDeadline = t
	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	c.ReadDeadline = t
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}

// Nop makes the connection discard everything written.
func (c *Conn) Nop() *Conn {
	c.nop = true
	return c
}

// Script is a shorthand for splitting the data into chunks of n bytes each.
func Script(data []byte, n int) [][]byte {
	var chunks [][]byte

	for len(data) > n {
		chunks = append(chunks, data[:n])
		data = data[n:]
	}

	if len(data) > 0 {
		chunks = append(chunks, data)
	}

	return chunks
}

// Sink is an io.Writer which accumulates everything written.
type Sink struct {
	Data []byte
}

func (s *Sink) Write(b []byte) (int, error) {
	s.Data = append(s.Data, b...)
	return len(b), nil
}

var _ io.Writer = new(Sink)
