package transport

import (
	"net"

	"github.com/indigo-web/staticd/config"
)

// Transport accepts connections and hands every one of them to the callback. The connection
// is closed by the transport as soon as the callback returns.
type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}
