package address

import (
	"net"
)

const DefaultHost = "0.0.0.0"

// Normalize makes the host explicit if only the port is given, so ":8080" becomes
// "0.0.0.0:8080". Malformed addresses are returned as is and left to the listener to reject.
func Normalize(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || len(host) > 0 {
		return addr
	}

	return net.JoinHostPort(DefaultHost, port)
}
