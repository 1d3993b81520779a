package config

import (
	"time"
)

type (
	NET struct {
		// ReadTimeout bounds every single read from the socket. A client that connects and
		// sends nothing within this period is disconnected without a response.
		ReadTimeout time.Duration `json:"read_timeout"`
		// WriteTimeout bounds writing the response.
		WriteTimeout time.Duration `json:"write_timeout"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration `json:"accept_loop_interrupt_period"`
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int `json:"read_buffer_size"`
		// MaxHeaderSize limits the request headers block, including the request line. Requests
		// exceeding it are truncated, which usually results in 400 Bad Request.
		MaxHeaderSize int `json:"max_header_size"`
		// LingerTimeout bounds discarding the unread rest of an oversized request after the
		// response is written.
		LingerTimeout time.Duration `json:"linger_timeout"`
		// MaxConnections limits the number of connections served at the same time. Exceeding
		// connections wait in the accept loop.
		MaxConnections int `json:"max_connections"`
	}

	HTTP struct {
		// ServerName is sent in the Server header of every response.
		ServerName string `json:"server_name"`
		// ResponseBufferSize is the initial capacity of the buffer the response is rendered into.
		ResponseBufferSize int `json:"response_buffer_size"`
	}

	Static struct {
		// Root is the directory files are served from.
		Root string `json:"root"`
		// DefaultDocument is served when the request target is empty or "/".
		DefaultDocument string `json:"default_document"`
		// EmptyIsNotFound makes empty files indistinguishable from missing ones, therefore
		// responding 404 to them.
		EmptyIsNotFound bool `json:"empty_is_not_found"`
	}
)

// Config holds settings used across various parts of staticd, mainly restrictions, limitations
// and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET    NET    `json:"net"`
	HTTP   HTTP   `json:"http"`
	Static Static `json:"static"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadTimeout:               5 * time.Second,
			WriteTimeout:              5 * time.Second,
			AcceptLoopInterruptPeriod: time.Second,
			ReadBufferSize:            2 * 1024,
			MaxHeaderSize:             8 * 1024,
			LingerTimeout:             500 * time.Millisecond,
			MaxConnections:            1024,
		},
		HTTP: HTTP{
			ServerName:         "staticd",
			ResponseBufferSize: 4 * 1024,
		},
		Static: Static{
			Root:            ".",
			DefaultDocument: "index.html",
			EmptyIsNotFound: true,
		},
	}
}
