package staticd

import (
	"errors"
	"io/fs"
	"net"
	"os"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/staticd/config"
	"github.com/indigo-web/staticd/dispatcher"
	"github.com/indigo-web/staticd/internal/address"
	"github.com/indigo-web/staticd/internal/protocol/http1"
	"github.com/indigo-web/staticd/internal/timer"
	"github.com/indigo-web/staticd/transport"
	"github.com/rs/zerolog"
)

// connIDLength is how many characters the random connection identifier in logs has.
const connIDLength = 8

// App serves static files from a single root on one or more addresses.
type App struct {
	addrs []string
	cfg   *config.Config
	log   zerolog.Logger
	hooks hooks
	sv    transport.Supervisor
}

// New returns a new App instance listening on the address. If only the port is given,
// e.g. ":8080", the app listens on all interfaces.
func New(addr string) *App {
	return &App{
		addrs: []string{address.Normalize(addr)},
		cfg:   config.Default(),
		log:   zerolog.Nop(),
		sv:    transport.NewSupervisor(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger. By default, nothing is logged.
func (a *App) Logger(log zerolog.Logger) *App {
	a.log = log
	return a
}

// Listen adds one more address to listen on.
func (a *App) Listen(addr string) *App {
	a.addrs = append(a.addrs, address.Normalize(addr))
	return a
}

// NotifyOnStart calls the callback at the moment, when all the listeners are bound. The
// connections are accepted by the kernel from then on, even though they might be served
// a bit later.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when all the listeners are closed and all
// the connections are served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve binds all the addresses and serves files from fsys until Stop is called or some of
// the listeners fails. If fsys is nil, the directory config.Static.Root is used.
func (a *App) Serve(fsys fs.FS) error {
	if err := a.cfg.Validate(); err != nil {
		a.sv.Abandon()
		return err
	}

	if fsys == nil {
		fsys = os.DirFS(a.cfg.Static.Root)
	}

	cb := a.newConnCallback(dispatcher.New(fsys, a.cfg.Static))

	for _, addr := range a.addrs {
		tcp := transport.NewTCP()
		tcp.OnAcceptError = func(err error) {
			a.log.Error().Err(err).Str("addr", addr).Msg("accept")
		}

		if err := a.sv.Add(addr, tcp, cb); err != nil {
			return err
		}
	}

	for _, addr := range a.sv.Addrs() {
		a.log.Info().Stringer("addr", addr).Str("root", a.cfg.Static.Root).Msg("listening")
	}

	callIfNotNil(a.hooks.OnStart)
	err := a.sv.Run(a.cfg.NET)
	callIfNotNil(a.hooks.OnStop)

	if err != nil {
		a.log.Error().Err(err).Msg("stopped")
	} else {
		a.log.Info().Msg("stopped")
	}

	return err
}

// Addrs returns the addresses the app is actually bound to. Valid only after the start
// is notified.
func (a *App) Addrs() []net.Addr {
	return a.sv.Addrs()
}

// Stop stops accepting new connections, waits until the in-flight ones are served and closes
// the listeners. The call blocks until Serve is done.
func (a *App) Stop() {
	a.sv.Stop()
}

func (a *App) newConnCallback(d *dispatcher.Dispatcher) func(net.Conn) {
	return func(conn net.Conn) {
		log := a.log.With().
			Str("conn", uniuri.NewLen(connIDLength)).
			Stringer("remote", conn.RemoteAddr()).
			Logger()

		client := transport.NewClient(conn, a.cfg.NET)
		raw, err := client.ReadUntil(http1.HeadersCompleted)
		if len(raw) == 0 {
			log.Debug().Err(err).Msg("closed without a request")
			return
		}

		if err != nil {
			log.Debug().Err(err).Int("received", len(raw)).Msg("incomplete request")
		}

		if errors.Is(err, transport.ErrTooLarge) {
			// the rest of the request is still pending. Closing the socket with unread data
			// resets the connection, which may destroy the response before it's delivered
			defer client.Linger()
		}

		request, response, cause := d.Dispatch(raw)
		serializer := http1.NewSerializer(
			make([]byte, 0, a.cfg.HTTP.ResponseBufferSize), a.cfg.HTTP.ServerName, timer.Now,
		)

		if err = serializer.Write(request, response, client); err != nil {
			log.Error().Err(err).Msg("write response")
			return
		}

		fields := response.Expose()
		event := log.Info()
		if cause != nil {
			event = log.Warn().Err(cause)
		}

		event.
			Str("method", request.RawMethod).
			Str("path", request.Path).
			Int("status", int(fields.Code)).
			Int("bytes", len(fields.Body)).
			Msg("served")
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
