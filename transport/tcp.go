package transport

import (
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/staticd/config"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

var _ Transport = new(TCP)

// TCP serves every accepted connection on its own goroutine. Nothing is shared between them.
type TCP struct {
	l    listener
	wg   *sync.WaitGroup
	stop *atomic.Bool
	// OnAcceptError is called on every failed Accept(), except the deadline interruptions.
	// The loop keeps going regardless.
	OnAcceptError func(err error)
}

func NewTCP() *TCP {
	tcp := newTCP(nil)
	return &tcp
}

func newTCP(l listener) TCP {
	return TCP{
		l:    l,
		wg:   new(sync.WaitGroup),
		stop: new(atomic.Bool),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) (err error) {
	t.l, err = bindTCP(addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}

	return nil
}

// Addr returns the address the listener is bound to. Useful when bound to port 0.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	admission := make(chan struct{}, cfg.MaxConnections)

	for !t.stop.Load() {
		if !t.admit(admission, cfg.AcceptLoopInterruptPeriod) {
			continue
		}

		err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			<-admission
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			<-admission

			switch {
			case errors.Is(err, os.ErrDeadlineExceeded):
			case errors.Is(err, net.ErrClosed):
				return nil
			default:
				if t.OnAcceptError != nil {
					t.OnAcceptError(err)
				}
			}

			continue
		}

		if t.stop.Load() {
			// accepted after Stop was called, so Wait might be already over
			_ = conn.Close()
			<-admission
			return nil
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			cb(conn)
			_ = conn.Close()
			<-admission
			t.wg.Done()
		}(conn)
	}

	return nil
}

// admit takes a seat for a new connection, waiting at most for the period in order to
// keep observing the stop flag.
func (t *TCP) admit(admission chan<- struct{}, period time.Duration) bool {
	select {
	case admission <- struct{}{}:
		return true
	default:
	}

	wait := time.NewTimer(period)
	defer wait.Stop()

	select {
	case admission <- struct{}{}:
		return true
	case <-wait.C:
		return false
	}
}

func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	_ = t.l.Close()
}

// Wait blocks until every accepted connection is served. It must be called after Listen
// returned, otherwise connections accepted in between might be missed.
func (t *TCP) Wait() {
	t.wg.Wait()
}
