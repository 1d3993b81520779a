package transport

import (
	"net"
	"sync"
	"sync/atomic"

	"github.com/indigo-web/staticd/config"
)

// Supervisor runs a number of bound transports at once and stops them all together as soon
// as any of them fails or Stop is called.
type Supervisor struct {
	stopped *atomic.Bool
	ts      []boundTransport
	stopch  chan struct{}
	done    chan struct{}
	finish  *sync.Once
}

func NewSupervisor() Supervisor {
	return Supervisor{
		stopped: new(atomic.Bool),
		stopch:  make(chan struct{}),
		done:    make(chan struct{}),
		finish:  new(sync.Once),
	}
}

// Add binds the transport to the address. If binding fails, all the previously bound
// transports are closed and the supervisor is considered done, so it must not be run.
func (s *Supervisor) Add(addr string, transport Transport, cb func(net.Conn)) error {
	err := transport.Bind(addr)
	if err != nil {
		s.Abandon()
		return err
	}

	s.ts = append(s.ts, boundTransport{
		cb: cb,
		t:  transport,
	})

	return nil
}

// Addrs returns addresses of all bound transports in the order they were added.
func (s *Supervisor) Addrs() []net.Addr {
	addrs := make([]net.Addr, len(s.ts))
	for i, t := range s.ts {
		addrs[i] = t.t.Addr()
	}

	return addrs
}

// Run blocks until all transports are done. The first returned error is reported.
func (s *Supervisor) Run(cfg config.NET) error {
	defer s.markDone()

	if len(s.ts) == 0 {
		return nil
	}

	errch := make(chan error)

	for _, t := range s.ts {
		go func(t boundTransport, ch chan<- error) {
			ch <- t.t.Listen(cfg, t.cb)
		}(t, errch)
	}

	select {
	case err := <-errch:
		s.stop(errch, len(s.ts)-1)

		return err
	case <-s.stopch:
		s.stop(errch, len(s.ts))
		s.stopch <- struct{}{}

		return nil
	}
}

// Stop stops all the transports, waits until every connection is served and closes the
// listeners. It blocks until Run returns.
func (s *Supervisor) Stop() {
	if s.stopped.Load() {
		return
	}

	select {
	case s.stopch <- struct{}{}:
		<-s.stopch
	case <-s.done:
	}
}

// stop waits for the pending accept loops to return before waiting for their connections,
// so no connection can be accepted after its transport was waited for.
func (s *Supervisor) stop(errch <-chan error, pending int) {
	s.stopped.Store(true)

	for _, t := range s.ts {
		t.t.Stop()
	}

	drain(errch, pending)

	for _, t := range s.ts {
		t.t.Wait()
		t.t.Close()
	}
}

// Abandon closes all the bound transports without running them. The supervisor is considered
// done afterwards, so Stop doesn't block and Run must not be called.
func (s *Supervisor) Abandon() {
	s.close()
	s.markDone()
}

func (s *Supervisor) markDone() {
	s.finish.Do(func() {
		close(s.done)
	})
}

func (s *Supervisor) close() {
	for _, t := range s.ts {
		t.t.Close()
	}
}

type boundTransport struct {
	cb func(conn net.Conn)
	t  Transport
}

func drain(ch <-chan error, n int) {
	for range n {
		<-ch
	}
}
