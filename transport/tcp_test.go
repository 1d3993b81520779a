package transport

import (
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/indigo-web/staticd/config"
	"github.com/stretchr/testify/require"
)

func testNET() config.NET {
	cfg := config.Default().NET
	cfg.AcceptLoopInterruptPeriod = 20 * time.Millisecond
	return cfg
}

func TestTCP(t *testing.T) {
	t.Run("serve and stop", func(t *testing.T) {
		tcp := NewTCP()
		require.NoError(t, tcp.Bind("127.0.0.1:0"))

		done := runParallel(func() error {
			return tcp.Listen(testNET(), func(conn net.Conn) {
				_, _ = conn.Write([]byte("hello"))
			})
		})

		conn, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.Equal(t, "hello", string(data))
		require.NoError(t, conn.Close())

		tcp.Stop()
		select {
		case err = <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			require.Fail(t, "the accept loop did not stop on time")
		}

		tcp.Wait()
		tcp.Close()
	})

	t.Run("nothing is served after stop", func(t *testing.T) {
		tcp := NewTCP()
		require.NoError(t, tcp.Bind("127.0.0.1:0"))

		cfg := testNET()
		cfg.AcceptLoopInterruptPeriod = 500 * time.Millisecond
		served := new(atomic.Int32)

		done := runParallel(func() error {
			return tcp.Listen(cfg, func(net.Conn) {
				served.Add(1)
			})
		})

		// let the loop block in Accept, so the stop flag is observed only after the next accept
		time.Sleep(50 * time.Millisecond)
		tcp.Stop()

		conn, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		data, _ := io.ReadAll(conn)
		require.Empty(t, data)
		require.NoError(t, conn.Close())

		require.NoError(t, <-done)
		tcp.Wait()
		tcp.Close()
		require.Zero(t, served.Load())
	})

	t.Run("bind error", func(t *testing.T) {
		first := NewTCP()
		require.NoError(t, first.Bind("127.0.0.1:0"))
		defer first.Close()

		second := NewTCP()
		require.Error(t, second.Bind(first.Addr().String()))
	})

	t.Run("admission", func(t *testing.T) {
		tcp := NewTCP()
		require.NoError(t, tcp.Bind("127.0.0.1:0"))

		cfg := testNET()
		cfg.MaxConnections = 1
		served := new(atomic.Int32)
		release := make(chan struct{})

		done := runParallel(func() error {
			return tcp.Listen(cfg, func(net.Conn) {
				served.Add(1)
				<-release
			})
		})

		first, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		defer first.Close()
		require.Eventually(t, func() bool {
			return served.Load() == 1
		}, time.Second, 5*time.Millisecond)

		second, err := net.Dial("tcp", tcp.Addr().String())
		require.NoError(t, err)
		defer second.Close()
		time.Sleep(100 * time.Millisecond)
		require.Equal(t, int32(1), served.Load())

		close(release)
		require.Eventually(t, func() bool {
			return served.Load() == 2
		}, time.Second, 5*time.Millisecond)

		tcp.Stop()
		require.NoError(t, <-done)
		tcp.Wait()
		tcp.Close()
	})
}
