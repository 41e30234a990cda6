// Package sockact adapts one pre-accepted connection handed over by a
// socket-activating supervisor (inetd, systemd with Accept=yes) into the
// serving runtime. The process serves exactly that connection and exits;
// concurrency across clients is the supervisor's business.
package sockact

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"sync"
)

// Adopt wraps the supervisor-provided file as a connected network transport.
// ok is false when the file is not a connected socket, which means the
// process was not started under socket activation; callers should exit
// quietly in that case rather than report an error.
func Adopt(f *os.File) (net.Conn, bool) {
	conn, err := net.FileConn(f)
	if err != nil {
		return nil, false
	}
	return conn, true
}

// ServeConn drives exactly one HTTP/1.1 connection to completion and returns
// once the peer or a handler closes it. Requests pipelined over the
// connection (keep-alive) are served in order. Work already handed to the
// handler is not aborted when ctx is canceled; cancellation only stops the
// server from accepting further requests.
func ServeConn(ctx context.Context, conn net.Conn, h http.Handler) error {
	done := make(chan struct{})
	srv := &http.Server{
		Handler: h,
		ConnState: func(_ net.Conn, state http.ConnState) {
			if state == http.StateClosed || state == http.StateHijacked {
				close(done)
			}
		},
	}

	ln := newOneShotListener(conn)
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case <-done:
	case <-ctx.Done():
	}
	_ = srv.Close()

	err := <-errc
	if errors.Is(err, http.ErrServerClosed) || errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// oneShotListener yields its connection exactly once, then blocks every
// further Accept until the listener is closed. That keeps http.Server's
// accept loop parked while the single connection is served.
type oneShotListener struct {
	addr net.Addr

	mu   sync.Mutex
	conn net.Conn

	closeOnce sync.Once
	closed    chan struct{}
}

func newOneShotListener(conn net.Conn) *oneShotListener {
	return &oneShotListener{
		addr:   conn.LocalAddr(),
		conn:   conn,
		closed: make(chan struct{}),
	}
}

func (l *oneShotListener) Accept() (net.Conn, error) {
	l.mu.Lock()
	c := l.conn
	l.conn = nil
	l.mu.Unlock()
	if c != nil {
		return c, nil
	}
	<-l.closed
	return nil, net.ErrClosed
}

func (l *oneShotListener) Close() error {
	l.closeOnce.Do(func() { close(l.closed) })
	return nil
}

func (l *oneShotListener) Addr() net.Addr { return l.addr }
