// SPDX-License-Identifier: MIT

package echo

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ErrServerClosed is returned by Serve when the server was already used.
var ErrServerClosed = errors.New("echo: server closed")

// Server answers every read with a fixed reply. A Server serves one listener once.
type Server struct {
	opts   options
	served atomic.Bool

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// NewServer returns a Server configured by opts.
func NewServer(opts ...Option) *Server {
	return &Server{
		opts:  gatherOptions(opts...),
		conns: make(map[net.Conn]struct{}),
	}
}

// ListenAndServe listens on the TCP address addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, handling each on its own
// goroutine. On shutdown it closes ln and every live connection and waits for
// all handlers; it then returns nil. An accept failure is returned after the
// same cleanup.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if !s.served.CompareAndSwap(false, true) {
		return ErrServerClosed
	}
	s.opts.logger.Info("listening", "addr", ln.Addr().String())
	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	var g errgroup.Group
	var acceptErr error
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() == nil {
				acceptErr = err
			}
			break
		}
		s.opts.logger.Info("accepted connection", "remote", conn.RemoteAddr().String())
		s.track(conn, true)
		g.Go(func() error {
			defer s.track(conn, false)
			if err := s.ServeConn(ctx, conn); err != nil {
				s.opts.logger.Warn("error processing connection", "remote", conn.RemoteAddr().String(), "err", err)
			}
			return nil
		})
	}

	_ = ln.Close()
	s.closeAll()
	_ = g.Wait()

	return acceptErr
}

// ServeConn runs the read/reply loop on one connection and closes it on return.
// A clean close by the peer returns nil, as does a shutdown of ctx.
func (s *Server) ServeConn(ctx context.Context, conn net.Conn) error {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	log := s.opts.logger.With("remote", conn.RemoteAddr().String())
	buf := make([]byte, s.opts.bufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			log.Info("received", "bytes", n, "content", string(buf[:n]))
			if _, werr := conn.Write(s.opts.reply); werr != nil {
				if ctx.Err() != nil {
					return nil
				}
				return werr
			}
		}
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			log.Info("connection closed")
			return nil
		case ctx.Err() != nil:
			return nil
		default:
			return err
		}
	}
}

func (s *Server) track(conn net.Conn, add bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if add {
		s.conns[conn] = struct{}{}
		return
	}
	delete(s.conns, conn)
}

func (s *Server) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.conns {
		_ = c.Close()
	}
}
