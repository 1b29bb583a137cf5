package connect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/udisondev/muconnect/internal/client"
	"github.com/udisondev/muconnect/internal/config"
	"github.com/udisondev/muconnect/internal/event"
	"github.com/udisondev/muconnect/internal/protocol"
)

// Listener accepts game client connections and serves each one on its own
// session goroutine. Session errors are dispatched on the error bus and
// otherwise swallowed; only the listener itself can fail Run.
type Listener struct {
	cfg       config.Config
	pool      *client.Pool
	responder *Responder
	cipher    *protocol.Cipher
	sendPool  *protocol.BytePool
	readPool  *protocol.BytePool
	onError   *event.Bus[error]

	listener net.Listener
	mu       sync.Mutex
}

// NewListener creates the client plane listener.
func NewListener(cfg config.Config, pool *client.Pool, responder *Responder, cipher *protocol.Cipher) *Listener {
	return &Listener{
		cfg:       cfg,
		pool:      pool,
		responder: responder,
		cipher:    cipher,
		sendPool:  protocol.NewBytePool(protocol.DefaultBufSize),
		readPool:  protocol.NewBytePool(protocol.DefaultBufSize),
		onError:   event.New[error](),
	}
}

// OnError is dispatched with every terminal session error.
func (l *Listener) OnError() *event.Bus[error] { return l.onError }

// Addr returns the bound address, or nil before Run.
func (l *Listener) Addr() net.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.listener == nil {
		return nil
	}
	return l.listener.Addr()
}

// Run binds the configured endpoint and serves until ctx is cancelled.
// Binding failure is fatal for the component.
func (l *Listener) Run(ctx context.Context) error {
	addr := l.cfg.ClientAddr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	l.mu.Lock()
	l.listener = ln
	l.mu.Unlock()

	return l.Serve(ctx, ln)
}

// Serve runs the accept loop on a ready listener.
// Used by tests with an arbitrary listener.
func (l *Listener) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	slog.Info("connect listener started", "address", ln.Addr())

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			slog.Error("failed to accept connection", "error", err)
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.handleConnection(ctx, conn); err != nil {
				l.onError.Dispatch(err)
			}
		}()
	}

	// Outstanding sessions drain, bounded by their own deadlines.
	wg.Wait()
	return nil
}
