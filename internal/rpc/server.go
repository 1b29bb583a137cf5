package rpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/udisondev/muconnect/internal/config"
	"github.com/udisondev/muconnect/internal/realm"
	"github.com/udisondev/muconnect/internal/rpc/realmpb"
)

// Server hosts the realm control plane. Each realm opens one RegisterRealm
// stream for its lifetime; the stream's session owns that realm's directory
// entry.
type Server struct {
	realmpb.UnimplementedRealmServiceServer

	cfg    config.Config
	realms *realm.Directory

	// shutdown closes when Run's context ends; in-flight sessions select
	// against it and fail with Unavailable.
	shutdown chan struct{}

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates the realm control plane server.
func NewServer(cfg config.Config, realms *realm.Directory) *Server {
	return &Server{
		cfg:      cfg,
		realms:   realms,
		shutdown: make(chan struct{}),
	}
}

// Addr returns the bound address, or nil before Run. With rpc_port 0 this is
// the ephemeral port the kernel picked.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Run binds the configured endpoint and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.RPCAddr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	return s.Serve(ctx, ln)
}

// Serve runs the gRPC server on a ready listener.
// Used by tests with an arbitrary listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := grpc.NewServer()
	realmpb.RegisterRealmServiceServer(srv, s)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("realm control plane started", "address", ln.Addr())
		if err := srv.Serve(ln); err != nil {
			return fmt.Errorf("serving rpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		close(s.shutdown)

		// Let in-flight sessions flush their Unavailable status, then
		// cut the remainder off.
		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(s.cfg.MaxUnresponsiveTime.Get()):
			srv.Stop()
			<-stopped
		}
		return nil
	})
	return g.Wait()
}

// RegisterRealm implements realmpb.RealmServiceServer.
func (s *Server) RegisterRealm(stream realmpb.RealmService_RegisterRealmServer) error {
	sess := &session{realms: s.realms, shutdown: s.shutdown}
	return sess.run(stream)
}
