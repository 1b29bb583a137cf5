package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/udisondev/muconnect/internal/client"
	"github.com/udisondev/muconnect/internal/config"
	"github.com/udisondev/muconnect/internal/connect"
	"github.com/udisondev/muconnect/internal/protocol"
	"github.com/udisondev/muconnect/internal/realm"
	"github.com/udisondev/muconnect/internal/rpc"
	"github.com/udisondev/muconnect/internal/task"
)

// Server composes both planes over the shared realm directory: the game
// client listener and the realm control plane, each under its own
// supervisor.
type Server struct {
	realms    *realm.Directory
	clients   *client.Pool
	listener  *connect.Listener
	rpcServer *rpc.Server

	clientCtl *task.Controller
	rpcCtl    *task.Controller
}

// Spawn wires the components from cfg and starts both planes.
func Spawn(cfg config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	realms := realm.NewDirectory()
	clients := client.NewPool(cfg.MaxConnections, cfg.MaxConnectionsPerIP)

	responder := connect.NewResponder(realms, cfg.IgnoreUnknownPackets)
	listener := connect.NewListener(cfg, clients, responder, protocol.DefaultCipher())
	rpcServer := rpc.NewServer(cfg, realms)

	observeRealms(realms)
	observeClients(clients)
	observeSessionErrors(listener)

	return &Server{
		realms:    realms,
		clients:   clients,
		listener:  listener,
		rpcServer: rpcServer,
		clientCtl: task.Spawn(listener.Run),
		rpcCtl:    task.Spawn(rpcServer.Run),
	}, nil
}

// IsActive reports whether both planes are still running.
func (s *Server) IsActive() bool {
	return s.clientCtl.IsAlive() && s.rpcCtl.IsAlive()
}

// Stop signals both planes and waits for them to drain.
func (s *Server) Stop() error {
	return errors.Join(
		s.clientCtl.Stop(),
		s.rpcCtl.Stop(),
	)
}

// Wait blocks until the client plane finishes on its own, then stops the
// control plane.
func (s *Server) Wait() error {
	return errors.Join(
		s.clientCtl.Wait(),
		s.rpcCtl.Stop(),
	)
}

// ClientAddr returns the client plane's bound address, or nil before bind.
func (s *Server) ClientAddr() net.Addr {
	return s.listener.Addr()
}

// RPCAddr returns the control plane's bound address, or nil before bind.
func (s *Server) RPCAddr() net.Addr {
	return s.rpcServer.Addr()
}

// Realms exposes the directory to embedding hosts.
func (s *Server) Realms() *realm.Directory {
	return s.realms
}
