package connect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/netip"
	"time"

	"github.com/udisondev/muconnect/internal/protocol"
)

// handleConnection runs one client session: admit, then read → limit →
// respond → write until the session ends. The admission handle is released
// on every exit path.
func (l *Listener) handleConnection(ctx context.Context, conn net.Conn) error {
	done := make(chan struct{})
	defer close(done)
	defer conn.Close()

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	peer, err := peerAddr(conn)
	if err != nil {
		return err
	}

	handle, err := l.pool.Add(peer)
	if err != nil {
		return fmt.Errorf("admitting client from %s: %w", peer, err)
	}
	defer handle.Release()

	readBuf := l.readPool.Get(protocol.DefaultBufSize)
	defer l.readPool.Put(readBuf)
	sendBuf := l.sendPool.Get(protocol.DefaultBufSize)
	defer l.sendPool.Put(sendBuf)

	requests := 0
	for {
		if err := conn.SetReadDeadline(time.Now().Add(l.cfg.MaxIdleTime.Get())); err != nil {
			return fmt.Errorf("setting read deadline: %w", err)
		}

		kind, body, err := protocol.ReadPacket(conn, readBuf, l.cfg.MaxPacketSize)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return nil
			case errors.Is(err, net.ErrClosed), ctx.Err() != nil:
				// Shutdown closed the connection under us.
				return nil
			case isTimeout(err):
				return fmt.Errorf("reading request: %w", ErrTimedOut)
			default:
				return fmt.Errorf("reading request: %w", err)
			}
		}

		requests++
		if requests > l.cfg.MaxRequests {
			return ErrMaxPacketsExceeded
		}

		respKind, n, err := l.responder.Respond(kind, body, sendBuf[protocol.PayloadOffset:])
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}

		if err := conn.SetWriteDeadline(time.Now().Add(l.cfg.MaxUnresponsiveTime.Get())); err != nil {
			return fmt.Errorf("setting write deadline: %w", err)
		}
		if err := protocol.WritePacket(conn, l.cipher, respKind, sendBuf, n); err != nil {
			if isTimeout(err) {
				return fmt.Errorf("writing response: %w", ErrTimedOut)
			}
			return fmt.Errorf("writing response: %w", err)
		}
	}
}

// peerAddr resolves the connection's remote address and requires IPv4.
func peerAddr(conn net.Conn) (netip.AddrPort, error) {
	tcp, ok := conn.RemoteAddr().(*net.TCPAddr)
	if !ok {
		return netip.AddrPort{}, fmt.Errorf("cannot resolve address %v", conn.RemoteAddr())
	}

	ap := tcp.AddrPort()
	addr := ap.Addr()
	if addr.Is4In6() {
		addr = addr.Unmap()
		ap = netip.AddrPortFrom(addr, ap.Port())
	}
	if !addr.Is4() {
		return netip.AddrPort{}, ErrInvalidIPVersion
	}
	return ap, nil
}
