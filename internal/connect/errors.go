package connect

import (
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/udisondev/muconnect/internal/client"
)

// Client plane errors. Any of these terminates the enclosing session only.
var (
	// ErrInvalidIPVersion is returned for peers that are not IPv4.
	ErrInvalidIPVersion = errors.New("invalid ip version; expected ipv4")

	// ErrTimedOut is returned when a read or write deadline expires.
	ErrTimedOut = errors.New("timed out")

	// ErrMaxPacketsExceeded is returned when a session sends more than
	// its allowed number of requests.
	ErrMaxPacketsExceeded = errors.New("max packets exceeded")
)

// VersionMismatchError is returned when a client announces an unexpected
// protocol revision. The client observes only the TCP close.
type VersionMismatchError struct {
	Has      uint16
	Expected uint16
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("version mismatch; has %d, expected %d", e.Has, e.Expected)
}

// UnknownPacketError is returned for unrecognized packets, carrying the
// header footprint for diagnostics.
type UnknownPacketError struct {
	Header []byte
}

func (e *UnknownPacketError) Error() string {
	return fmt.Sprintf("unknown packet header %X", e.Header)
}

// isTimeout reports whether err is a network deadline expiry.
func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// isConnReset reports whether err is a peer reset, which session error
// logging drops.
func isConnReset(err error) bool {
	return errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE)
}

// AdmissionFailed reports whether err is an admission refusal of any kind:
// a cap rejection or a connect-event veto.
func AdmissionFailed(err error) bool {
	var perIP *client.PerIPFullError
	return errors.Is(err, client.ErrRejected) ||
		errors.Is(err, client.ErrGlobalFull) ||
		errors.As(err, &perIP)
}

// SuppressedError reports whether a session error is routine noise: an
// admission refusal or a peer reset.
func SuppressedError(err error) bool {
	return AdmissionFailed(err) || isConnReset(err)
}
