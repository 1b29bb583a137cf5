package server

import (
	"log/slog"
	"sync/atomic"

	"github.com/armon/go-metrics"

	"github.com/udisondev/muconnect/internal/client"
	"github.com/udisondev/muconnect/internal/connect"
	"github.com/udisondev/muconnect/internal/event"
	"github.com/udisondev/muconnect/internal/realm"
)

// observeRealms wires logging and metrics onto the directory's lifecycle
// events. Subscribers run under the directory lock and must stay cheap.
func observeRealms(realms *realm.Directory) {
	var live atomic.Int64

	realms.OnRegister().Subscribe(func(a *event.Args[realm.Realm]) {
		slog.Info("realm registered", "realm", a.Value.String())
		metrics.IncrCounter([]string{"realm", "registered"}, 1)
		metrics.SetGauge([]string{"realm", "live"}, float32(live.Add(1)))
	})
	realms.OnDeregister().Subscribe(func(a *event.Args[realm.Realm]) {
		slog.Info("realm deregistered", "realm", a.Value.String())
		metrics.IncrCounter([]string{"realm", "deregistered"}, 1)
		metrics.SetGauge([]string{"realm", "live"}, float32(live.Add(-1)))
	})
	realms.OnUpdate().Subscribe(func(a *event.Args[realm.Realm]) {
		slog.Debug("realm updated", "realm", a.Value.String())
		metrics.IncrCounter([]string{"realm", "updates"}, 1)
	})
}

// observeClients wires logging and metrics onto the admission pool. A
// connect dispatch that was vetoed earlier in the chain is skipped so the
// gauge stays balanced with disconnects.
func observeClients(pool *client.Pool) {
	var live atomic.Int64

	pool.OnConnect().Subscribe(func(a *event.Args[client.Client]) {
		if a.Prevented() {
			return
		}
		slog.Info("client connected", "client", a.Value.String())
		metrics.IncrCounter([]string{"client", "connected"}, 1)
		metrics.SetGauge([]string{"client", "live"}, float32(live.Add(1)))
	})
	pool.OnDisconnect().Subscribe(func(a *event.Args[client.Client]) {
		slog.Info("client disconnected", "client", a.Value.String())
		metrics.SetGauge([]string{"client", "live"}, float32(live.Add(-1)))
	})
}

// observeSessionErrors logs terminal session errors. Admission refusals are
// logged as refusals and counted separately; peer resets are dropped.
func observeSessionErrors(l *connect.Listener) {
	l.OnError().Subscribe(func(a *event.Args[error]) {
		err := a.Value
		if connect.AdmissionFailed(err) {
			slog.Warn("client refused", "error", err)
			metrics.IncrCounter([]string{"client", "rejected"}, 1)
			return
		}
		if connect.SuppressedError(err) {
			return
		}
		slog.Warn("client session ended", "error", err)
		metrics.IncrCounter([]string{"client", "errors"}, 1)
	})
}
