package rpc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/udisondev/muconnect/internal/realm"
	"github.com/udisondev/muconnect/internal/rpc/realmpb"
)

// realmStream is the server side of one registration stream.
// realmpb.RealmService_RegisterRealmServer satisfies it; tests use fakes.
type realmStream interface {
	Recv() (*realmpb.RealmParams, error)
	SendAndClose(*realmpb.RealmResult) error
}

type recvResult struct {
	params *realmpb.RealmParams
	err    error
}

// session drives one realm's registration stream: exactly one definition,
// then any number of status updates, then deregistration. The directory
// entry it registers lives no longer than the session.
type session struct {
	realms   *realm.Directory
	shutdown <-chan struct{}
}

func (s *session) run(stream realmStream) error {
	recvCh := make(chan recvResult)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			params, err := stream.Recv()
			select {
			case recvCh <- recvResult{params: params, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	var id realm.ID
	select {
	case <-s.shutdown:
		return status.Error(codes.Unavailable, "shutting down")
	case r := <-recvCh:
		switch {
		case errors.Is(r.err, io.EOF):
			return status.Error(codes.Canceled, "stream closed before registration")
		case r.err != nil:
			return status.Errorf(codes.Aborted, "stream receive: %v", r.err)
		}

		def := r.params.GetDefinition()
		if def == nil {
			return status.Error(codes.InvalidArgument, "expected realm definition")
		}
		rlm, err := realmFromDefinition(def)
		if err != nil {
			return status.Errorf(codes.InvalidArgument, "invalid realm definition: %v", err)
		}
		if err := s.realms.Add(rlm); err != nil {
			return status.Errorf(codes.InvalidArgument, "realm registration failed: %v", err)
		}
		id = rlm.ID
	}

	// From here every exit path deregisters the realm.
	defer func() {
		if _, err := s.realms.Remove(id); err != nil {
			slog.Error("realm deregistration failed", "id", id, "error", err)
		}
	}()

	for {
		select {
		case <-s.shutdown:
			return status.Error(codes.Unavailable, "shutting down")
		case r := <-recvCh:
			switch {
			case errors.Is(r.err, io.EOF):
				if err := stream.SendAndClose(&realmpb.RealmResult{}); err != nil {
					slog.Warn("failed to acknowledge deregistration", "id", id, "error", err)
				}
				return nil
			case r.err != nil:
				return status.Errorf(codes.Aborted, "stream receive: %v", r.err)
			}

			st := r.params.GetStatus()
			if st == nil {
				return status.Error(codes.InvalidArgument, "expected realm status")
			}
			err := s.realms.Update(id, func(rlm *realm.Realm) {
				rlm.Clients = st.GetClients()
				rlm.Capacity = st.GetCapacity()
			})
			if err != nil {
				return status.Errorf(codes.Internal, "realm update failed: %v", err)
			}
		}
	}
}

// realmFromDefinition validates a definition frame.
func realmFromDefinition(def *realmpb.RealmDefinition) (realm.Realm, error) {
	if def.GetId() > math.MaxUint16 {
		return realm.Realm{}, fmt.Errorf("id %d does not fit u16", def.GetId())
	}
	if def.GetPort() > math.MaxUint16 {
		return realm.Realm{}, fmt.Errorf("port %d does not fit u16", def.GetPort())
	}
	if def.GetHost() == "" {
		return realm.Realm{}, fmt.Errorf("host must not be empty")
	}

	st := def.GetStatus()
	if st.GetClients() > st.GetCapacity() {
		return realm.Realm{}, fmt.Errorf("clients %d exceed capacity %d", st.GetClients(), st.GetCapacity())
	}

	return realm.Realm{
		ID:       realm.ID(def.GetId()),
		Host:     def.GetHost(),
		Port:     uint16(def.GetPort()),
		Clients:  st.GetClients(),
		Capacity: st.GetCapacity(),
	}, nil
}
