package connect

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/udisondev/muconnect/internal/connect/clientpackets"
	"github.com/udisondev/muconnect/internal/connect/serverpackets"
	"github.com/udisondev/muconnect/internal/protocol"
	"github.com/udisondev/muconnect/internal/realm"
)

// Responder maps one inbound client request to its response payload.
// It is stateless; for a fixed directory snapshot the same request always
// produces the same response.
type Responder struct {
	realms        *realm.Directory
	ignoreUnknown bool
}

// NewResponder creates a responder backed by the realm directory.
func NewResponder(realms *realm.Directory, ignoreUnknown bool) *Responder {
	return &Responder{realms: realms, ignoreUnknown: ignoreUnknown}
}

// Respond decodes one frame body and writes the response payload into out.
// Returns the response frame kind and payload length; n == 0 means no
// response is due.
func (r *Responder) Respond(kind byte, body, out []byte) (byte, int, error) {
	p, err := clientpackets.Decode(kind, body)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid packet: %w", err)
	}

	switch p := p.(type) {
	case clientpackets.ConnectServerRequest:
		if p.Version != clientpackets.Version {
			return 0, 0, &VersionMismatchError{Has: p.Version, Expected: clientpackets.Version}
		}
		return protocol.KindC1, serverpackets.ConnectServerResult(out, true), nil

	case clientpackets.RealmConnectRequest:
		rlm, err := r.realms.Get(realm.ID(p.ID))
		if err != nil {
			return 0, 0, fmt.Errorf("realm state: %w", err)
		}
		return protocol.KindC1, serverpackets.RealmConnect(out, rlm.Host, rlm.Port), nil

	case clientpackets.RealmListRequest:
		entries := make([]serverpackets.RealmListEntry, 0, r.realms.Len())
		r.realms.ForEach(func(rlm realm.Realm) {
			entries = append(entries, serverpackets.RealmListEntry{
				ID:   uint16(rlm.ID),
				Load: serverpackets.LoadByte(rlm.LoadFactor()),
			})
		})
		// ForEach order is unspecified; sort so the response is stable.
		sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
		return protocol.KindC2, serverpackets.RealmList(out, entries), nil

	case clientpackets.Unknown:
		unknownErr := &UnknownPacketError{Header: p.Header}
		if r.ignoreUnknown {
			slog.Warn("ignoring unknown packet", "header", fmt.Sprintf("%X", p.Header))
			return 0, 0, nil
		}
		return 0, 0, unknownErr
	}

	return 0, 0, fmt.Errorf("unhandled packet type %T", p)
}
