package connect

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/udisondev/muconnect/internal/connect/clientpackets"
	"github.com/udisondev/muconnect/internal/connect/serverpackets"
	"github.com/udisondev/muconnect/internal/protocol"
	"github.com/udisondev/muconnect/internal/realm"
)

func connectRequest(version uint16) []byte {
	body := []byte{clientpackets.CodeConnectServerRequest, 0, 0}
	binary.LittleEndian.PutUint16(body[1:], version)
	return body
}

func TestResponder_ConnectServerRequest(t *testing.T) {
	r := NewResponder(realm.NewDirectory(), false)
	out := make([]byte, 64)

	kind, n, err := r.Respond(protocol.KindC1, connectRequest(clientpackets.Version), out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != protocol.KindC1 || n != 2 {
		t.Fatalf("unexpected response frame: kind=0x%02X n=%d", kind, n)
	}
	if out[0] != serverpackets.CodeConnectServerResult || out[1] != 1 {
		t.Errorf("expected success result, got %x", out[:n])
	}
}

func TestResponder_VersionMismatch(t *testing.T) {
	r := NewResponder(realm.NewDirectory(), false)

	_, _, err := r.Respond(protocol.KindC1, connectRequest(clientpackets.Version+1), make([]byte, 64))

	var mismatch *VersionMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected VersionMismatchError, got %v", err)
	}
	if mismatch.Has != clientpackets.Version+1 || mismatch.Expected != clientpackets.Version {
		t.Errorf("unexpected mismatch fields: %+v", mismatch)
	}
}

func TestResponder_RealmConnect(t *testing.T) {
	realms := realm.NewDirectory()
	_ = realms.Add(realm.Realm{ID: 7, Host: "10.0.0.1", Port: 55901, Clients: 3, Capacity: 100})
	r := NewResponder(realms, false)

	out := make([]byte, 64)
	kind, n, err := r.Respond(protocol.KindC1, []byte{clientpackets.CodeRealm, clientpackets.SubRealmConnect, 7, 0}, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != protocol.KindC1 {
		t.Errorf("expected C1 response, got 0x%02X", kind)
	}
	if !bytes.Equal(out[2:10], []byte("10.0.0.1")) {
		t.Errorf("unexpected host in response: %q", out[2:2+serverpackets.HostFieldSize])
	}
	if port := binary.LittleEndian.Uint16(out[2+serverpackets.HostFieldSize:]); port != 55901 {
		t.Errorf("expected port 55901, got %d", port)
	}
	_ = n
}

func TestResponder_RealmConnectAbsent(t *testing.T) {
	r := NewResponder(realm.NewDirectory(), false)

	_, _, err := r.Respond(protocol.KindC1, []byte{clientpackets.CodeRealm, clientpackets.SubRealmConnect, 9, 0}, make([]byte, 64))
	if !errors.Is(err, realm.ErrInexistentID) {
		t.Errorf("expected realm state error, got %v", err)
	}
}

func TestResponder_RealmList(t *testing.T) {
	realms := realm.NewDirectory()
	_ = realms.Add(realm.Realm{ID: 7, Host: "10.0.0.1", Port: 55901, Clients: 3, Capacity: 100})
	r := NewResponder(realms, false)

	out := make([]byte, 64)
	kind, n, err := r.Respond(protocol.KindC1, []byte{clientpackets.CodeRealm, clientpackets.SubRealmList}, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != protocol.KindC2 {
		t.Errorf("expected C2 response, got 0x%02X", kind)
	}
	if n != serverpackets.RealmListSize(1) {
		t.Fatalf("unexpected payload length %d", n)
	}
	if count := binary.LittleEndian.Uint16(out[2:]); count != 1 {
		t.Errorf("expected one entry, got %d", count)
	}
	if id := binary.LittleEndian.Uint16(out[4:]); id != 7 {
		t.Errorf("expected realm 7, got %d", id)
	}
	if out[6] != serverpackets.LoadByte(0.03) {
		t.Errorf("expected load byte %d, got %d", serverpackets.LoadByte(0.03), out[6])
	}
}

func TestResponder_RealmListEmpty(t *testing.T) {
	r := NewResponder(realm.NewDirectory(), false)

	out := make([]byte, 64)
	kind, n, err := r.Respond(protocol.KindC1, []byte{clientpackets.CodeRealm, clientpackets.SubRealmList}, out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != protocol.KindC2 || n != serverpackets.RealmListSize(0) {
		t.Fatalf("unexpected frame: kind=0x%02X n=%d", kind, n)
	}
	if count := binary.LittleEndian.Uint16(out[2:]); count != 0 {
		t.Errorf("expected empty list, got %d entries", count)
	}
}

func TestResponder_UnknownPacket(t *testing.T) {
	r := NewResponder(realm.NewDirectory(), false)

	_, _, err := r.Respond(protocol.KindC1, []byte{0x42, 0x01, 0x02}, make([]byte, 64))
	var unknown *UnknownPacketError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownPacketError, got %v", err)
	}
	if !bytes.Equal(unknown.Header, []byte{0xC1, 0x42, 0x01, 0x02}) {
		t.Errorf("unexpected footprint %x", unknown.Header)
	}

	ignoring := NewResponder(realm.NewDirectory(), true)
	_, n, err := ignoring.Respond(protocol.KindC1, []byte{0x42, 0x01, 0x02}, make([]byte, 64))
	if err != nil || n != 0 {
		t.Errorf("expected unknown packet ignored, got n=%d err=%v", n, err)
	}
}

// Same request against the same directory snapshot must produce identical
// output.
func TestResponder_Pure(t *testing.T) {
	realms := realm.NewDirectory()
	_ = realms.Add(realm.Realm{ID: 1, Host: "r1", Port: 1, Clients: 10, Capacity: 20})
	_ = realms.Add(realm.Realm{ID: 2, Host: "r2", Port: 2, Clients: 5, Capacity: 20})
	r := NewResponder(realms, false)

	body := []byte{clientpackets.CodeRealm, clientpackets.SubRealmConnect, 1, 0}

	first := make([]byte, 64)
	second := make([]byte, 64)
	_, n1, err1 := r.Respond(protocol.KindC1, body, first)
	_, n2, err2 := r.Respond(protocol.KindC1, body, second)

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if n1 != n2 || !bytes.Equal(first[:n1], second[:n2]) {
		t.Error("expected identical responses for identical input")
	}
}
