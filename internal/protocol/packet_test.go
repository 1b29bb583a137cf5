package protocol

import (
	"bytes"
	"strings"
	"testing"
)

func TestCipher_Involution(t *testing.T) {
	c := DefaultCipher()

	data := []byte{0x05, 0x01, 0xAA, 0xBB, 0x00, 0xFF, 0x13}
	original := bytes.Clone(data)

	c.Apply(data)
	if bytes.Equal(data, original) {
		t.Error("expected cipher to change the payload")
	}
	c.Apply(data)
	if !bytes.Equal(data, original) {
		t.Errorf("expected double application to restore input, got %x", data)
	}
}

func TestNewCipher_TableLength(t *testing.T) {
	if _, err := NewCipher(make([]byte, 16)); err == nil {
		t.Error("expected error for short table")
	}
	if _, err := NewCipher(make([]byte, CipherTableSize)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWriteRead_C1RoundTrip(t *testing.T) {
	c := DefaultCipher()

	buf := make([]byte, 64)
	payload := []byte{0xF4, 0x03, 0x07, 0x00}
	copy(buf[PayloadOffset:], payload)

	var wire bytes.Buffer
	if err := WritePacket(&wire, c, KindC1, buf, len(payload)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	kind, body, err := ReadPacket(&wire, make([]byte, 64), 255)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if kind != KindC1 {
		t.Errorf("expected C1 frame, got 0x%02X", kind)
	}

	// The read side is plaintext, so decipher to compare.
	c.Apply(body)
	if !bytes.Equal(body, payload) {
		t.Errorf("expected payload %x, got %x", payload, body)
	}
}

func TestWriteRead_C2RoundTrip(t *testing.T) {
	c := DefaultCipher()

	payload := make([]byte, 500)
	payload[0] = 0xF4
	payload[1] = 0x06
	for i := 2; i < len(payload); i++ {
		payload[i] = byte(i)
	}

	buf := make([]byte, 1024)
	copy(buf[PayloadOffset:], payload)

	var wire bytes.Buffer
	if err := WritePacket(&wire, c, KindC2, buf, len(payload)); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	kind, body, err := ReadPacket(&wire, make([]byte, 1024), 1024)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if kind != KindC2 {
		t.Errorf("expected C2 frame, got 0x%02X", kind)
	}

	c.Apply(body)
	if !bytes.Equal(body, payload) {
		t.Error("expected payload to survive the round trip")
	}
}

func TestWritePacket_C1Overflow(t *testing.T) {
	c := DefaultCipher()
	buf := make([]byte, 1024)
	if err := WritePacket(&bytes.Buffer{}, c, KindC1, buf, 300); err == nil {
		t.Error("expected error for payload exceeding the C1 frame")
	}
}

func TestReadPacket_MaxSize(t *testing.T) {
	// C1 frame of total length 10 against a cap of 6.
	wire := bytes.NewReader([]byte{KindC1, 10, 0xF4, 0x06, 0, 0, 0, 0, 0, 0})
	_, _, err := ReadPacket(wire, make([]byte, 64), MinPacketSize)
	if err == nil || !strings.Contains(err.Error(), "exceeds cap") {
		t.Errorf("expected size-cap error, got %v", err)
	}
}

func TestReadPacket_InvalidKind(t *testing.T) {
	wire := bytes.NewReader([]byte{0x99, 4, 0x00, 0x00})
	if _, _, err := ReadPacket(wire, make([]byte, 64), 255); err == nil {
		t.Error("expected error for unknown frame kind")
	}
}

func TestReadPacket_TruncatedLength(t *testing.T) {
	wire := bytes.NewReader([]byte{KindC1, 1})
	if _, _, err := ReadPacket(wire, make([]byte, 64), 255); err == nil {
		t.Error("expected error for length shorter than the header")
	}
}

func TestBytePool_Reuse(t *testing.T) {
	p := NewBytePool(128)

	b := p.Get(64)
	if len(b) != 64 {
		t.Fatalf("expected length 64, got %d", len(b))
	}
	b[0] = 0xFF
	p.Put(b)

	b2 := p.Get(64)
	if b2[0] != 0 {
		t.Error("expected pooled buffer to be cleared")
	}

	big := p.Get(4096)
	if len(big) != 4096 {
		t.Errorf("expected oversized request honored, got %d", len(big))
	}
}
