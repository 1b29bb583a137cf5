package serverpackets

import (
	"encoding/binary"
	"math"
)

// Response codes mirror the request codes they answer.
const (
	CodeConnectServerResult = 0x05
	CodeRealm               = 0xF4

	SubRealmConnect = 0x03
	SubRealmList    = 0x06
)

// HostFieldSize is the fixed width of the host field in a RealmConnect
// response. Longer hosts are truncated, shorter ones NUL padded.
const HostFieldSize = 16

// ConnectServerResult writes the hello response into buf.
// Returns the payload length.
func ConnectServerResult(buf []byte, success bool) int {
	buf[0] = CodeConnectServerResult
	if success {
		buf[1] = 1
	} else {
		buf[1] = 0
	}
	return 2
}

// RealmConnect writes a realm endpoint response into buf.
func RealmConnect(buf []byte, host string, port uint16) int {
	off := 0
	buf[off] = CodeRealm
	off++
	buf[off] = SubRealmConnect
	off++

	field := buf[off : off+HostFieldSize]
	clear(field)
	copy(field, host)
	off += HostFieldSize

	binary.LittleEndian.PutUint16(buf[off:], port)
	off += 2

	return off
}

// RealmListEntry is one row of the realm list response.
type RealmListEntry struct {
	ID   uint16
	Load byte
}

// RealmList writes the realm list response into buf.
func RealmList(buf []byte, entries []RealmListEntry) int {
	off := 0
	buf[off] = CodeRealm
	off++
	buf[off] = SubRealmList
	off++

	binary.LittleEndian.PutUint16(buf[off:], uint16(len(entries)))
	off += 2

	for _, e := range entries {
		binary.LittleEndian.PutUint16(buf[off:], e.ID)
		off += 2
		buf[off] = e.Load
		off++
	}

	return off
}

// RealmListSize returns the payload length RealmList will produce.
func RealmListSize(entries int) int {
	return 4 + entries*3
}

// LoadByte converts a load factor in [0, 1] to its wire encoding.
func LoadByte(load float32) byte {
	if load <= 0 {
		return 0
	}
	if load >= 1 {
		return 255
	}
	return byte(math.Round(float64(load) * 255))
}
