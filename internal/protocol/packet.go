package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Frame kinds. C1 frames carry a one-byte length, C2 frames a big-endian
// two-byte length. The read side is plaintext; the write side is ciphered.
const (
	KindC1 = 0xC1
	KindC2 = 0xC2
)

const (
	headerSizeC1 = 2
	headerSizeC2 = 3

	// PayloadOffset is where an outgoing payload is placed in a write
	// buffer. It leaves room for the largest header; WritePacket frames
	// in place immediately before the payload.
	PayloadOffset = headerSizeC2

	// MinPacketSize is the smallest useful max-size cap: a C1 frame
	// carrying a code, a subcode and a two-byte argument.
	MinPacketSize = 6

	// MaxC1Size is the largest total length a C1 frame can express.
	MaxC1Size = 0xFF

	// DefaultBufSize fits any response frame this server produces.
	DefaultBufSize = 2048
)

// HeaderSize returns the frame header length for a kind.
func HeaderSize(kind byte) int {
	if kind == KindC2 {
		return headerSizeC2
	}
	return headerSizeC1
}

// ReadPacket reads one frame from r into buf and returns its kind and body
// (the bytes after the header, starting with the packet code). The body is a
// subslice of buf. Frames whose total length exceeds maxSize are refused.
func ReadPacket(r io.Reader, buf []byte, maxSize int) (byte, []byte, error) {
	var head [headerSizeC2]byte
	if _, err := io.ReadFull(r, head[:headerSizeC1]); err != nil {
		return 0, nil, err
	}

	kind := head[0]
	var totalLen int
	switch kind {
	case KindC1:
		totalLen = int(head[1])
	case KindC2:
		if _, err := io.ReadFull(r, head[headerSizeC1:]); err != nil {
			return 0, nil, fmt.Errorf("reading packet header: %w", err)
		}
		totalLen = int(binary.BigEndian.Uint16(head[1:]))
	default:
		return 0, nil, fmt.Errorf("invalid frame kind 0x%02X", kind)
	}

	headerSize := HeaderSize(kind)
	if totalLen <= headerSize {
		return 0, nil, fmt.Errorf("invalid packet length: %d", totalLen)
	}
	if totalLen > maxSize {
		return 0, nil, fmt.Errorf("packet length %d exceeds cap %d", totalLen, maxSize)
	}

	bodyLen := totalLen - headerSize
	if bodyLen > len(buf) {
		return 0, nil, fmt.Errorf("packet body %d exceeds buffer size %d", bodyLen, len(buf))
	}

	body := buf[:bodyLen]
	if _, err := io.ReadFull(r, body); err != nil {
		return 0, nil, fmt.Errorf("reading packet body: %w", err)
	}
	return kind, body, nil
}

// WritePacket ciphers the payload in place and writes the framed packet to w.
// Precondition: the payload lives at buf[PayloadOffset : PayloadOffset+payloadLen];
// the header is framed in place immediately before it.
func WritePacket(w io.Writer, c *Cipher, kind byte, buf []byte, payloadLen int) error {
	headerSize := HeaderSize(kind)
	totalLen := headerSize + payloadLen
	if PayloadOffset+payloadLen > len(buf) {
		return fmt.Errorf("write packet: buffer too small (need %d, have %d)", PayloadOffset+payloadLen, len(buf))
	}

	frame := buf[PayloadOffset-headerSize : PayloadOffset+payloadLen]
	switch kind {
	case KindC1:
		if totalLen > MaxC1Size {
			return fmt.Errorf("write packet: length %d exceeds C1 frame", totalLen)
		}
		frame[0] = KindC1
		frame[1] = byte(totalLen)
	case KindC2:
		frame[0] = KindC2
		binary.BigEndian.PutUint16(frame[1:], uint16(totalLen))
	default:
		return fmt.Errorf("write packet: invalid frame kind 0x%02X", kind)
	}

	c.Apply(frame[headerSize:])

	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("writing packet: %w", err)
	}
	return nil
}
