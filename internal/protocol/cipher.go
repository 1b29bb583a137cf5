package protocol

import "fmt"

// CipherTableSize is the length of the XOR cipher table.
const CipherTableSize = 32

// defaultTable is the stock 32-byte XOR table shipped with the game client.
var defaultTable = [CipherTableSize]byte{
	0xAB, 0x11, 0xCD, 0xFE, 0x18, 0x23, 0xC5, 0xA3,
	0xCA, 0x33, 0xC1, 0xCC, 0x66, 0x67, 0x21, 0xF3,
	0x32, 0x12, 0x15, 0x35, 0x29, 0xFF, 0xFE, 0x1D,
	0x44, 0xEF, 0xCD, 0x41, 0x26, 0x3C, 0x4E, 0x4D,
}

// Cipher applies the XOR table to outgoing packet payloads.
// The transform is an involution: applying it twice restores the input.
type Cipher struct {
	table [CipherTableSize]byte
}

// NewCipher creates a cipher from a 32-byte table.
func NewCipher(table []byte) (*Cipher, error) {
	if len(table) != CipherTableSize {
		return nil, fmt.Errorf("cipher table must be %d bytes, got %d", CipherTableSize, len(table))
	}
	c := &Cipher{}
	copy(c.table[:], table)
	return c, nil
}

// DefaultCipher returns a cipher using the stock table.
func DefaultCipher() *Cipher {
	return &Cipher{table: defaultTable}
}

// Apply XORs data in place against the table.
func (c *Cipher) Apply(data []byte) {
	for i := range data {
		data[i] ^= c.table[i%CipherTableSize]
	}
}
