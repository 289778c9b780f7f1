package settings

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// A Hasher accumulates the fields of a settings record into a hash.
// The zero value is not usable; use NewHasher.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher creates new Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// WriteBool adds b to the hash.
func (h *Hasher) WriteBool(b bool) {
	h.buf[0] = 0
	if b {
		h.buf[0] = 1
	}
	h.d.Write(h.buf[:1])
}

// WriteInt adds i to the hash.
func (h *Hasher) WriteInt(i int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(i))
	h.d.Write(h.buf[:])
}

// WriteString adds s to the hash.
// The length is written first so adjacent strings do not run together.
func (h *Hasher) WriteString(s string) {
	h.WriteInt(len(s))
	h.d.WriteString(s)
}

// Sum64 returns the hash.
func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}
