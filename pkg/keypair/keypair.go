// Package keypair holds the data model shared by the generator, the encoder
// and the batch writer.
package keypair

import (
	"encoding/binary"
	"math/big"
)

// Limbs is a 256-bit unsigned integer stored as four 64-bit words,
// least significant word first.
type Limbs [4]uint64

// LimbsFromBigInt converts n to little-endian limbs.
// n must be non-negative and fit in 256 bits.
func LimbsFromBigInt(n *big.Int) Limbs {
	var buf [32]byte
	n.FillBytes(buf[:])
	return LimbsFromBigEndian(buf)
}

// LimbsFromBigEndian converts a 32-byte big-endian integer to limbs.
func LimbsFromBigEndian(b [32]byte) Limbs {
	return Limbs{
		binary.BigEndian.Uint64(b[24:32]),
		binary.BigEndian.Uint64(b[16:24]),
		binary.BigEndian.Uint64(b[8:16]),
		binary.BigEndian.Uint64(b[0:8]),
	}
}

// LimbsFromLittleEndian converts a 32-byte little-endian integer to limbs.
func LimbsFromLittleEndian(b []byte) Limbs {
	return Limbs{
		binary.LittleEndian.Uint64(b[0:8]),
		binary.LittleEndian.Uint64(b[8:16]),
		binary.LittleEndian.Uint64(b[16:24]),
		binary.LittleEndian.Uint64(b[24:32]),
	}
}

// BigEndian returns the 32-byte big-endian form of l.
func (l Limbs) BigEndian() [32]byte {
	var buf [32]byte
	binary.BigEndian.PutUint64(buf[0:8], l[3])
	binary.BigEndian.PutUint64(buf[8:16], l[2])
	binary.BigEndian.PutUint64(buf[16:24], l[1])
	binary.BigEndian.PutUint64(buf[24:32], l[0])
	return buf
}

// BigInt returns l as a big integer.
func (l Limbs) BigInt() *big.Int {
	b := l.BigEndian()
	return new(big.Int).SetBytes(b[:])
}

// IsZero reports whether every limb is zero.
func (l Limbs) IsZero() bool {
	return l == Limbs{}
}

// AffinePoint is a public key in affine (x, y) form.
type AffinePoint struct {
	X Limbs
	Y Limbs
}

// Record is the externally visible encoding of one key pair.
// Its position in the batch is its only identifier.
type Record struct {
	SkLo string `json:"sk_lo,omitempty" yaml:"sk_lo,omitempty"`
	SkHi string `json:"sk_hi,omitempty" yaml:"sk_hi,omitempty"`
	Sk   string `json:"sk,omitempty" yaml:"sk,omitempty"`
	PkX  string `json:"pk_x" yaml:"pk_x"`
	PkY  string `json:"pk_y" yaml:"pk_y"`
}
