// Package encoding converts scalars and field elements to the fixed-width
// hexadecimal strings consumed by downstream circuits, and back.
//
// Scalars are split into two 128-bit halves by default because the consuming
// circuits work in 128-bit words. Field coordinates are always written as one
// 256-bit value.
package encoding

import (
	"encoding/hex"
	"fmt"
	"regexp"

	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

// Layout selects how a secret scalar is written into a record.
type Layout string

const (
	// LayoutSplit128 writes sk_lo and sk_hi, 32 hex digits each.
	LayoutSplit128 Layout = "split128"
	// LayoutWhole256 writes a single sk field of 64 hex digits.
	LayoutWhole256 Layout = "whole256"
)

var (
	hex128 = regexp.MustCompile(`^0x[0-9a-f]{32}$`)
	hex256 = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
)

// ParseLayout validates a layout name. The empty string selects LayoutSplit128.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case "", LayoutSplit128:
		return LayoutSplit128, nil
	case LayoutWhole256:
		return LayoutWhole256, nil
	}
	return "", fmt.Errorf("unknown scalar layout %q (must be %s or %s)", s, LayoutSplit128, LayoutWhole256)
}

// Uint128 is an unsigned 128-bit integer, Hi<<64 | Lo.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Hex formats u as 0x followed by 32 lowercase hex digits.
func (u Uint128) Hex() string {
	return fmt.Sprintf("0x%016x%016x", u.Hi, u.Lo)
}

// SplitScalar splits little-endian limbs [l0, l1, l2, l3] into
// lo = l0 | l1<<64 and hi = l2 | l3<<64.
func SplitScalar(l keypair.Limbs) (lo, hi Uint128) {
	return Uint128{Lo: l[0], Hi: l[1]}, Uint128{Lo: l[2], Hi: l[3]}
}

// JoinScalar is the inverse of SplitScalar: lo | hi<<128.
func JoinScalar(lo, hi Uint128) keypair.Limbs {
	return keypair.Limbs{lo.Lo, lo.Hi, hi.Lo, hi.Hi}
}

// FieldHex formats little-endian limbs most significant limb first:
// 0x{l3:016x}{l2:016x}{l1:016x}{l0:016x}.
func FieldHex(l keypair.Limbs) string {
	return fmt.Sprintf("0x%016x%016x%016x%016x", l[3], l[2], l[1], l[0])
}

// ParseUint128 parses a string produced by Uint128.Hex.
func ParseUint128(s string) (Uint128, error) {
	if !hex128.MatchString(s) {
		return Uint128{}, fmt.Errorf("%w: %q is not 0x followed by 32 lowercase hex digits", keypair.ErrMalformedRecord, s)
	}
	var b [16]byte
	if _, err := hex.Decode(b[:], []byte(s[2:])); err != nil {
		return Uint128{}, fmt.Errorf("%w: %v", keypair.ErrMalformedRecord, err)
	}
	var be [32]byte
	copy(be[16:], b[:])
	l := keypair.LimbsFromBigEndian(be)
	return Uint128{Lo: l[0], Hi: l[1]}, nil
}

// ParseFieldHex parses a string produced by FieldHex.
func ParseFieldHex(s string) (keypair.Limbs, error) {
	if !hex256.MatchString(s) {
		return keypair.Limbs{}, fmt.Errorf("%w: %q is not 0x followed by 64 lowercase hex digits", keypair.ErrMalformedRecord, s)
	}
	var be [32]byte
	if _, err := hex.Decode(be[:], []byte(s[2:])); err != nil {
		return keypair.Limbs{}, fmt.Errorf("%w: %v", keypair.ErrMalformedRecord, err)
	}
	return keypair.LimbsFromBigEndian(be), nil
}

// Encoder turns a scalar and its public key into a Record.
// The zero value uses LayoutSplit128.
type Encoder struct {
	Layout Layout
}

// Encode is total: every limb quadruple yields a well-formed record.
func (e Encoder) Encode(sk keypair.Limbs, pk keypair.AffinePoint) keypair.Record {
	r := keypair.Record{
		PkX: FieldHex(pk.X),
		PkY: FieldHex(pk.Y),
	}
	if e.Layout == LayoutWhole256 {
		r.Sk = FieldHex(sk)
		return r
	}
	lo, hi := SplitScalar(sk)
	r.SkLo = lo.Hex()
	r.SkHi = hi.Hex()
	return r
}

// DecodeScalar recovers the scalar limbs from a record written with e's layout.
func (e Encoder) DecodeScalar(r keypair.Record) (keypair.Limbs, error) {
	if e.Layout == LayoutWhole256 {
		return ParseFieldHex(r.Sk)
	}
	lo, err := ParseUint128(r.SkLo)
	if err != nil {
		return keypair.Limbs{}, fmt.Errorf("sk_lo: %w", err)
	}
	hi, err := ParseUint128(r.SkHi)
	if err != nil {
		return keypair.Limbs{}, fmt.Errorf("sk_hi: %w", err)
	}
	return JoinScalar(lo, hi), nil
}

// DecodePoint recovers the public key coordinates from a record.
func (e Encoder) DecodePoint(r keypair.Record) (keypair.AffinePoint, error) {
	x, err := ParseFieldHex(r.PkX)
	if err != nil {
		return keypair.AffinePoint{}, fmt.Errorf("pk_x: %w", err)
	}
	y, err := ParseFieldHex(r.PkY)
	if err != nil {
		return keypair.AffinePoint{}, fmt.Errorf("pk_y: %w", err)
	}
	return keypair.AffinePoint{X: x, Y: y}, nil
}
