package curves

import (
	"io"
	"math/big"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

// l = 2^252 + 27742317777372353535851937790883648493
var ed25519Order, _ = new(big.Int).SetString("72370055773322622139731865630429942408571163593799076060019509382854542509893", 10)

type Ed25519Curve struct{}

// NewEd25519 returns a new instance of the Ed25519 curve wrapper.
// Public keys are reported as twisted Edwards affine coordinates.
func NewEd25519() Curve {
	return &Ed25519Curve{}
}

func (c *Ed25519Curve) Name() string {
	return "ed25519"
}

func (c *Ed25519Curve) Order() *big.Int {
	return new(big.Int).Set(ed25519Order)
}

func (c *Ed25519Curve) NewScalar(r io.Reader) (Scalar, error) {
	// 64 bytes reduced mod l keeps the bias negligible.
	var b [64]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, entropyErr(err)
	}

	s, err := edwards25519.NewScalar().SetUniformBytes(b[:])
	if err != nil {
		return nil, err
	}
	return &Ed25519Scalar{s: s}, nil
}

func (c *Ed25519Curve) NewScalarFromBigInt(n *big.Int) Scalar {
	// edwards25519 uses little-endian, big.Int.Bytes() is big-endian.
	reduced := new(big.Int).Mod(n, ed25519Order)
	var be [32]byte
	reduced.FillBytes(be[:])

	var le [32]byte
	for i := range be {
		le[31-i] = be[i]
	}

	s, err := edwards25519.NewScalar().SetCanonicalBytes(le[:])
	if err != nil {
		// unreachable: reduced is below l
		panic(err)
	}
	return &Ed25519Scalar{s: s}
}

func (c *Ed25519Curve) ScalarBaseMult(k Scalar) keypair.AffinePoint {
	s, ok := k.(*Ed25519Scalar)
	if !ok {
		s = c.NewScalarFromBigInt(k.BigInt()).(*Ed25519Scalar)
	}

	p := edwards25519.NewIdentityPoint().ScalarBaseMult(s.s)

	// (X:Y:Z:T) with x = X/Z, y = Y/Z
	X, Y, Z, _ := p.ExtendedCoordinates()
	zInv := new(field.Element).Invert(Z)
	x := new(field.Element).Multiply(X, zInv)
	y := new(field.Element).Multiply(Y, zInv)

	return keypair.AffinePoint{
		X: keypair.LimbsFromLittleEndian(x.Bytes()),
		Y: keypair.LimbsFromLittleEndian(y.Bytes()),
	}
}

// Ed25519Scalar implements Scalar
type Ed25519Scalar struct {
	s *edwards25519.Scalar
}

func (s *Ed25519Scalar) Limbs() keypair.Limbs {
	return keypair.LimbsFromLittleEndian(s.s.Bytes())
}

func (s *Ed25519Scalar) BigInt() *big.Int {
	return s.Limbs().BigInt()
}
