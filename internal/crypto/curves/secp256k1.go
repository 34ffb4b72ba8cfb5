package curves

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

type Secp256k1 struct{}

// NewSecp256k1 returns a new instance of the Secp256k1 curve wrapper
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string {
	return "secp256k1"
}

func (c *Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func (c *Secp256k1) NewScalar(r io.Reader) (Scalar, error) {
	// Generate random integer in [0, N-1]
	k, err := rand.Int(r, secp256k1.S256().Params().N)
	if err != nil {
		return nil, entropyErr(err)
	}
	return c.NewScalarFromBigInt(k), nil
}

func (c *Secp256k1) NewScalarFromBigInt(n *big.Int) Scalar {
	reduced := new(big.Int).Mod(n, secp256k1.S256().Params().N)
	var buf [32]byte
	reduced.FillBytes(buf[:])

	var s Secp256k1Scalar
	s.s.SetBytes(&buf)
	return &s
}

func (c *Secp256k1) ScalarBaseMult(k Scalar) keypair.AffinePoint {
	s, ok := k.(*Secp256k1Scalar)
	if !ok {
		s = c.NewScalarFromBigInt(k.BigInt()).(*Secp256k1Scalar)
	}

	var R secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&s.s, &R)
	R.ToAffine()

	return keypair.AffinePoint{
		X: keypair.LimbsFromBigEndian(*R.X.Bytes()),
		Y: keypair.LimbsFromBigEndian(*R.Y.Bytes()),
	}
}

// Secp256k1Scalar implements Scalar
type Secp256k1Scalar struct {
	s secp256k1.ModNScalar
}

func (s *Secp256k1Scalar) Limbs() keypair.Limbs {
	return keypair.LimbsFromBigEndian(s.s.Bytes())
}

func (s *Secp256k1Scalar) BigInt() *big.Int {
	b := s.s.Bytes()
	return new(big.Int).SetBytes(b[:])
}
