package curves

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/grumpkin"
	"github.com/consensys/gnark-crypto/ecc/grumpkin/fr"

	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

// Grumpkin is the cycle companion of BN254: its base field is the BN254
// scalar field, so points can be handled natively inside BN254 circuits.
type Grumpkin struct {
	genJac grumpkin.G1Jac
}

// NewGrumpkin returns a new instance of the Grumpkin curve wrapper
func NewGrumpkin() Curve {
	g, _ := grumpkin.Generators()
	return &Grumpkin{genJac: g}
}

func (c *Grumpkin) Name() string {
	return "grumpkin"
}

func (c *Grumpkin) Order() *big.Int {
	return fr.Modulus()
}

func (c *Grumpkin) NewScalar(r io.Reader) (Scalar, error) {
	k, err := rand.Int(r, fr.Modulus())
	if err != nil {
		return nil, entropyErr(err)
	}
	return c.NewScalarFromBigInt(k), nil
}

func (c *Grumpkin) NewScalarFromBigInt(n *big.Int) Scalar {
	var s GrumpkinScalar
	// SetBigInt reduces modulo r without touching n.
	s.e.SetBigInt(n)
	return &s
}

func (c *Grumpkin) ScalarBaseMult(k Scalar) keypair.AffinePoint {
	var jac grumpkin.G1Jac
	jac.ScalarMultiplication(&c.genJac, k.BigInt())

	var aff grumpkin.G1Affine
	aff.FromJacobian(&jac)

	return keypair.AffinePoint{
		X: keypair.Limbs(aff.X.Bits()),
		Y: keypair.Limbs(aff.Y.Bits()),
	}
}

// GrumpkinScalar implements Scalar
type GrumpkinScalar struct {
	e fr.Element
}

func (s *GrumpkinScalar) Limbs() keypair.Limbs {
	// Bits is the canonical value, not the Montgomery representation.
	return keypair.Limbs(s.e.Bits())
}

func (s *GrumpkinScalar) BigInt() *big.Int {
	return s.e.BigInt(new(big.Int))
}
