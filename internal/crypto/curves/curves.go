package curves

import (
	"fmt"
	"io"
	"math/big"
	"sort"

	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

// Scalar represents a value in a curve's scalar field.
type Scalar interface {
	// Limbs returns the canonical integer value as little-endian 64-bit limbs.
	Limbs() keypair.Limbs

	// BigInt returns the scalar as a big integer.
	BigInt() *big.Int
}

// Curve defines the group operations the key pair generator relies on.
type Curve interface {
	// Name returns the name of the curve.
	Name() string

	// Order returns the order of the base point (group order).
	Order() *big.Int

	// NewScalar draws a uniformly random scalar in [0, Order) from rand.
	NewScalar(rand io.Reader) (Scalar, error)

	// NewScalarFromBigInt reduces n modulo the group order.
	NewScalarFromBigInt(n *big.Int) Scalar

	// ScalarBaseMult computes k * G and returns it in affine form.
	ScalarBaseMult(k Scalar) keypair.AffinePoint
}

var registry = map[string]func() Curve{
	"grumpkin":  NewGrumpkin,
	"secp256k1": NewSecp256k1,
	"ed25519":   NewEd25519,
}

// ByName returns the curve registered under name.
func ByName(name string) (Curve, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", keypair.ErrUnknownCurve, name)
	}
	return ctor(), nil
}

// Names lists the registered curves in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// entropyErr marks failures of the randomness source.
func entropyErr(err error) error {
	return fmt.Errorf("%w: %v", keypair.ErrEntropyUnavailable, err)
}
