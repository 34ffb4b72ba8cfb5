package keypair

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimbsBigIntRoundTrip(t *testing.T) {
	n, ok := new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208582", 10)
	require.True(t, ok)

	l := LimbsFromBigInt(n)
	assert.Equal(t, n, l.BigInt())

	one := LimbsFromBigInt(big.NewInt(1))
	assert.Equal(t, Limbs{1, 0, 0, 0}, one)
}

func TestLimbsByteOrder(t *testing.T) {
	var be [32]byte
	be[31] = 0x01
	be[0] = 0x80
	l := LimbsFromBigEndian(be)
	assert.Equal(t, uint64(1), l[0])
	assert.Equal(t, uint64(0x8000000000000000), l[3])
	assert.Equal(t, be, l.BigEndian())

	le := make([]byte, 32)
	le[0] = 0x01
	le[31] = 0x80
	assert.Equal(t, l, LimbsFromLittleEndian(le))
}

func TestLimbsIsZero(t *testing.T) {
	assert.True(t, Limbs{}.IsZero())
	assert.False(t, Limbs{0, 0, 0, 1}.IsZero())
}

func TestRecordError(t *testing.T) {
	err := NewRecordError(7, "pk_x mismatch", ErrMismatch)
	assert.Equal(t, "record 7: pk_x mismatch: public key does not match secret key", err.Error())
	assert.True(t, errors.Is(err, ErrMismatch))

	var re *RecordError
	require.True(t, errors.As(error(err), &re))
	assert.Equal(t, 7, re.Index)

	bare := NewRecordError(2, "missing field", nil)
	assert.Equal(t, "record 2: missing field", bare.Error())
}
