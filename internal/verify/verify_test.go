package verify

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-grumpkin-keygen/internal/crypto/curves"
	"github.com/smallyu/go-grumpkin-keygen/internal/encoding"
	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

func recordFor(curve curves.Curve, enc encoding.Encoder, n int64) keypair.Record {
	sk := curve.NewScalarFromBigInt(big.NewInt(n))
	return enc.Encode(sk.Limbs(), curve.ScalarBaseMult(sk))
}

func TestRecordValid(t *testing.T) {
	for _, name := range curves.Names() {
		curve, err := curves.ByName(name)
		require.NoError(t, err)
		for _, enc := range []encoding.Encoder{{}, {Layout: encoding.LayoutWhole256}} {
			for _, n := range []int64{0, 1, 2, 1 << 62} {
				assert.NoError(t, Record(curve, enc, recordFor(curve, enc, n)), "%s %s %d", name, enc.Layout, n)
			}
		}
	}
}

func TestRecordMismatch(t *testing.T) {
	curve := curves.NewGrumpkin()
	var enc encoding.Encoder

	r := recordFor(curve, enc, 7)
	r.PkY = recordFor(curve, enc, 8).PkY
	err := Record(curve, enc, r)
	assert.ErrorIs(t, err, keypair.ErrMismatch)
	assert.Contains(t, err.Error(), "pk_y")

	// a key pair from another curve does not verify on grumpkin
	other := recordFor(curves.NewSecp256k1(), enc, 7)
	assert.ErrorIs(t, Record(curve, enc, other), keypair.ErrMismatch)
}

func TestRecordScalarOutOfRange(t *testing.T) {
	curve := curves.NewGrumpkin()
	var enc encoding.Encoder

	r := recordFor(curve, enc, 1)
	lo, hi := encoding.SplitScalar(keypair.LimbsFromBigInt(curve.Order()))
	r.SkLo, r.SkHi = lo.Hex(), hi.Hex()
	assert.ErrorIs(t, Record(curve, enc, r), keypair.ErrMalformedRecord)
}

func TestRecordsReportsEveryFailure(t *testing.T) {
	curve := curves.NewGrumpkin()
	var enc encoding.Encoder

	records := []keypair.Record{
		recordFor(curve, enc, 1),
		recordFor(curve, enc, 2),
		recordFor(curve, enc, 3),
	}
	require.NoError(t, Records(curve, enc, records, 3))

	records[0].SkLo = "0x1"
	records[2].PkX = records[1].PkX
	err := Records(curve, enc, records, 4)
	require.Error(t, err)

	assert.ErrorIs(t, err, keypair.ErrMalformedRecord)
	assert.ErrorIs(t, err, keypair.ErrMismatch)

	var re *keypair.RecordError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 0, re.Index)
	assert.Contains(t, err.Error(), "record 2")
	assert.NotContains(t, err.Error(), "record 1:")
	assert.Contains(t, err.Error(), "expected 4")
}
