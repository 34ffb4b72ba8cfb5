// Package verify checks that every record's public key is the generator
// multiplied by the record's own secret scalar.
package verify

import (
	"errors"
	"fmt"

	"github.com/smallyu/go-grumpkin-keygen/internal/crypto/curves"
	"github.com/smallyu/go-grumpkin-keygen/internal/encoding"
	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

// Record checks a single record. The scalar must be in [0, Order) and
// sk * G, encoded, must equal the stored coordinates.
func Record(curve curves.Curve, enc encoding.Encoder, r keypair.Record) error {
	sk, err := enc.DecodeScalar(r)
	if err != nil {
		return err
	}
	if _, err := enc.DecodePoint(r); err != nil {
		return err
	}

	n := sk.BigInt()
	if n.Cmp(curve.Order()) >= 0 {
		return fmt.Errorf("%w: scalar exceeds %s group order", keypair.ErrMalformedRecord, curve.Name())
	}

	want := enc.Encode(sk, curve.ScalarBaseMult(curve.NewScalarFromBigInt(n)))
	if want.PkX != r.PkX {
		return fmt.Errorf("%w: pk_x is %s, expected %s", keypair.ErrMismatch, r.PkX, want.PkX)
	}
	if want.PkY != r.PkY {
		return fmt.Errorf("%w: pk_y is %s, expected %s", keypair.ErrMismatch, r.PkY, want.PkY)
	}
	return nil
}

// Records checks every record and, when expected is positive, the count.
// All failures are reported, each record failure as a *keypair.RecordError.
func Records(curve curves.Curve, enc encoding.Encoder, records []keypair.Record, expected int) error {
	var errs []error
	if expected > 0 && len(records) != expected {
		errs = append(errs, fmt.Errorf("%w: batch has %d records, expected %d", keypair.ErrMalformedRecord, len(records), expected))
	}
	for i, r := range records {
		if err := Record(curve, enc, r); err != nil {
			errs = append(errs, keypair.NewRecordError(i, "verify", err))
		}
	}
	return errors.Join(errs...)
}
