// Package keygen runs the key pair pipeline: sample a scalar, derive the
// public key, encode both, and accumulate the result in a batch.
package keygen

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-grumpkin-keygen/internal/batch"
	"github.com/smallyu/go-grumpkin-keygen/internal/crypto/curves"
	"github.com/smallyu/go-grumpkin-keygen/internal/encoding"
	"github.com/smallyu/go-grumpkin-keygen/pkg/keypair"
)

// DefaultCount is the batch size of a standard run.
const DefaultCount = 1000

// Generator produces batches of encoded key pairs on one curve.
type Generator struct {
	curve   curves.Curve
	rand    io.Reader
	enc     encoding.Encoder
	workers int
	log     zerolog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithWorkers bounds the number of concurrent derivations.
// Values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		if n < 1 {
			n = 1
		}
		g.workers = n
	}
}

// WithLayout selects the scalar layout of the emitted records.
func WithLayout(l encoding.Layout) Option {
	return func(g *Generator) {
		g.enc.Layout = l
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// New returns a Generator drawing scalars from rand. The caller owns rand;
// production code passes crypto/rand.Reader, tests a seeded stream.
func New(curve curves.Curve, rand io.Reader, opts ...Option) *Generator {
	g := &Generator{
		curve:   curve,
		rand:    rand,
		enc:     encoding.Encoder{Layout: encoding.LayoutSplit128},
		workers: runtime.GOMAXPROCS(0),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Curve returns the curve keys are generated on.
func (g *Generator) Curve() curves.Curve {
	return g.curve
}

// Encoder returns the encoder used for records.
func (g *Generator) Encoder() encoding.Encoder {
	return g.enc
}

// Sample draws one scalar. Each call consumes fresh entropy.
func (g *Generator) Sample() (curves.Scalar, error) {
	return g.curve.NewScalar(g.rand)
}

// Derive computes sk * G in affine form. The zero scalar is not special-cased.
func (g *Generator) Derive(sk curves.Scalar) keypair.AffinePoint {
	return g.curve.ScalarBaseMult(sk)
}

// Pair samples, derives and encodes a single key pair.
func (g *Generator) Pair() (keypair.Record, error) {
	sk, err := g.Sample()
	if err != nil {
		return keypair.Record{}, err
	}
	return g.enc.Encode(sk.Limbs(), g.Derive(sk)), nil
}

// Generate produces a batch of exactly n records in generation order.
//
// Scalars are drawn sequentially from the single entropy source, so a seeded
// source yields the same batch for any worker count. Derivation and encoding
// then run on up to workers goroutines, each writing only its own index.
// Any failure aborts the whole run and no batch is returned.
func (g *Generator) Generate(ctx context.Context, n int) (*batch.Batch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", keypair.ErrInvalidCount, n)
	}

	g.log.Debug().Str("curve", g.curve.Name()).Int("count", n).Int("workers", g.workers).Msg("sampling scalars")

	scalars := make([]curves.Scalar, n)
	for i := range scalars {
		sk, err := g.Sample()
		if err != nil {
			return nil, keypair.NewRecordError(i, "sample scalar", err)
		}
		scalars[i] = sk
	}

	records := make([]keypair.Record, n)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i, sk := range scalars {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			records[i] = g.enc.Encode(sk.Limbs(), g.Derive(sk))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("derive public keys: %w", err)
	}
	// the group context is always done after Wait; check the caller's
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("derive public keys: %w", err)
	}

	out := batch.New(n)
	for _, r := range records {
		out.Append(r)
	}

	g.log.Debug().Int("count", out.Len()).Msg("batch generated")
	return out, nil
}
