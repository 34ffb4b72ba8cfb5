package benchmark

import (
	"context"
	"crypto/rand"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/smallyu/go-grumpkin-keygen/internal/batch"
	"github.com/smallyu/go-grumpkin-keygen/internal/crypto/curves"
	"github.com/smallyu/go-grumpkin-keygen/internal/encoding"
	"github.com/smallyu/go-grumpkin-keygen/internal/keygen"
	"github.com/smallyu/go-grumpkin-keygen/internal/verify"
)

// BenchmarkScalarBaseMult benchmarks a single public key derivation per curve.
func BenchmarkScalarBaseMult(b *testing.B) {
	for _, name := range curves.Names() {
		curve, _ := curves.ByName(name)
		sk, err := curve.NewScalar(rand.Reader)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				curve.ScalarBaseMult(sk)
			}
		})
	}
}

// BenchmarkEncode benchmarks the hex encoding of one record.
func BenchmarkEncode(b *testing.B) {
	curve := curves.NewGrumpkin()
	sk, _ := curve.NewScalar(rand.Reader)
	pk := curve.ScalarBaseMult(sk)
	limbs := sk.Limbs()

	var enc encoding.Encoder
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		enc.Encode(limbs, pk)
	}
}

// BenchmarkGenerate benchmarks a standard batch at several worker counts.
func BenchmarkGenerate(b *testing.B) {
	curve := curves.NewGrumpkin()

	for _, workers := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("workers-%d", workers), func(b *testing.B) {
			g := keygen.New(curve, rand.Reader, keygen.WithWorkers(workers))
			for i := 0; i < b.N; i++ {
				if _, err := g.Generate(context.Background(), keygen.DefaultCount); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkWriteFile benchmarks serializing and writing a standard batch.
func BenchmarkWriteFile(b *testing.B) {
	g := keygen.New(curves.NewGrumpkin(), rand.Reader)
	out, err := g.Generate(context.Background(), keygen.DefaultCount)
	if err != nil {
		b.Fatal(err)
	}
	path := filepath.Join(b.TempDir(), "key_pairs.json")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := out.WriteFile(path, batch.FormatJSON); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkVerify benchmarks checking a standard batch.
func BenchmarkVerify(b *testing.B) {
	curve := curves.NewGrumpkin()
	g := keygen.New(curve, rand.Reader)
	out, err := g.Generate(context.Background(), keygen.DefaultCount)
	if err != nil {
		b.Fatal(err)
	}
	records := out.Records()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := verify.Records(curve, g.Encoder(), records, 0); err != nil {
			b.Fatal(err)
		}
	}
}
