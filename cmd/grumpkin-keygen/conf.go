package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-grumpkin-keygen/internal/batch"
	"github.com/smallyu/go-grumpkin-keygen/internal/crypto/curves"
	"github.com/smallyu/go-grumpkin-keygen/internal/encoding"
	"github.com/smallyu/go-grumpkin-keygen/internal/keygen"
)

const (
	DEFAULT_OUTPUT = "key_pairs.json"
	DEFAULT_CURVE  = "grumpkin"
)

type Config struct {
	// Number of key pairs per batch.
	Count int `yaml:"count"`

	// Destination file. Created or truncated on every run.
	Output string `yaml:"output"`

	// json or yaml; empty infers from the output extension.
	Format string `yaml:"format"`

	// Curve to generate keys on.
	Curve string `yaml:"curve"`

	// Upper bound on concurrent derivations.
	Workers int `yaml:"workers"`

	// split128 writes sk_lo/sk_hi, whole256 writes sk.
	ScalarLayout string `yaml:"scalar_layout"`
}

// Defaults returns the configuration of a standard run.
func Defaults() Config {
	return Config{
		Count:        keygen.DefaultCount,
		Output:       DEFAULT_OUTPUT,
		Curve:        DEFAULT_CURVE,
		Workers:      runtime.GOMAXPROCS(0),
		ScalarLayout: string(encoding.LayoutSplit128),
	}
}

// LoadFile overlays the keys present in a YAML file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// bindFlags registers one flag per field, defaulting to c's values.
func (c *Config) bindFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.IntVarP(&c.Count, "count", "n", c.Count, "Number of key pairs to generate")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "Output file")
	fs.StringVar(&c.Format, "format", c.Format, "Output format (json, yaml); inferred from the output extension when empty")
	fs.StringVar(&c.Curve, "curve", c.Curve, fmt.Sprintf("Curve to use %v", curves.Names()))
	fs.IntVar(&c.Workers, "workers", c.Workers, "Concurrent public key derivations")
	fs.StringVar(&c.ScalarLayout, "scalar-layout", c.ScalarLayout, "Secret key layout (split128, whole256)")
}

// merge copies every explicitly set flag from flags into c.
func (c *Config) merge(cmd *cobra.Command, flags Config) {
	fs := cmd.Flags()
	if fs.Changed("count") {
		c.Count = flags.Count
	}
	if fs.Changed("output") {
		c.Output = flags.Output
	}
	if fs.Changed("format") {
		c.Format = flags.Format
	}
	if fs.Changed("curve") {
		c.Curve = flags.Curve
	}
	if fs.Changed("workers") {
		c.Workers = flags.Workers
	}
	if fs.Changed("scalar-layout") {
		c.ScalarLayout = flags.ScalarLayout
	}
}

// resolved holds the validated, typed form of a Config.
type resolved struct {
	curve  curves.Curve
	format batch.Format
	layout encoding.Layout
}

func (c *Config) resolve() (*resolved, error) {
	if c.Count <= 0 {
		return nil, fmt.Errorf("invalid count %d: must be positive", c.Count)
	}
	if c.Output == "" {
		return nil, fmt.Errorf("output path must not be empty")
	}
	curve, err := curves.ByName(c.Curve)
	if err != nil {
		return nil, err
	}
	format, err := batch.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = batch.FormatFromPath(c.Output)
	}
	layout, err := encoding.ParseLayout(c.ScalarLayout)
	if err != nil {
		return nil, err
	}
	return &resolved{curve: curve, format: format, layout: layout}, nil
}
