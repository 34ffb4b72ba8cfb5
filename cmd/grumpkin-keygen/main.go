package main

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-grumpkin-keygen/internal/batch"
	"github.com/smallyu/go-grumpkin-keygen/internal/encoding"
	"github.com/smallyu/go-grumpkin-keygen/internal/keygen"
	"github.com/smallyu/go-grumpkin-keygen/internal/verify"
)

type app struct {
	out    io.Writer
	logOut io.Writer
	rand   io.Reader

	flags      Config
	cfg        Config
	res        *resolved
	configPath string
	logLevel   string
	logFormat  string
	expect     int

	log zerolog.Logger
}

func main() {
	a := &app{out: os.Stdout, logOut: os.Stderr, rand: rand.Reader}
	if err := a.rootCmd().Execute(); err != nil {
		a.log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	a.flags = Defaults()
	a.log = newLogger(a.logOut, zerolog.InfoLevel, "console")

	root := &cobra.Command{
		Use:   "grumpkin-keygen",
		Short: "Generate batches of Grumpkin key pairs for circuit inputs",
		Long: `Generate a batch of elliptic curve key pairs and write them as a JSON array.

Each secret key is written as two 128-bit limbs (sk_lo, sk_hi) and each public
key as affine coordinates (pk_x, pk_y), all as 0x-prefixed lowercase hex.`,
		Example: `  grumpkin-keygen
  grumpkin-keygen --count 10 --output keys.yaml
  grumpkin-keygen verify key_pairs.json --expect 1000`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runGenerate,
	}
	a.flags.bindFlags(root)
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "Log format (console, json)")

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch and write it to the output file (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}

	check := &cobra.Command{
		Use:   "verify [file]",
		Short: "Check that every public key in a batch matches its secret key",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runVerify,
	}
	check.Flags().IntVar(&a.expect, "expect", 0, "Required number of records (0 accepts any)")

	root.AddCommand(generate, check)
	return root
}

func newLogger(w io.Writer, level zerolog.Level, format string) zerolog.Logger {
	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("run_id", uuid.NewString()).Logger()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
	}
	if a.logFormat != "console" && a.logFormat != "json" {
		return fmt.Errorf("invalid log format %q (must be console or json)", a.logFormat)
	}
	a.log = newLogger(a.logOut, level, a.logFormat)

	a.cfg = Defaults()
	if a.configPath != "" {
		if err := a.cfg.LoadFile(a.configPath); err != nil {
			return err
		}
		a.log.Debug().Str("path", a.configPath).Msg("loaded config file")
	}
	a.cfg.merge(cmd, a.flags)

	a.res, err = a.cfg.resolve()
	return err
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	log := a.log.With().Str("curve", a.res.curve.Name()).Logger()

	g := keygen.New(a.res.curve, a.rand,
		keygen.WithWorkers(a.cfg.Workers),
		keygen.WithLayout(a.res.layout),
		keygen.WithLogger(log),
	)

	start := time.Now()
	b, err := g.Generate(cmd.Context(), a.cfg.Count)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	log.Info().Int("count", b.Len()).Dur("took", time.Since(start)).Msg("generated key pairs")

	if err := b.WriteFile(a.cfg.Output, a.res.format); err != nil {
		return err
	}
	log.Info().Str("path", a.cfg.Output).Str("format", string(a.res.format)).Msg("batch written")

	fmt.Fprintf(a.out, "Wrote %d key pairs to %s\n", b.Len(), a.cfg.Output)
	return nil
}

func (a *app) runVerify(cmd *cobra.Command, args []string) error {
	path := a.cfg.Output
	format := a.res.format
	if len(args) == 1 {
		path = args[0]
		if a.cfg.Format == "" {
			format = batch.FormatFromPath(path)
		}
	}

	records, err := batch.ReadFile(path, format)
	if err != nil {
		return err
	}

	enc := encoding.Encoder{Layout: a.res.layout}
	if err := verify.Records(a.res.curve, enc, records, a.expect); err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	a.log.Info().Str("path", path).Int("count", len(records)).Msg("batch verified")

	fmt.Fprintf(a.out, "Verified %d key pairs in %s\n", len(records), path)
	return nil
}
