// Package config defines the configuration of the bignum developer binary:
// command-line flags, BIGNUM_* environment overrides and validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"slices"
	"time"

	"fortio.org/safecast"

	apperrors "github.com/agbru/bignum/internal/errors"
)

// EnvPrefix is prepended to every environment variable the tool reads.
const EnvPrefix = "BIGNUM_"

// Modes and output formats.
const (
	ModeDemo      = "demo"
	ModeSelfcheck = "selfcheck"

	FormatDebug = "debug"
	FormatDec   = "dec"
	FormatHex   = "hex"
)

// Defaults.
const (
	DefaultCases        = 10_000
	DefaultMaxDoublings = 256
	DefaultTimeout      = 5 * time.Minute

	// MaxDoublingsLimit bounds operand growth to 4096 bits.
	MaxDoublingsLimit = 4096
)

// AppConfig holds the parsed configuration of a run.
type AppConfig struct {
	// Mode selects what the binary does: ModeDemo or ModeSelfcheck.
	Mode string
	// Format selects how values are rendered: FormatDebug, FormatDec or FormatHex.
	Format string
	// Cases is the number of generated selfcheck cases.
	Cases uint64
	// Workers is the number of goroutines checking cases concurrently.
	Workers int
	// Seed makes selfcheck operand generation reproducible.
	Seed uint64
	// MaxDoublings bounds how many times an operand is doubled when generated.
	MaxDoublings int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Metrics prints the selfcheck counters in Prometheus text format.
	Metrics bool
	// JSONLogs switches the log output from console to JSON.
	JSONLogs bool
	Verbose  bool
	Quiet    bool
}

var (
	validModes   = []string{ModeDemo, ModeSelfcheck}
	validFormats = []string{FormatDebug, FormatDec, FormatHex}
)

// ParseConfig parses args into an AppConfig. Priority is command-line flag,
// then environment variable, then default. A -help request returns
// flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Exercises the bignum arithmetic core.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	cfg := AppConfig{}
	fs.StringVar(&cfg.Mode, "mode", ModeDemo, "run mode: demo or selfcheck")
	fs.StringVar(&cfg.Format, "format", FormatDebug, "value format: debug, dec or hex")
	fs.Uint64Var(&cfg.Cases, "cases", DefaultCases, "number of selfcheck cases")
	fs.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "concurrent selfcheck workers")
	fs.Uint64Var(&cfg.Seed, "seed", 1, "selfcheck operand seed")
	fs.IntVar(&cfg.MaxDoublings, "max-doublings", DefaultMaxDoublings, "maximum doublings applied to a generated operand")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum duration of the run")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "print selfcheck metrics in Prometheus text format")
	fs.BoolVar(&cfg.JSONLogs, "json-logs", false, "write logs as JSON")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose logging")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose logging (alias of -v)")
	fs.BoolVar(&cfg.Quiet, "q", false, "only print results")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "only print results (alias of -q)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the semantic validity of the configuration.
func (c AppConfig) Validate() error {
	if !slices.Contains(validModes, c.Mode) {
		return apperrors.NewConfigError("unknown mode %q (want one of %v)", c.Mode, validModes)
	}
	if !slices.Contains(validFormats, c.Format) {
		return apperrors.NewConfigError("unknown format %q (want one of %v)", c.Format, validFormats)
	}
	if c.Cases == 0 {
		return apperrors.ValidationError{Field: "cases", Message: "must be positive"}
	}
	if _, err := safecast.Conv[int](c.Cases); err != nil {
		return apperrors.ValidationError{Field: "cases", Message: err.Error()}
	}
	if c.Workers < 1 {
		return apperrors.ValidationError{Field: "workers", Message: "must be at least 1"}
	}
	if _, err := safecast.Conv[int64](c.Seed); err != nil {
		return apperrors.ValidationError{Field: "seed", Message: err.Error()}
	}
	if c.MaxDoublings < 0 || c.MaxDoublings > MaxDoublingsLimit {
		return apperrors.ValidationError{
			Field:   "max-doublings",
			Message: fmt.Sprintf("must be between 0 and %d", MaxDoublingsLimit),
		}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	return nil
}
