package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"fortio.org/safecast"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/selfcheck"
)

const programName = "bignum-dev"

// Application represents the bignum-dev application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Registry  *prometheus.Registry
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger overrides the logger derived from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithRegistry sets the registry the selfcheck metrics are recorded on.
func WithRegistry(r *prometheus.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	name := programName
	var cmdArgs []string
	if len(args) > 0 {
		name = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(name, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = newLogger(cfg, errWriter)
	}
	if app.Registry == nil {
		app.Registry = prometheus.NewRegistry()
	}
	return app, nil
}

func newLogger(cfg config.AppConfig, w io.Writer) logging.Logger {
	level := zerolog.InfoLevel
	switch {
	case cfg.Verbose:
		level = zerolog.DebugLevel
	case cfg.Quiet:
		level = zerolog.ErrorLevel
	}
	if cfg.JSONLogs {
		return logging.NewZerologAdapter(zerolog.New(w).Level(level).With().
			Timestamp().Str("component", programName).Logger())
	}
	return logging.NewConsoleLogger(w, programName, level)
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	var err error
	switch a.Config.Mode {
	case config.ModeSelfcheck:
		err = a.runSelfcheck(ctx, out)
	default:
		err = a.runDemo(out)
	}

	code := apperrors.ExitCode(err)
	if err != nil {
		a.Logger.Error("run failed", err,
			logging.String("mode", a.Config.Mode),
			logging.Int("exit_code", code))
	}
	return code
}

func (a *Application) runDemo(out io.Writer) error {
	a.Logger.Debug("demo", logging.String("format", a.Config.Format))
	return cli.DisplayDemo(out, a.Config.Format)
}

func (a *Application) runSelfcheck(ctx context.Context, out io.Writer) error {
	opts, err := selfcheckOptions(a.Config)
	if err != nil {
		return err
	}

	runnerOpts := []selfcheck.RunnerOption{
		selfcheck.WithMetrics(selfcheck.NewMetrics(a.Registry)),
		selfcheck.WithLogger(a.Logger),
	}
	if !a.Config.Quiet {
		runnerOpts = append(runnerOpts, selfcheck.WithReporter(cli.NewSpinnerReporter(a.ErrWriter)))
	}
	runner, err := selfcheck.NewRunner(opts, runnerOpts...)
	if err != nil {
		return err
	}

	summary, err := runner.Run(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.WrapError(
			apperrors.TimeoutError{Operation: config.ModeSelfcheck, Limit: a.Config.Timeout},
			"selfcheck stopped after %d of %d cases", summary.Cases, opts.Cases)
	}
	cli.DisplaySummary(out, summary, err)

	if a.Config.Metrics {
		if werr := cli.WriteMetrics(out, a.Registry); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

// selfcheckOptions narrows the validated configuration to runner options.
func selfcheckOptions(cfg config.AppConfig) (selfcheck.Options, error) {
	cases, err := safecast.Conv[int](cfg.Cases)
	if err != nil {
		return selfcheck.Options{}, apperrors.ValidationError{Field: "cases", Message: err.Error()}
	}
	seed, err := safecast.Conv[int64](cfg.Seed)
	if err != nil {
		return selfcheck.Options{}, apperrors.ValidationError{Field: "seed", Message: err.Error()}
	}
	return selfcheck.Options{
		Cases:        cases,
		Workers:      cfg.Workers,
		Seed:         seed,
		MaxDoublings: cfg.MaxDoublings,
	}, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
