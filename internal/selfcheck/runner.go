package selfcheck

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
)

// Options controls a selfcheck run.
type Options struct {
	// Cases is the number of generated cases.
	Cases int
	// Workers bounds the number of cases checked concurrently.
	Workers int
	// Seed makes operand generation reproducible.
	Seed int64
	// MaxDoublings bounds operand growth; see operand.
	MaxDoublings int
}

// Summary describes a finished run.
type Summary struct {
	Cases    int
	Checks   int
	MaxLimbs int
	Elapsed  time.Duration
	// Memory is the allocation activity of the whole run.
	Memory metrics.MemoryDelta
}

// Runner checks the properties of the core over generated cases.
type Runner struct {
	opts     Options
	reporter Reporter
	metrics  *Metrics
	memory   *metrics.MemoryCollector
	logger   logging.Logger

	mu      sync.Mutex
	summary Summary
}

// RunnerOption configures a Runner during construction.
type RunnerOption func(*Runner)

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) RunnerOption {
	return func(rn *Runner) { rn.reporter = r }
}

// WithMetrics sets the metrics collectors.
func WithMetrics(m *Metrics) RunnerOption {
	return func(rn *Runner) { rn.metrics = m }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) RunnerOption {
	return func(rn *Runner) { rn.logger = l }
}

// NewRunner validates opts and returns a Runner. Without options it reports
// nowhere, logs nowhere and records metrics on a private registry.
func NewRunner(opts Options, options ...RunnerOption) (*Runner, error) {
	if opts.Cases < 1 {
		return nil, apperrors.ValidationError{Field: "cases", Message: "must be positive"}
	}
	if opts.Workers < 1 {
		return nil, apperrors.ValidationError{Field: "workers", Message: "must be at least 1"}
	}
	if opts.MaxDoublings < 0 {
		return nil, apperrors.ValidationError{Field: "max-doublings", Message: "must not be negative"}
	}

	r := &Runner{opts: opts, memory: metrics.NewMemoryCollector()}
	for _, o := range options {
		o(r)
	}
	if r.reporter == nil {
		r.reporter = nopReporter{}
	}
	if r.metrics == nil {
		r.metrics = NewMetrics(prometheus.NewRegistry())
	}
	if r.logger == nil {
		r.logger = logging.NewNopLogger()
	}
	return r, nil
}

// Run checks every case and returns the summary. The first property
// violation cancels the remaining cases and is returned as an
// apperrors.CheckFailureError. Cancellation of ctx stops the run and returns
// the context error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	memBefore := r.memory.Snapshot()
	r.summary = Summary{}
	r.logger.Info("selfcheck started",
		logging.Int("cases", r.opts.Cases),
		logging.Int("workers", r.opts.Workers),
		logging.Int("max_doublings", r.opts.MaxDoublings))
	r.reporter.Start(r.opts.Cases)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)

	for i := 0; i < r.opts.Cases; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return r.checkCase(newCase(r.opts.Seed, i, r.opts.MaxDoublings))
		})
	}
	err := g.Wait()
	memAfter := r.memory.Snapshot()

	r.mu.Lock()
	r.summary.Elapsed = time.Since(start)
	r.summary.Memory = memAfter.Since(memBefore)
	summary := r.summary
	r.mu.Unlock()
	r.reporter.Done(summary)

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		r.logger.Error("selfcheck failed", err, logging.Int("checked", summary.Cases))
		if apperrors.IsContextError(err) {
			return summary, apperrors.WrapError(err, "selfcheck stopped after %d of %d cases", summary.Cases, r.opts.Cases)
		}
		return summary, err
	}

	r.logger.Info("selfcheck passed",
		logging.Int("cases", summary.Cases),
		logging.Int("checks", summary.Checks),
		logging.Int("max_limbs", summary.MaxLimbs),
		logging.Uint64("allocated_bytes", summary.Memory.Allocated),
		logging.Uint64("mallocs", summary.Memory.Mallocs),
		logging.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

func (r *Runner) checkCase(c testCase) error {
	r.metrics.limbs.Observe(float64(c.x.Len()))
	r.metrics.limbs.Observe(float64(c.y.Len()))

	for _, p := range properties {
		r.metrics.checks.WithLabelValues(p.name).Inc()
		want, got, ok := p.check(c)
		if !ok {
			r.metrics.failures.WithLabelValues(p.name).Inc()
			r.logger.Debug("property violated",
				logging.String("property", p.name),
				logging.Int("case", c.index))
			return apperrors.CheckFailureError{
				Property: p.name,
				Case:     c.index,
				Operands: []string{c.x.String(), c.y.String()},
				Want:     want,
				Got:      got,
			}
		}
	}
	r.metrics.cases.Inc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary.Cases++
	r.summary.Checks += len(properties)
	r.summary.MaxLimbs = max(r.summary.MaxLimbs, c.x.Len(), c.y.Len())
	if done, total := r.summary.Cases, r.opts.Cases; done == total || done%progressStep(total) == 0 {
		r.reporter.Progress(done, total)
	}
	return nil
}

// progressStep reports roughly every percent.
func progressStep(total int) int {
	return max(1, total/100)
}

// String renders the summary for humans.
func (s Summary) String() string {
	return fmt.Sprintf("%d cases, %d property checks, operands up to %d limbs, %s",
		s.Cases, s.Checks, s.MaxLimbs, s.Elapsed.Round(time.Millisecond))
}
