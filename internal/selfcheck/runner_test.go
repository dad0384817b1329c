package selfcheck_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/selfcheck"
	"github.com/agbru/bignum/internal/selfcheck/mocks"
)

const propertyCount = 7

func TestRunner_Passes(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	runner, err := selfcheck.NewRunner(
		selfcheck.Options{Cases: 200, Workers: 4, Seed: 7, MaxDoublings: 64},
		selfcheck.WithMetrics(selfcheck.NewMetrics(reg)),
	)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Cases != 200 || summary.Checks != 200*propertyCount {
		t.Errorf("summary = %+v", summary)
	}
	if summary.MaxLimbs < 1 || summary.MaxLimbs > 5 {
		t.Errorf("MaxLimbs = %d, want 1..5 for 64 doublings", summary.MaxLimbs)
	}
	if summary.Memory.Mallocs == 0 || summary.Memory.Allocated == 0 {
		t.Errorf("allocation activity not recorded: %+v", summary.Memory)
	}

	expected := `
# HELP bignum_selfcheck_cases_total Number of generated cases checked.
# TYPE bignum_selfcheck_cases_total counter
bignum_selfcheck_cases_total 200
# HELP bignum_selfcheck_property_checks_total Number of property evaluations, by property.
# TYPE bignum_selfcheck_property_checks_total counter
bignum_selfcheck_property_checks_total{property="add"} 200
bignum_selfcheck_property_checks_total{property="canonical"} 200
bignum_selfcheck_property_checks_total{property="commutative"} 200
bignum_selfcheck_property_checks_total{property="inverse"} 200
bignum_selfcheck_property_checks_total{property="negation"} 200
bignum_selfcheck_property_checks_total{property="roundtrip"} 200
bignum_selfcheck_property_checks_total{property="sub"} 200
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"bignum_selfcheck_cases_total", "bignum_selfcheck_property_checks_total"); err != nil {
		t.Error(err)
	}
	if n, err := testutil.GatherAndCount(reg, "bignum_selfcheck_failures_total"); err != nil || n != 0 {
		t.Errorf("failures recorded: %d series (err %v)", n, err)
	}
}

func TestRunner_ReportsProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)

	gomock.InOrder(
		reporter.EXPECT().Start(10),
		reporter.EXPECT().Progress(gomock.Any(), 10).Times(10),
		reporter.EXPECT().Done(gomock.Any()).Do(func(s selfcheck.Summary) {
			if s.Cases != 10 {
				t.Errorf("Done summary Cases = %d, want 10", s.Cases)
			}
		}),
	)

	runner, err := selfcheck.NewRunner(
		selfcheck.Options{Cases: 10, Workers: 2, Seed: 1, MaxDoublings: 8},
		selfcheck.WithReporter(reporter),
	)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunner_Canceled(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().Start(1000)
	reporter.EXPECT().Progress(gomock.Any(), gomock.Any()).AnyTimes()
	reporter.EXPECT().Done(gomock.Any())

	runner, err := selfcheck.NewRunner(
		selfcheck.Options{Cases: 1000, Workers: 2, Seed: 1},
		selfcheck.WithReporter(reporter),
	)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := runner.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if apperrors.ExitCode(err) != apperrors.ExitErrorCanceled {
		t.Errorf("ExitCode = %d", apperrors.ExitCode(err))
	}
	if summary.Cases != 0 {
		t.Errorf("Cases = %d, want 0 for a canceled run", summary.Cases)
	}
}

func TestRunner_Deterministic(t *testing.T) {
	t.Parallel()
	run := func(workers int) selfcheck.Summary {
		runner, err := selfcheck.NewRunner(selfcheck.Options{Cases: 50, Workers: workers, Seed: 99, MaxDoublings: 300})
		if err != nil {
			t.Fatalf("NewRunner: %v", err)
		}
		s, err := runner.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return s
	}

	a, b := run(1), run(8)
	if a.MaxLimbs != b.MaxLimbs || a.Cases != b.Cases {
		t.Errorf("results depend on worker count: %v vs %v", a, b)
	}
}

func TestNewRunner_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		opts  selfcheck.Options
		field string
	}{
		{"no cases", selfcheck.Options{Workers: 1}, "cases"},
		{"no workers", selfcheck.Options{Cases: 1}, "workers"},
		{"negative doublings", selfcheck.Options{Cases: 1, Workers: 1, MaxDoublings: -1}, "max-doublings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := selfcheck.NewRunner(tt.opts)
			var valErr apperrors.ValidationError
			if !errors.As(err, &valErr) || valErr.Field != tt.field {
				t.Errorf("NewRunner error = %v, want ValidationError on %q", err, tt.field)
			}
		})
	}
}
