package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/agbru/bignum/internal/selfcheck"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so reporters can be tested without a
// terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() {
	rs.s.Start()
}

func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix holds the spinner lock since the animation goroutine reads
// the suffix concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerReporter is a selfcheck.Reporter that animates a spinner with a
// progress bar and an ETA.
type SpinnerReporter struct {
	out     io.Writer
	spinner Spinner
	started time.Time
	now     func() time.Time
}

var _ selfcheck.Reporter = (*SpinnerReporter)(nil)

// NewSpinnerReporter returns a reporter drawing on out.
func NewSpinnerReporter(out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{out: out, now: time.Now}
}

// Start implements selfcheck.Reporter.
func (r *SpinnerReporter) Start(total int) {
	r.started = r.now()
	r.spinner = newSpinner(spinner.WithWriter(r.out), spinner.WithHiddenCursor(true))
	r.spinner.UpdateSuffix(FormatProgress(0, total, 0))
	r.spinner.Start()
}

// Progress implements selfcheck.Reporter.
func (r *SpinnerReporter) Progress(done, total int) {
	if r.spinner == nil {
		return
	}
	r.spinner.UpdateSuffix(FormatProgress(done, total, r.now().Sub(r.started)))
}

// Done implements selfcheck.Reporter.
func (r *SpinnerReporter) Done(selfcheck.Summary) {
	if r.spinner == nil {
		return
	}
	r.spinner.Stop()
	r.spinner = nil
}

// FormatProgress renders the spinner suffix for done of total cases after
// elapsed time.
func FormatProgress(done, total int, elapsed time.Duration) string {
	var ratio float64
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	return fmt.Sprintf(" %s %6.2f%% (%d/%d cases) ETA %s",
		progressBar(ratio, ProgressBarWidth), ratio*100, done, total, formatETA(ratio, elapsed))
}

func formatETA(ratio float64, elapsed time.Duration) string {
	if ratio <= 0 {
		return "--"
	}
	if ratio >= 1 {
		return FormatExecutionDuration(0)
	}
	remaining := time.Duration(float64(elapsed) * (1 - ratio) / ratio)
	return FormatExecutionDuration(remaining.Round(time.Millisecond))
}

// progressBar generates a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

var (
	passLabel = color.New(color.FgGreen, color.Bold)
	failLabel = color.New(color.FgRed, color.Bold)
)

// DisplaySummary writes the outcome of a selfcheck run. err is the error
// returned by the run, if any.
func DisplaySummary(out io.Writer, summary selfcheck.Summary, err error) {
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", failLabel.Sprint("FAIL"), err)
		fmt.Fprintf(out, "     %d cases checked before stopping in %s\n",
			summary.Cases, FormatExecutionDuration(summary.Elapsed))
		return
	}
	fmt.Fprintf(out, "%s %d cases, %d property checks, operands up to %d limbs in %s\n",
		passLabel.Sprint("PASS"), summary.Cases, summary.Checks, summary.MaxLimbs,
		FormatExecutionDuration(summary.Elapsed))
}
