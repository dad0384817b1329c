//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks

package selfcheck

// Reporter receives progress notifications from a Runner. Calls are
// serialized by the Runner, so implementations need no locking of their own.
type Reporter interface {
	// Start is called once before the first case is checked.
	Start(total int)
	// Progress is called as cases complete.
	Progress(done, total int)
	// Done is called once with the final summary, even when the run fails.
	Done(summary Summary)
}

type nopReporter struct{}

func (nopReporter) Start(int)         {}
func (nopReporter) Progress(int, int) {}
func (nopReporter) Done(Summary)      {}
