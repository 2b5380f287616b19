package assemble

// ProgressReporter receives per-file completion events during assembly.
// Safe for concurrent use is required of implementations; the CLI wires a
// progress bar, tests use NoProgress.
type ProgressReporter interface {
	Start(total int)
	Step(path string)
	Finish()
}

type noProgress struct{}

// NoProgress returns a reporter that discards all events.
func NoProgress() ProgressReporter { return noProgress{} }

func (noProgress) Start(int)   {}
func (noProgress) Step(string) {}
func (noProgress) Finish()     {}
