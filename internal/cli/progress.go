package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
)

// packProgress reports assembly progress with a progress bar. Implements
// assemble.ProgressReporter; progressbar.Add is safe under the assembler's
// worker pool.
type packProgress struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

func newPackProgress(quiet bool) *packProgress {
	return &packProgress{quiet: quiet}
}

func (p *packProgress) Start(total int) {
	if p.quiet {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Packing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (p *packProgress) Step(path string) {
	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p *packProgress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}
