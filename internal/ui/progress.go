package ui

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressUI renders row progress for large exports
type ProgressUI struct {
	bar       *progressbar.ProgressBar
	out       io.Writer
	threshold int // smallest total that gets a bar; 0 disables
}

// NewProgressUI creates a progress UI writing to out (normally stderr)
func NewProgressUI(out io.Writer, threshold int) *ProgressUI {
	return &ProgressUI{
		out:       out,
		threshold: threshold,
	}
}

// Start initializes the progress bar when total reaches the threshold
func (p *ProgressUI) Start(description string, total int) {
	p.bar = nil
	if p.threshold <= 0 || total < p.threshold {
		return
	}

	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

// Increment advances the bar by one row
func (p *ProgressUI) Increment() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Add(1)
}

// Complete marks the progress as complete
func (p *ProgressUI) Complete() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	p.bar = nil
}
