// Package progress reports startup progress (launching the browser,
// loading the page) as a terminal spinner, one per phase, driven by a
// channel of phase announcements so the reporting goroutine stays
// decoupled from whatever is doing the work.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Update announces entry into a startup phase. Unlike a batch-export
// progress update, a startup phase has no item count to report against —
// it either hasn't started, is in flight, or is done — so there is no
// Current/Total pair here, only the phase name.
type Update struct {
	Phase string // "Launching browser", "Loading page"
}

// Reporter renders one indeterminate spinner per phase it sees, finishing
// the previous spinner the moment a new phase arrives.
type Reporter struct {
	updates      <-chan Update
	done         chan struct{}
	currentPhase string
}

// Start begins listening for phase updates and spinning a bar for each.
func (r *Reporter) Start() {
	go func() {
		var bar *progressbar.ProgressBar

		for update := range r.updates {
			if update.Phase == r.currentPhase && bar != nil {
				continue
			}
			if bar != nil {
				_ = bar.Finish()
				fmt.Println()
			}
			r.currentPhase = update.Phase
			bar = newSpinner(update.Phase)
		}

		if bar != nil {
			_ = bar.Finish()
			fmt.Println()
		}
		close(r.done)
	}()
}

// Wait blocks until the reporter finishes (channel is closed).
func (r *Reporter) Wait() {
	<-r.done
}

// newSpinner creates an indeterminate spinner labeled with the phase name:
// startup phases have no known item count, so a running total would be
// fabricated.
func newSpinner(phase string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(phase+"..."),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
	)
}

// New creates a reporter with a channel for phase updates. Returns the
// reporter and the send-only channel.
func New() (reporter *Reporter, progressCh chan<- Update) {
	ch := make(chan Update, 8)
	return &Reporter{
		updates: ch,
		done:    make(chan struct{}),
	}, ch
}
