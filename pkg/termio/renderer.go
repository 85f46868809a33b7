package termio

import (
	"fmt"
	"io"
	"sync"

	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

// Renderer is a double-buffered terminal painter: it emits the shortest
// escape sequence that transforms the previously painted frame into a new
// one, repainting only the cells that actually changed.
type Renderer struct {
	mu    sync.Mutex
	front *core.TerminalFrame
	out   io.Writer
}

// NewRenderer builds a renderer that paints to out (typically os.Stdout
// once the terminal is in raw mode / the alternate screen).
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render paints newFrame, diffing against the front buffer when possible.
// Concurrent calls are serialized by a mutex so the API stays safe even
// for callers that invoke Render from more than one goroutine.
func (r *Renderer) Render(newFrame *core.TerminalFrame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.front == nil || !r.front.SameSize(newFrame) {
		err = r.renderFull(newFrame)
	} else {
		err = r.renderDiff(r.front, newFrame)
	}
	if err != nil {
		return &core.PaintError{Err: err}
	}

	if f, ok := r.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return &core.PaintError{Err: err}
		}
	}

	r.front = newFrame
	return nil
}

// renderFull repaints every cell, used when there is no front buffer or
// its dimensions differ from the new frame.
func (r *Renderer) renderFull(frame *core.TerminalFrame) error {
	if _, err := fmt.Fprint(r.out, moveTo(0, 0)); err != nil {
		return err
	}

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell, _ := frame.Get(x, y)
			if _, err := fmt.Fprint(r.out, sgrAndGlyph(cell)); err != nil {
				return err
			}
		}
		if y < frame.Height-1 {
			if _, err := fmt.Fprint(r.out, moveToNextLine); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprint(r.out, resetAttrs)
	return err
}

// renderDiff repaints only cells that changed from old to new, moving the
// cursor only when the run of unchanged cells breaks contiguity.
func (r *Renderer) renderDiff(old, next *core.TerminalFrame) error {
	expectedX, expectedY := -1, -1

	for y := 0; y < next.Height; y++ {
		for x := 0; x < next.Width; x++ {
			oldCell, _ := old.Get(x, y)
			newCell, _ := next.Get(x, y)
			if oldCell == newCell {
				continue
			}

			if x != expectedX || y != expectedY {
				if _, err := fmt.Fprint(r.out, moveTo(x, y)); err != nil {
					return err
				}
			}

			if _, err := fmt.Fprint(r.out, sgrAndGlyph(newCell)); err != nil {
				return err
			}

			expectedX, expectedY = x+1, y
		}
	}

	_, err := fmt.Fprint(r.out, resetAttrs)
	return err
}

// Clear resets the visible surface. The front buffer is left untouched —
// callers that want the next Render to be a full repaint should discard
// the Renderer's state explicitly.
func (r *Renderer) Clear() error {
	_, err := fmt.Fprint(r.out, "\x1b[2J"+moveTo(0, 0))
	return err
}
