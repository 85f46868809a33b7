package app

import (
	"sync"

	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

// cursorState is the overlay cursor position, read by the paint task and
// written by the input task. Guarded by an RWMutex since reads vastly
// outnumber writes (one paint per frame vs. one write per keystroke).
type cursorState struct {
	mu         sync.RWMutex
	pos        core.CursorPosition
	cols, rows int
}

func newCursorState(cols, rows int) *cursorState {
	return &cursorState{
		pos:  core.CursorPosition{X: cols / 2, Y: rows / 2},
		cols: cols,
		rows: rows,
	}
}

func (s *cursorState) Get() core.CursorPosition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pos
}

// Move nudges the cursor by (dx, dy), clamped to the terminal bounds, and
// returns the resulting position.
func (s *cursorState) Move(dx, dy int) core.CursorPosition {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos = core.CursorPosition{X: s.pos.X + dx, Y: s.pos.Y + dy}.Clamp(s.cols, s.rows)
	return s.pos
}
