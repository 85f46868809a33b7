package termio

import (
	"fmt"

	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

const (
	resetAttrs     = "\x1b[0m"
	moveToNextLine = "\x1b[1E"
)

// moveTo returns the CSI sequence to move the cursor to 1-indexed
// (row+1, col+1).
func moveTo(col, row int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row+1, col+1)
}

// sgrAndGlyph returns the foreground/background SGR sequences followed by
// the cell's glyph, UTF-8 encoded. Both SGR codes are re-emitted for every
// written cell rather than tracked against the previous attribute state —
// the extra bytes are cheaper than the bookkeeping needed to avoid them.
func sgrAndGlyph(cell core.TerminalCell) string {
	return fmt.Sprintf("\x1b[38;5;%dm\x1b[48;5;%dm%c", cell.Foreground, cell.Background, cell.Glyph)
}
