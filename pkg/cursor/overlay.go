// Package cursor draws the overlay pointer that tracks keyboard navigation
// on top of a rendered terminal frame.
package cursor

import "github.com/lasangainc/toast-thebrowser/pkg/core"

// black is the overlay's fixed fg/bg: pure black, distinct from the
// 16-color system black so the pointer always reads against any
// background the frame underneath happens to have.
const black core.AnsiColor = 16

// glyphCell is one stamped cell of the arrow bitmap, relative to the
// cursor's anchor position.
type glyphCell struct {
	dx, dy int
	glyph  rune
}

// arrow is a classic pointer drawn with half-block glyphs, two pixel rows
// per terminal row:
//
//	█▄
//	███▄
//	█████▄
//	▀  ██
//	    ▀
var arrow = []glyphCell{
	{0, 0, core.GlyphFullBlock}, {1, 0, core.GlyphLowerHalf},
	{0, 1, core.GlyphFullBlock}, {1, 1, core.GlyphFullBlock}, {2, 1, core.GlyphFullBlock}, {3, 1, core.GlyphLowerHalf},
	{0, 2, core.GlyphFullBlock}, {1, 2, core.GlyphFullBlock}, {2, 2, core.GlyphFullBlock}, {3, 2, core.GlyphFullBlock}, {4, 2, core.GlyphFullBlock}, {5, 2, core.GlyphLowerHalf},
	{0, 3, core.GlyphUpperHalf}, {3, 3, core.GlyphFullBlock}, {4, 3, core.GlyphFullBlock},
	{4, 4, core.GlyphUpperHalf},
}

// Draw stamps the arrow pointer onto frame at pos, all-black foreground and
// background. Cells that fall outside the frame are silently clipped.
func Draw(frame *core.TerminalFrame, pos core.CursorPosition) {
	for _, c := range arrow {
		frame.Set(pos.X+c.dx, pos.Y+c.dy, core.TerminalCell{
			Glyph:      c.glyph,
			Foreground: black,
			Background: black,
		})
	}
}
