// Package core holds the plain value types shared by every stage of the
// frame pipeline: browser screenshot bytes in, colored terminal cells out.
package core

import "fmt"

// Rgb is a true-color pixel. Immutable value.
type Rgb struct {
	R, G, B uint8
}

// AnsiColor names a palette index in the 256-entry ANSI palette.
type AnsiColor uint8

// Dimensions describes a width/height pair, used for both terminal size
// and browser viewport size.
type Dimensions struct {
	Width, Height int
}

// ImageFormat is the wire format of a captured screenshot.
type ImageFormat int

const (
	ImageFormatJPEG ImageFormat = iota
	ImageFormatPNG
)

// Screenshot is the raw, still-encoded image handed off by the browser
// collaborator.
type Screenshot struct {
	Data   []byte
	Format ImageFormat
}

// RgbImage is a decoded, row-major true-color image: exactly 3*Width*Height
// bytes, one RGB triplet per pixel.
type RgbImage struct {
	Pix           []byte
	Width, Height int
}

// NewRgbImage validates that pix has exactly the expected length for the
// given dimensions.
func NewRgbImage(pix []byte, width, height int) (*RgbImage, error) {
	want := width * height * 3
	if len(pix) != want {
		return nil, fmt.Errorf("core: rgb image byte length %d does not match %dx%d (want %d)", len(pix), width, height, want)
	}
	return &RgbImage{Pix: pix, Width: width, Height: height}, nil
}

// At returns the pixel at (x, y). Coordinates are not checked per axis:
// an offset past the end of Pix panics like any slice index, while an x
// outside [0, Width) with an in-range offset reads a pixel of another row.
func (img *RgbImage) At(x, y int) Rgb {
	off := (y*img.Width + x) * 3
	return Rgb{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2]}
}

// Terminal cell glyphs. Only these four runes are ever emitted by the
// pipeline; the cursor overlay reuses the same set.
const (
	GlyphSpace      = ' '
	GlyphFullBlock  = '█'
	GlyphUpperHalf  = '▀'
	GlyphLowerHalf  = '▄'
)

// TerminalCell is one glyph cell: a rune plus a foreground/background ANSI
// color pair.
type TerminalCell struct {
	Glyph      rune
	Foreground AnsiColor
	Background AnsiColor
}

// TerminalFrame is a row-major grid of cells of fixed width/height.
type TerminalFrame struct {
	Cells         []TerminalCell
	Width, Height int
}

// NewTerminalFrame returns a frame filled with the default cell: a space
// with foreground=background=0.
func NewTerminalFrame(width, height int) *TerminalFrame {
	cells := make([]TerminalCell, width*height)
	for i := range cells {
		cells[i] = TerminalCell{Glyph: GlyphSpace}
	}
	return &TerminalFrame{Cells: cells, Width: width, Height: height}
}

// Get returns the cell at (x, y), or false if out of bounds.
func (f *TerminalFrame) Get(x, y int) (TerminalCell, bool) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return TerminalCell{}, false
	}
	return f.Cells[y*f.Width+x], true
}

// Set writes the cell at (x, y). Out-of-bounds writes are a silent no-op.
func (f *TerminalFrame) Set(x, y int, cell TerminalCell) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Cells[y*f.Width+x] = cell
}

// SameSize reports whether f and other share dimensions.
func (f *TerminalFrame) SameSize(other *TerminalFrame) bool {
	return f.Width == other.Width && f.Height == other.Height
}

// CursorPosition is the overlay cursor's terminal-cell coordinate.
type CursorPosition struct {
	X, Y int
}

// Clamp confines p to [0, cols) x [0, rows).
func (p CursorPosition) Clamp(cols, rows int) CursorPosition {
	if p.X < 0 {
		p.X = 0
	} else if p.X >= cols {
		p.X = cols - 1
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y >= rows {
		p.Y = rows - 1
	}
	return p
}
