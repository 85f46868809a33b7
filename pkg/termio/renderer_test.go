package termio

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

func blankFrame(w, h int) *core.TerminalFrame {
	f := core.NewTerminalFrame(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Set(x, y, core.TerminalCell{Glyph: core.GlyphSpace})
		}
	}
	return f
}

func TestRenderFullPaintOnFirstFrame(t *testing.T) {
	frame := core.NewTerminalFrame(2, 1)
	frame.Set(0, 0, core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 9, Background: 9})
	frame.Set(1, 0, core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 10, Background: 10})

	var out bytes.Buffer
	r := NewRenderer(&out)
	if err := r.Render(frame); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := moveTo(0, 0) + sgrAndGlyph(core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 9, Background: 9}) +
		sgrAndGlyph(core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 10, Background: 10}) + resetAttrs

	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

// Start with a front buffer of all {' ', 0, 0} of size (3,1). Paint a new
// frame identical except cell (1,0), which becomes {'▀', 15, 0}. The byte
// stream must contain exactly one cursor move (to column 2 row 1), the two
// SGR sequences, the glyph, and the final reset, with nothing emitted for
// cells (0,0) and (2,0).
func TestRenderDiffEmitsOnlyChangedCell(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	if err := r.Render(blankFrame(3, 1)); err != nil {
		t.Fatalf("initial Render: %v", err)
	}
	out.Reset()

	next := blankFrame(3, 1)
	next.Set(1, 0, core.TerminalCell{Glyph: core.GlyphUpperHalf, Foreground: 15, Background: 0})

	if err := r.Render(next); err != nil {
		t.Fatalf("diff Render: %v", err)
	}

	want := moveTo(1, 0) + sgrAndGlyph(core.TerminalCell{Glyph: core.GlyphUpperHalf, Foreground: 15, Background: 0}) + resetAttrs
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRenderDiffSkipsCursorMoveForContiguousCells(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	if err := r.Render(blankFrame(3, 1)); err != nil {
		t.Fatalf("initial Render: %v", err)
	}
	out.Reset()

	next := blankFrame(3, 1)
	next.Set(0, 0, core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 1, Background: 1})
	next.Set(1, 0, core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 2, Background: 2})

	if err := r.Render(next); err != nil {
		t.Fatalf("diff Render: %v", err)
	}

	want := moveTo(0, 0) +
		sgrAndGlyph(core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 1, Background: 1}) +
		sgrAndGlyph(core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 2, Background: 2}) +
		resetAttrs
	if out.String() != want {
		t.Errorf("output = %q, want %q (single leading move, no move between contiguous cells)", out.String(), want)
	}
}

func TestRenderNoChangeStillResetsAttrs(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	frame := blankFrame(2, 2)

	if err := r.Render(frame); err != nil {
		t.Fatalf("initial Render: %v", err)
	}
	out.Reset()

	if err := r.Render(blankFrame(2, 2)); err != nil {
		t.Fatalf("second Render: %v", err)
	}

	if out.String() != resetAttrs {
		t.Errorf("output = %q, want bare reset %q", out.String(), resetAttrs)
	}
}

func TestRenderDimensionChangeForcesFullPaint(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	if err := r.Render(blankFrame(2, 2)); err != nil {
		t.Fatalf("initial Render: %v", err)
	}
	out.Reset()

	wider := blankFrame(3, 2)
	if err := r.Render(wider); err != nil {
		t.Fatalf("resized Render: %v", err)
	}

	if !bytes.HasPrefix(out.Bytes(), []byte(moveTo(0, 0))) {
		t.Errorf("resized render should start with a full repaint, got %q", out.String())
	}
	if got, want := bytes.Count(out.Bytes(), []byte("\x1b[38;5;")), 6; got != want {
		t.Errorf("full repaint SGR count = %d, want %d (one per cell)", got, want)
	}
}

func TestClearEmitsScreenClearAndHome(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)

	if err := r.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	want := "\x1b[2J" + moveTo(0, 0)
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

// TestRenderFullFramePayload pins the exact byte-for-byte escape sequence
// produced for a small multi-row frame against a golden file.
func TestRenderFullFramePayload(t *testing.T) {
	frame := core.NewTerminalFrame(2, 2)
	frame.Set(0, 0, core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 1, Background: 1})
	frame.Set(1, 0, core.TerminalCell{Glyph: core.GlyphUpperHalf, Foreground: 2, Background: 3})
	frame.Set(0, 1, core.TerminalCell{Glyph: core.GlyphSpace, Foreground: 0, Background: 0})
	frame.Set(1, 1, core.TerminalCell{Glyph: core.GlyphFullBlock, Foreground: 4, Background: 4})

	var out bytes.Buffer
	r := NewRenderer(&out)
	if err := r.Render(frame); err != nil {
		t.Fatalf("Render: %v", err)
	}

	g := goldie.New(t)
	g.Assert(t, "TestRenderFullFramePayload", out.Bytes())
}
