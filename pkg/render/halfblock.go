package render

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/lasangainc/toast-thebrowser/pkg/color"
	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

// HalfBlockConverter collapses a (cols, 2*rows) RGB image into a (cols,
// rows) terminal frame, picking a full block or an upper-half-block glyph
// per cell.
type HalfBlockConverter struct {
	quantizer *color.Quantizer
}

// NewHalfBlockConverter builds a converter around a freshly-constructed
// quantizer LUT.
func NewHalfBlockConverter() *HalfBlockConverter {
	return &HalfBlockConverter{quantizer: color.NewQuantizer(color.Standard())}
}

// Convert turns image into a termWidth x termHeight frame. image must be
// exactly termWidth wide and 2*termHeight (or 2*termHeight-1, for an odd
// source height) tall.
//
// Row conversion is parallelized across a fixed worker pool sized to
// runtime.NumCPU(): rows are independent, so each worker drains row
// indices from a jobs channel and writes directly into its own slice of
// the frame.
func (c *HalfBlockConverter) Convert(image *core.RgbImage, termWidth, termHeight int) (*core.TerminalFrame, error) {
	if image.Width != termWidth {
		return nil, fmt.Errorf("render: image width %d does not match terminal width %d", image.Width, termWidth)
	}
	if image.Height != termHeight*2 && image.Height != termHeight*2-1 {
		return nil, fmt.Errorf("render: image height %d does not match 2x terminal height %d", image.Height, termHeight)
	}

	frame := core.NewTerminalFrame(termWidth, termHeight)

	numWorkers := runtime.NumCPU()
	if numWorkers > termHeight {
		numWorkers = termHeight
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	rows := make(chan int, termHeight)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				c.convertRow(image, frame, y, termWidth)
			}
		}()
	}

	for y := 0; y < termHeight; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return frame, nil
}

// convertRow fills one row of frame; cell ordering within the row is
// sequential.
func (c *HalfBlockConverter) convertRow(image *core.RgbImage, frame *core.TerminalFrame, y, termWidth int) {
	topY := y * 2
	bottomY := topY + 1
	for x := 0; x < termWidth; x++ {
		top := image.At(x, topY)
		var bottom core.Rgb
		if bottomY < image.Height {
			bottom = image.At(x, bottomY)
		} else {
			bottom = top
		}

		topColor := c.quantizer.Quantize(top)
		bottomColor := c.quantizer.Quantize(bottom)

		if topColor == bottomColor {
			frame.Set(x, y, core.TerminalCell{
				Glyph:      core.GlyphFullBlock,
				Foreground: topColor,
				Background: topColor,
			})
		} else {
			frame.Set(x, y, core.TerminalCell{
				Glyph:      core.GlyphUpperHalf,
				Foreground: topColor,
				Background: bottomColor,
			})
		}
	}
}
