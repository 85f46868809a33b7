// Package color builds the canonical xterm-256 ANSI palette and the
// perceptual lookup table that quantizes true color down to it.
package color

import "github.com/lasangainc/toast-thebrowser/pkg/core"

// Palette holds the 256 ANSI terminal colors, indexed by AnsiColor.
type Palette [256]core.Rgb

// At returns the color at the given palette index.
func (p *Palette) At(index core.AnsiColor) core.Rgb {
	return p[index]
}

// Standard returns the canonical xterm-256 palette: 16 system colors, a
// 6x6x6 color cube, and a 24-step gray ramp.
func Standard() Palette {
	palette := Palette{
		// 0-15: standard system colors, then bright counterparts.
		{R: 0, G: 0, B: 0},
		{R: 128, G: 0, B: 0},
		{R: 0, G: 128, B: 0},
		{R: 128, G: 128, B: 0},
		{R: 0, G: 0, B: 128},
		{R: 128, G: 0, B: 128},
		{R: 0, G: 128, B: 128},
		{R: 192, G: 192, B: 192},
		{R: 128, G: 128, B: 128},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 255, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 255, G: 0, B: 255},
		{R: 0, G: 255, B: 255},
		{R: 255, G: 255, B: 255},
	}

	// 16-231: 6x6x6 color cube, r major then g then b.
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette[idx] = core.Rgb{
					R: cubeLevel(r),
					G: cubeLevel(g),
					B: cubeLevel(b),
				}
				idx++
			}
		}
	}

	// 232-255: 24-step neutral gray ramp.
	for i := 0; i < 24; i++ {
		gray := uint8(8 + i*10) //nolint:gosec // i in [0,23], fits uint8
		palette[idx] = core.Rgb{R: gray, G: gray, B: gray}
		idx++
	}

	return palette
}

func cubeLevel(i int) uint8 {
	if i == 0 {
		return 0
	}
	return uint8(55 + i*40) //nolint:gosec // i in [1,5], fits uint8
}
