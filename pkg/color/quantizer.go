package color

import (
	"math"

	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

// lutSize is 32*32*32: one entry per RGB555 bucket.
const lutSize = 32 * 32 * 32

// Quantizer maps true-color RGB to the nearest ANSI-256 palette index in
// O(1) time via a precomputed lookup table. Safe for concurrent use after
// construction: the table is read-only from that point on.
type Quantizer struct {
	lut [lutSize]core.AnsiColor
}

// NewQuantizer builds the LUT once, amortizing a perceptual (LAB-space)
// nearest-palette-color search across all 32768 RGB555 buckets so that
// every subsequent Quantize call is a single array lookup.
func NewQuantizer(palette Palette) *Quantizer {
	labPalette := make([]lab, len(palette))
	for i, rgb := range palette {
		labPalette[i] = rgbToLab(rgb)
	}

	q := &Quantizer{}
	for r5 := 0; r5 < 32; r5++ {
		for g5 := 0; g5 < 32; g5++ {
			for b5 := 0; b5 < 32; b5++ {
				rgb := core.Rgb{
					R: expand5to8(r5),
					G: expand5to8(g5),
					B: expand5to8(b5),
				}
				q.lut[lutIndex(r5, g5, b5)] = nearestIndex(rgbToLab(rgb), labPalette)
			}
		}
	}
	return q
}

// Quantize reduces rgb to 15 bits (5 bits per channel) and returns the
// palette index stored at that LUT bucket.
func (q *Quantizer) Quantize(rgb core.Rgb) core.AnsiColor {
	idx := lutIndex(int(rgb.R>>3), int(rgb.G>>3), int(rgb.B>>3))
	return q.lut[idx]
}

// QuantizeBatch quantizes a slice of colors elementwise, preserving order.
func (q *Quantizer) QuantizeBatch(colors []core.Rgb) []core.AnsiColor {
	out := make([]core.AnsiColor, len(colors))
	for i, rgb := range colors {
		out[i] = q.Quantize(rgb)
	}
	return out
}

func lutIndex(r5, g5, b5 int) int {
	return (r5 << 10) | (g5 << 5) | b5
}

// expand5to8 bit-replicates a 5-bit channel back to 8 bits: c8 = (c5<<3) |
// (c5>>2).
func expand5to8(c5 int) uint8 {
	return uint8((c5 << 3) | (c5 >> 2)) //nolint:gosec // c5 in [0,31], result fits uint8
}

// lab is a CIE L*a*b* color, used only for perceptual distance.
type lab struct {
	l, a, b float64
}

func nearestIndex(target lab, palette []lab) core.AnsiColor {
	best := 0
	bestDist := math.Inf(1)
	for i, candidate := range palette {
		d := labDistance(target, candidate)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return core.AnsiColor(best) //nolint:gosec // palette has 256 entries, fits uint8
}

func labDistance(a, b lab) float64 {
	dl := a.l - b.l
	da := a.a - b.a
	db := a.b - b.b
	return math.Sqrt(dl*dl + da*da + db*db)
}

// rgbToLab converts an 8-bit-per-channel color to CIE L*a*b* via linear
// RGB (sRGB gamma expansion) and the D65 XYZ matrix.
func rgbToLab(rgb core.Rgb) lab {
	r := gammaExpand(float64(rgb.R) / 255.0)
	g := gammaExpand(float64(rgb.G) / 255.0)
	b := gammaExpand(float64(rgb.B) / 255.0)

	x := r*0.4124564 + g*0.3575761 + b*0.1804375
	y := r*0.2126729 + g*0.7151522 + b*0.0721750
	z := r*0.0193339 + g*0.1191920 + b*0.9503041

	// Normalize by the D65 white point.
	x /= 0.95047
	y /= 1.00000
	z /= 1.08883

	fx, fy, fz := labF(x), labF(y), labF(z)

	return lab{
		l: 116.0*fy - 16.0,
		a: 500.0 * (fx - fy),
		b: 200.0 * (fy - fz),
	}
}

func gammaExpand(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// labDelta is 6/29, the CIE L*a*b* f-curve breakpoint.
const labDelta = 6.0 / 29.0

func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}
