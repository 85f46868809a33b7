package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

// Scale resamples img to exactly targetWidth x targetHeight using a
// high-quality resampling kernel (x/image/draw's CatmullRom, the closest
// quality tier to Lanczos3 available without a third dependency — see
// DESIGN.md). Returns a clone, unscaled, if already the target size.
func Scale(img *core.RgbImage, targetWidth, targetHeight int) (*core.RgbImage, error) {
	if img.Width == targetWidth && img.Height == targetHeight {
		cloned := make([]byte, len(img.Pix))
		copy(cloned, img.Pix)
		return &core.RgbImage{Pix: cloned, Width: img.Width, Height: img.Height}, nil
	}

	src := &image.RGBA{
		Pix:    toRGBAPix(img),
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	pix := make([]byte, targetWidth*targetHeight*3)
	i := 0
	for y := 0; y < targetHeight; y++ {
		for x := 0; x < targetWidth; x++ {
			off := dst.PixOffset(x, y)
			pix[i] = dst.Pix[off]
			pix[i+1] = dst.Pix[off+1]
			pix[i+2] = dst.Pix[off+2]
			i += 3
		}
	}

	scaled, err := core.NewRgbImage(pix, targetWidth, targetHeight)
	if err != nil {
		return nil, &core.ScaleError{Err: err}
	}
	return scaled, nil
}

func toRGBAPix(img *core.RgbImage) []byte {
	out := make([]byte, img.Width*img.Height*4)
	for i, p := 0, 0; p < len(img.Pix); i, p = i+4, p+3 {
		out[i] = img.Pix[p]
		out[i+1] = img.Pix[p+1]
		out[i+2] = img.Pix[p+2]
		out[i+3] = 255
	}
	return out
}
