// Package render turns a browser screenshot into a terminal frame: decode,
// scale to the terminal's pixel grid, then quantize and collapse into
// half-block cells.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/lasangainc/toast-thebrowser/pkg/core"
)

// Decode turns an encoded screenshot into a decoded RGB image. Only JPEG
// and PNG are accepted; those are the only formats a browser screenshot
// collaborator ever produces.
func Decode(shot core.Screenshot) (*core.RgbImage, error) {
	var img image.Image
	var err error

	switch shot.Format {
	case core.ImageFormatJPEG:
		img, err = jpeg.Decode(bytes.NewReader(shot.Data))
	case core.ImageFormatPNG:
		img, err = png.Decode(bytes.NewReader(shot.Data))
	default:
		return nil, &core.DecodeError{Err: fmt.Errorf("unsupported image format %d", shot.Format)}
	}
	if err != nil {
		return nil, &core.DecodeError{Err: err}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := make([]byte, width*height*3)

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix[i] = uint8(r >> 8)
			pix[i+1] = uint8(g >> 8)
			pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}

	rgbImg, err := core.NewRgbImage(pix, width, height)
	if err != nil {
		return nil, &core.DecodeError{Err: err}
	}
	return rgbImg, nil
}
