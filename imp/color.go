package imp

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrEmptyImage is returned when averaging an image with no pixels.
var ErrEmptyImage = errors.New("empty image")

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS renders the color as "rgb(r, g, b)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// AverageColor computes the mean RGB color of an image, rounding each channel
// down. Alpha is ignored.
func AverageColor(img image.Image) (RGB, error) {
	if img == nil || img.Bounds().Empty() {
		return RGB{}, ErrEmptyImage
	}

	src := imaging.Clone(img)
	var r, g, b uint64
	for y := 0; y < src.Rect.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+src.Rect.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			r += uint64(row[i])
			g += uint64(row[i+1])
			b += uint64(row[i+2])
		}
	}

	n := uint64(src.Rect.Dx() * src.Rect.Dy())
	return RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}, nil
}
