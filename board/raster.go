package board

import (
	"image"

	"github.com/ArnaudCalmettes/boardcrop/imp"
	"github.com/disintegration/imaging"
)

// A Raster is a dense, zero-based grid of 8-bit samples with 1 (grayscale)
// or 3 (RGB) channels per pixel.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// NewRGBRaster copies the RGB channels of an image. Alpha is dropped
// without premultiplication.
func NewRGBRaster(img image.Image) *Raster {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	r := &Raster{Width: w, Height: h, Channels: 3, Pix: make([]uint8, w*h*3)}
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			copy(r.Pix[(y*w+x)*3:(y*w+x)*3+3], row[x*4:x*4+3])
		}
	}
	return r
}

// NewGrayRaster converts an image to grayscale intensities.
func NewGrayRaster(img image.Image) *Raster {
	return fromGray(imp.ToGray(img))
}

func fromGray(g *image.Gray) *Raster {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	r := &Raster{Width: w, Height: h, Channels: 1, Pix: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		copy(r.Pix[y*w:(y+1)*w], g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	return r
}

// At returns the samples of pixel (x, y).
func (r *Raster) At(x, y int) []uint8 {
	i := (y*r.Width + x) * r.Channels
	return r.Pix[i : i+r.Channels]
}

// mean returns the per-channel average (floor division) of the pixels
// within rect, which must be non-empty and inside the raster.
func (r *Raster) mean(rect image.Rectangle) []int {
	sums := make([]int, r.Channels)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			for c, v := range r.At(x, y) {
				sums[c] += int(v)
			}
		}
	}
	n := rect.Dx() * rect.Dy()
	for c := range sums {
		sums[c] /= n
	}
	return sums
}

// reference samples the reference tone according to the strategy.
func (r *Raster) reference(strategy Reference) []int {
	switch strategy {
	case CenterPatch:
		return r.mean(r.centerPatch())
	default:
		sums := make([]int, r.Channels)
		corners := []image.Point{
			{X: 0, Y: 0},
			{X: r.Width - 1, Y: 0},
			{X: 0, Y: r.Height - 1},
			{X: r.Width - 1, Y: r.Height - 1},
		}
		for _, p := range corners {
			for c, v := range r.At(p.X, p.Y) {
				sums[c] += int(v)
			}
		}
		for c := range sums {
			sums[c] /= len(corners)
		}
		return sums
	}
}

// centerPatch is a centered square of side min(W, H)/4, at least one pixel.
func (r *Raster) centerPatch() image.Rectangle {
	side := r.Width
	if r.Height < side {
		side = r.Height
	}
	side /= 4
	if side < 1 {
		side = 1
	}
	x0 := r.Width/2 - side/2
	y0 := r.Height/2 - side/2
	return image.Rect(x0, y0, x0+side, y0+side).Intersect(image.Rect(0, 0, r.Width, r.Height))
}
