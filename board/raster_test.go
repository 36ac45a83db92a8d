package board

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterReference(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(7, 0, color.RGBA{R: 11, G: 20, B: 30, A: 255})
	img.Set(0, 7, color.RGBA{R: 12, G: 20, B: 30, A: 255})
	img.Set(7, 7, color.RGBA{R: 13, G: 21, B: 30, A: 255})
	for y := 3; y < 5; y++ {
		for x := 3; x < 5; x++ {
			img.Set(x, y, color.RGBA{R: 100, G: 101, B: 102, A: 255})
		}
	}

	r := NewRGBRaster(img)
	assert.Equal(t, 3, r.Channels)
	assert.Equal(t, []int{11, 20, 30}, r.reference(Corners))

	// min(8, 8)/4 = 2, centered on (4, 4)
	assert.Equal(t, image.Rect(3, 3, 5, 5), r.centerPatch())
	assert.Equal(t, []int{100, 101, 102}, r.reference(CenterPatch))
}

func TestRasterCenterPatchTinyImage(t *testing.T) {
	r := NewGrayRaster(image.NewGray(image.Rect(0, 0, 3, 1)))
	assert.Equal(t, image.Rect(1, 0, 2, 1), r.centerPatch())
}

func TestGrayRasterFromSubImage(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 4, 4))
	g.SetGray(2, 1, color.Gray{Y: 42})
	r := NewGrayRaster(g.SubImage(image.Rect(1, 1, 3, 3)))

	assert.Equal(t, 2, r.Width)
	assert.Equal(t, 2, r.Height)
	assert.Equal(t, []uint8{42}, r.At(1, 0))
}

func TestEdgeMap(t *testing.T) {
	flat := image.NewGray(image.Rect(0, 0, 5, 5))
	for i := range flat.Pix {
		flat.Pix[i] = 80
	}
	edges := EdgeMap(flat)
	for _, v := range edges.Pix {
		assert.Equal(t, uint8(0), v)
	}

	flat.SetGray(2, 2, color.Gray{Y: 120})
	edges = EdgeMap(flat)
	assert.Equal(t, uint8(255), edges.GrayAt(2, 2).Y)
	assert.Equal(t, uint8(0), edges.GrayAt(1, 1).Y)
}
