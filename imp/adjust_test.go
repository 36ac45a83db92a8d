package imp

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.Pix = []uint8{10, 30, 50}
	dst := image.NewGray(src.Bounds())

	require.NoError(t, Normalize(src, dst))
	assert.Equal(t, []uint8{0, 127, 255}, dst.Pix)
}

func TestNormalizeFlat(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []uint8{7, 7, 7, 7}

	require.NoError(t, Normalize(src, src))
	assert.Equal(t, []uint8{7, 7, 7, 7}, src.Pix)
}

func TestNormalizeBounds(t *testing.T) {
	err := Normalize(image.NewGray(image.Rect(0, 0, 2, 2)), image.NewGray(image.Rect(0, 0, 3, 3)))
	assert.Error(t, err)
}

func TestMask(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 1))
	src.Pix = []uint8{29, 30, 31}

	mask := Mask(src, 30)
	assert.Equal(t, []color.Gray{Black, Black, White},
		[]color.Gray{mask.GrayAt(0, 0), mask.GrayAt(1, 0), mask.GrayAt(2, 0)})
}

func TestToGray(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 1, 1))
	assert.Same(t, g, ToGray(g))

	rgba := image.NewRGBA(image.Rect(1, 1, 2, 2))
	rgba.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	gray := ToGray(rgba)
	assert.Equal(t, rgba.Bounds(), gray.Bounds())
	assert.Equal(t, uint8(255), gray.GrayAt(1, 1).Y)
}
