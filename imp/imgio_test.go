package imp

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCroppedName(t *testing.T) {
	tests := map[string]string{
		"board.jpg":         "board_cropped.jpg",
		"dir/9x9.png":       "dir/9x9_cropped.png",
		"9x9GoBoard.webp":   "9x9GoBoard_cropped.png",
		"shot.WEBP":         "shot_cropped.png",
		"noext":             "noext_cropped",
		"archive.tar/board": "archive.tar/board_cropped",
	}
	for in, want := range tests {
		assert.Equal(t, want, CroppedName(in), in)
	}
}

func TestSaveAndRead(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	filename := filepath.Join(dir, "out.png")
	require.NoError(t, Save(filename, img))

	got, err := ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	r, g, b, _ := got.At(1, 1).RGBA()
	assert.Equal(t, []uint32{200, 100, 50}, []uint32{r >> 8, g >> 8, b >> 8})

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	_, err = ReadBytes(data)
	assert.NoError(t, err)
}

func TestSaveUnknownExtension(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.webp"), image.NewGray(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}

func TestReadFileFailures(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.png"))
	assert.True(t, os.IsNotExist(err))

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0644))
	_, err = ReadFile(garbage)
	assert.ErrorIs(t, err, image.ErrFormat)
}
