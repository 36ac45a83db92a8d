package cmd

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/ArnaudCalmettes/boardcrop/board"
	"github.com/ArnaudCalmettes/boardcrop/imp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBoard(t *testing.T, filename string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 60, 40))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(10, 5, 50, 35), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	require.NoError(t, imp.Save(filename, img))
}

func TestPrintAverageColor(t *testing.T) {
	var b bytes.Buffer
	printAverageColor(&b, imp.RGB{R: 76, G: 81, B: 86})
	assert.Equal(t,
		"Average color (RGB): (76, 81, 86)\n"+
			"Average color (Hex): #4c5156\n"+
			"CSS rgb: rgb(76, 81, 86)\n",
		b.String())
}

func TestDetectorConfig(t *testing.T) {
	v := viper.New()
	cfg, err := detectorConfig(v)
	require.NoError(t, err)
	assert.Equal(t, board.DefaultConfig(), cfg)

	v.Set("crop.preset", "edges")
	v.Set("crop.padding", 3)
	v.Set("crop.metric", "mean-diff")
	cfg, err = detectorConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Padding)
	assert.Equal(t, board.MeanDiff, cfg.Metric)
	assert.Equal(t, board.DefaultEdgeMargin, cfg.MarginSkip)

	v.Set("crop.margin_skip", 0.7)
	_, err = detectorConfig(v)
	assert.ErrorIs(t, err, board.ErrInvalidConfig)

	v = viper.New()
	v.Set("crop.preset", "nope")
	_, err = detectorConfig(v)
	assert.ErrorIs(t, err, board.ErrUnknownPreset)
}

func newTestCropper(t *testing.T, debugDir string) *cropper {
	cfg := board.DefaultConfig()
	cfg.Padding = 2
	det, err := board.NewDetector(cfg)
	require.NoError(t, err)
	return &cropper{detector: det, debugDir: debugDir}
}

func TestCropFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "board.png")
	writeBoard(t, src)

	c := newTestCropper(t, filepath.Join(dir, "debug"))
	dst := imp.CroppedName(src)
	require.NoError(t, c.cropFile(src, dst))

	cropped, err := imp.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(44, 34), cropped.Bounds().Size())

	assert.FileExists(t, filepath.Join(dir, "debug", "board_diff.png"))
	assert.FileExists(t, filepath.Join(dir, "debug", "board_mask.png"))
}

func TestCropFiles(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a.png", "b.jpg", "c.png"} {
		filename := filepath.Join(dir, name)
		writeBoard(t, filename)
		files = append(files, filename)
	}

	c := newTestCropper(t, "")
	require.NoError(t, c.cropFiles(context.Background(), files, 2))
	for _, f := range files {
		assert.FileExists(t, imp.CroppedName(f))
	}

	files = append(files, filepath.Join(dir, "missing.png"))
	err := c.cropFiles(context.Background(), files, 0)
	assert.True(t, os.IsNotExist(err))
}
