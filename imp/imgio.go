package imp

import (
	"bytes"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// Registers the WebP decoder with image.Decode
	_ "golang.org/x/image/webp"
)

// JPEGQuality is the quality used when saving JPEG images.
const JPEGQuality = 95

// ReadFile reads an image from a file.
func ReadFile(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", filename)
	}
	return img, nil
}

// ReadBytes reads an image from raw bytes.
func ReadBytes(data []byte) (image.Image, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes an image from a io.Reader, applying the EXIF orientation tag
// if present. Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP.
func Read(r io.Reader) (image.Image, error) {
	return imaging.Decode(r, imaging.AutoOrientation(true))
}

// Save creates a file and writes an image to it. Image format is decided based
// upon its extension.
func Save(filename string, img image.Image) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return errors.Errorf("unknown extension %v", filepath.Ext(filename))
	}
	return errors.Wrapf(
		imaging.Save(img, filename, imaging.JPEGQuality(JPEGQuality)),
		"saving %s", filename,
	)
}

// CroppedName returns the default output file name for a cropped image:
// "board.jpg" becomes "board_cropped.jpg". There is no WebP encoder, so
// WebP inputs produce PNG outputs.
func CroppedName(filename string) string {
	ext := filepath.Ext(filename)
	name := strings.TrimSuffix(filename, ext)
	if strings.EqualFold(ext, ".webp") {
		ext = ".png"
	}
	return name + "_cropped" + ext
}
