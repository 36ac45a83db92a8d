// Package board finds the region occupied by a game board within a larger,
// roughly uniform background.
package board

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrEmptyImage is returned for images with no pixels.
	ErrEmptyImage = errors.New("empty image")

	// ErrInvalidBox signals a detected box that could not be made
	// consistent. It denotes a bug in the detector.
	ErrInvalidBox = errors.New("invalid bounding box")
)

// A Detector locates the board in an image.
type Detector struct {
	cfg Config
}

// NewDetector returns a detector using given configuration.
func NewDetector(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Detector{cfg: cfg}, nil
}

// Config returns the configuration of the detector.
func (d *Detector) Config() Config {
	return d.cfg
}

// Detect is a shorthand for NewDetector(cfg) followed by Detect(img).
func Detect(img image.Image, cfg Config) (Box, error) {
	d, err := NewDetector(cfg)
	if err != nil {
		return Box{}, err
	}
	return d.Detect(img)
}

// Detect returns the bounding box of the board within img. When no line
// stands out in a direction, the box extends to the image border.
func (d *Detector) Detect(img image.Image) (Box, error) {
	if img == nil || img.Bounds().Empty() {
		return Box{}, ErrEmptyImage
	}

	var p *profile
	switch d.cfg.Metric {
	case EdgeMagnitude:
		p = edgeProfile(NewGrayRaster(img), d.cfg)
	case MeanDiff:
		p = meanDiffProfile(NewGrayRaster(img), d.cfg)
	default:
		p = channelDiffProfile(NewRGBRaster(img), d.cfg)
	}

	w, h := len(p.cols), len(p.rows)
	return d.scan(p, w, h)
}

func (d *Detector) scan(p *profile, w, h int) (Box, error) {
	box := FullBox(w, h)
	pad := d.cfg.Padding

	my := int(d.cfg.MarginSkip * float64(h))
	mx := int(d.cfg.MarginSkip * float64(w))

	for y := my; y < h-my; y++ {
		if p.rowCounts(y) {
			box.Top = max(0, y-pad)
			break
		}
	}
	for y := h - 1 - my; y >= my; y-- {
		if p.rowCounts(y) {
			box.Bottom = min(h-1, y+pad)
			break
		}
	}
	for x := mx; x < w-mx; x++ {
		if p.colCounts(x) {
			box.Left = max(0, x-pad)
			break
		}
	}
	for x := w - 1 - mx; x >= mx; x-- {
		if p.colCounts(x) {
			box.Right = min(w-1, x+pad)
			break
		}
	}

	return clampBox(box, w, h)
}

// clampBox forces the box into the image and restores left <= right and
// top <= bottom by collapsing an inverted axis onto its midpoint.
func clampBox(b Box, w, h int) (Box, error) {
	b.Left = clamp(b.Left, 0, w-1)
	b.Right = clamp(b.Right, 0, w-1)
	b.Top = clamp(b.Top, 0, h-1)
	b.Bottom = clamp(b.Bottom, 0, h-1)
	if b.Left > b.Right {
		mid := (b.Left + b.Right) / 2
		b.Left, b.Right = mid, mid
	}
	if b.Top > b.Bottom {
		mid := (b.Top + b.Bottom) / 2
		b.Top, b.Bottom = mid, mid
	}
	if !b.Within(w, h) {
		return Box{}, fmt.Errorf("%w: %v in %dx%d image", ErrInvalidBox, b, w, h)
	}
	return b, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// DifferenceMap renders the per-pixel distance to the reference tone used
// by cfg, saturated at 255. For the edge metric it is the edge map itself.
func DifferenceMap(img image.Image, cfg Config) (*image.Gray, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var r *Raster
	switch cfg.Metric {
	case EdgeMagnitude:
		return EdgeMap(img), nil
	case MeanDiff:
		r = NewGrayRaster(img)
	default:
		r = NewRGBRaster(img)
	}

	ref := r.reference(cfg.Reference)
	out := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			out.Pix[y*out.Stride+x] = uint8(min(255, r.difference(x, y, ref)))
		}
	}
	return out, nil
}
