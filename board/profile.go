package board

import (
	"image"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"
)

// A profile scores every row and column of a raster. A line counts as
// foreground when its score is strictly above the matching limit.
type profile struct {
	rows     []float64
	cols     []float64
	rowLimit float64
	colLimit float64
}

func (p *profile) rowCounts(y int) bool { return p.rows[y] > p.rowLimit }
func (p *profile) colCounts(x int) bool { return p.cols[x] > p.colLimit }

// edgeKernel is a 3x3 Laplacian, clamped to [0, 255] by the convolution.
var edgeKernel = [9]float64{
	-1, -1, -1,
	-1, 8, -1,
	-1, -1, -1,
}

// EdgeMap returns the local gradient magnitude of the grayscale version of
// img, as a zero-based grayscale image.
func EdgeMap(img image.Image) *image.Gray {
	gray := NewGrayRaster(img)
	return edgeRaster(gray).gray()
}

func edgeRaster(gray *Raster) *Raster {
	edges := imaging.Convolve3x3(gray.gray(), edgeKernel, nil)
	out := &Raster{Width: gray.Width, Height: gray.Height, Channels: 1, Pix: make([]uint8, len(gray.Pix))}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.Pix[y*out.Width+x] = edges.Pix[y*edges.Stride+x*4]
		}
	}
	return out
}

// gray wraps a single-channel raster in an image.Gray without copying.
func (r *Raster) gray() *image.Gray {
	return &image.Gray{Pix: r.Pix, Stride: r.Width, Rect: image.Rect(0, 0, r.Width, r.Height)}
}

// difference returns the summed absolute channel difference between the
// samples of pixel (x, y) and ref.
func (r *Raster) difference(x, y int, ref []int) int {
	d := 0
	for c, v := range r.At(x, y) {
		delta := int(v) - ref[c]
		if delta < 0 {
			delta = -delta
		}
		d += delta
	}
	return d
}

// channelDiffProfile counts, per line, the samples classified as foreground.
func channelDiffProfile(r *Raster, cfg Config) *profile {
	ref := r.reference(cfg.Reference)
	match := cfg.Reference.matchesBoard()
	p := &profile{
		rows:     make([]float64, r.Height),
		cols:     make([]float64, r.Width),
		rowLimit: float64(r.Width) * cfg.RowFraction,
		colLimit: float64(r.Height) * cfg.ColFraction,
	}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			differs := float64(r.difference(x, y, ref)) > cfg.Threshold
			if differs != match {
				p.rows[y]++
				p.cols[x]++
			}
		}
	}
	return p
}

// edgeProfile sums edge intensities per line. Limits are relative to the
// strongest line.
func edgeProfile(r *Raster, cfg Config) *profile {
	edges := edgeRaster(r)
	p := &profile{
		rows: make([]float64, r.Height),
		cols: make([]float64, r.Width),
	}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			v := float64(edges.Pix[y*r.Width+x])
			p.rows[y] += v
			p.cols[x] += v
		}
	}
	p.rowLimit = floats.Max(p.rows) * cfg.RowFraction
	p.colLimit = floats.Max(p.cols) * cfg.ColFraction
	return p
}

// meanDiffProfile compares the floored mean intensity of each line to the
// reference. Scores are signed so that a positive score means foreground.
func meanDiffProfile(r *Raster, cfg Config) *profile {
	ref := r.reference(cfg.Reference)[0]
	rowSums := make([]int, r.Height)
	colSums := make([]int, r.Width)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			v := int(r.Pix[y*r.Width+x])
			rowSums[y] += v
			colSums[x] += v
		}
	}

	score := func(sum, n int) float64 {
		d := sum/n - ref
		if d < 0 {
			d = -d
		}
		if cfg.Reference.matchesBoard() {
			return cfg.Threshold - float64(d)
		}
		return float64(d) - cfg.Threshold
	}

	p := &profile{
		rows: make([]float64, r.Height),
		cols: make([]float64, r.Width),
	}
	for y, sum := range rowSums {
		p.rows[y] = score(sum, r.Width)
	}
	for x, sum := range colSums {
		p.cols[x] = score(sum, r.Height)
	}
	return p
}
