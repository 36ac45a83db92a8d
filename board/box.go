package board

import (
	"fmt"
	"image"
)

// A Box delimits the board within an image. Coordinates are inclusive and
// relative to the top-left corner of the image.
type Box struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// FullBox returns the box covering a whole w×h image.
func FullBox(w, h int) Box {
	return Box{Left: 0, Top: 0, Right: w - 1, Bottom: h - 1}
}

// Width of the box in pixels
func (b Box) Width() int {
	return b.Right - b.Left + 1
}

// Height of the box in pixels
func (b Box) Height() int {
	return b.Bottom - b.Top + 1
}

// Within returns true if the box is well-formed and fits in a w×h image.
func (b Box) Within(w, h int) bool {
	return 0 <= b.Left && b.Left <= b.Right && b.Right < w &&
		0 <= b.Top && b.Top <= b.Bottom && b.Bottom < h
}

// Rect converts the box to a half-open rectangle expressed in the
// coordinate space of an image with given bounds, ready for cropping.
func (b Box) Rect(bounds image.Rectangle) image.Rectangle {
	return image.Rect(b.Left, b.Top, b.Right+1, b.Bottom+1).Add(bounds.Min)
}

func (b Box) String() string {
	return fmt.Sprintf("left=%d, top=%d, right=%d, bottom=%d", b.Left, b.Top, b.Right, b.Bottom)
}
