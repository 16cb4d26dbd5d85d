// Package region isolates the plays strip of a normalized ticket: the band
// between the dashed header separator and the QR code, per §4.3.
package region

import (
	"errors"

	"github.com/cocosip/go-ticket-vision/internal/frame"
)

// ErrSeparatorNotFound is returned when no row in the scan band has a
// projection consistent with a dashed separator line.
var ErrSeparatorNotFound = errors.New("region: dashed separator not found")

// Rect is a plain axis-aligned rectangle within a frame.
type Rect struct{ X, Y, W, H int }

// Locate finds the plays region within a QR-normalized canvas, given the
// top row of the QR's bounding box (qrTopY, from orient.Result). Rows
// [0, qrTopY) form the header strip of height H'; the horizontal
// foreground-pixel projection is computed only over its sub-band
// [0.58*H', 0.72*H'), and the first row of that sub-band whose count falls
// in [0.3*max, 0.7*max] of the sub-band's own peak is taken as the
// separator — dashed separators project less ink per row than solid text lines,
// so they sit in the middle of the observed range rather than at its max.
func Locate(canvas *frame.Frame, qrTopY int) (Rect, error) {
	if qrTopY <= 0 || qrTopY > canvas.Height {
		qrTopY = canvas.Height
	}
	headerHeight := qrTopY

	scanStart := int(0.58 * float64(headerHeight))
	scanEnd := int(0.72 * float64(headerHeight))
	if scanEnd <= scanStart {
		return Rect{}, ErrSeparatorNotFound
	}

	projection := make([]int, scanEnd-scanStart)
	maxProj := 0
	for i, y := 0, scanStart; y < scanEnd; i, y = i+1, y+1 {
		projection[i] = rowForegroundCount(canvas, y)
		if projection[i] > maxProj {
			maxProj = projection[i]
		}
	}
	if maxProj == 0 {
		return Rect{}, ErrSeparatorNotFound
	}

	lo := 0.3 * float64(maxProj)
	hi := 0.7 * float64(maxProj)

	separatorY := -1
	for i, y := 0, scanStart; y < scanEnd; i, y = i+1, y+1 {
		p := float64(projection[i])
		if p >= lo && p <= hi {
			separatorY = y
			break
		}
	}
	if separatorY < 0 {
		return Rect{}, ErrSeparatorNotFound
	}

	top := separatorY + 10
	bottom := qrTopY - 10
	if bottom <= top {
		return Rect{}, ErrSeparatorNotFound
	}

	return Rect{X: 0, Y: top, W: canvas.Width, H: bottom - top}, nil
}

func rowForegroundCount(f *frame.Frame, y int) int {
	count := 0
	for x := 0; x < f.Width; x++ {
		if f.At(x, y) == 255 {
			count++
		}
	}
	return count
}

// Crop extracts the located region from the canvas as its own Frame.
func Crop(canvas *frame.Frame, r Rect) *frame.Frame {
	return canvas.Crop(r.X, r.Y, r.W, r.H)
}
