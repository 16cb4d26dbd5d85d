// Package qranchor locates a ticket's QR code and reduces it to the
// geometric anchor (four ordered corners + edge length) the orientation
// normalizer needs. QR decoding proper — payload bytes, error correction —
// is not our concern here; only the finder-pattern geometry gozxing's
// detector already computed while locating the symbol.
package qranchor

import (
	"errors"
	"image"
	"math"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode/detector"

	"github.com/cocosip/go-ticket-vision/internal/frame"
)

// ErrNoQRAnchor is returned when no QR code could be located in the frame.
var ErrNoQRAnchor = errors.New("qranchor: no QR code detected")

// Point is a floating-point image coordinate.
type Point struct{ X, Y float64 }

// Anchor is the QR-derived geometric reference described in §3: four
// ordered corners (TL, TR, BR, BL) and the edge length s of the quad they
// span. The corners are the detector's three finder-pattern centers plus a
// fourth point completing their parallelogram, not the QR's outer boundary.
type Anchor struct {
	TL, TR, BR, BL Point
	Side           float64
}

// Detect runs a QR detector over the binary frame (ink == 255) inverted
// back to dark-on-light, so the QR's dark modules reach gozxing as dark
// pixels — the positive signal its detector looks for (§4.2 step 1) — and
// returns the ordered anchor. It returns ErrNoQRAnchor, not a hard error, when no QR
// code can be found — the caller is expected to fall back to the textual
// extraction path, not treat this as fatal.
func Detect(bin *frame.Frame) (Anchor, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(toImage(bin))
	if err != nil {
		return Anchor{}, ErrNoQRAnchor
	}

	matrix, err := bmp.GetBlackMatrix()
	if err != nil {
		return Anchor{}, ErrNoQRAnchor
	}

	det := detector.NewDetector(matrix)
	result, err := det.Detect(nil)
	if err != nil {
		return Anchor{}, ErrNoQRAnchor
	}

	pts := result.GetPoints()
	if len(pts) < 3 {
		return Anchor{}, ErrNoQRAnchor
	}

	// gozxing's QR detector reports finder-pattern centers in the order
	// bottomLeft, topLeft, topRight. The fourth (bottom-right) corner of
	// the symbol isn't a finder pattern at all, so it is completed as the
	// fourth vertex of the parallelogram the three finders imply.
	bl := Point{pts[0].GetX(), pts[0].GetY()}
	tl := Point{pts[1].GetX(), pts[1].GetY()}
	tr := Point{pts[2].GetX(), pts[2].GetY()}
	br := Point{X: tr.X + bl.X - tl.X, Y: tr.Y + bl.Y - tl.Y}

	return order(tl, tr, br, bl), nil
}

// order re-derives the canonical TL/TR/BR/BL labeling from four unordered
// corners per §4.2 step 2: sort by y ascending, split into a top pair and a
// bottom pair, and sort each pair by x ascending. This is applied even
// though the caller already has finder-pattern labels, because under
// rotation or a skewed capture the detector's own labels can disagree with
// simple image-plane order, and every downstream computation (edge length,
// homography) assumes the image-plane convention.
func order(corners ...Point) Anchor {
	pts := append([]Point(nil), corners...)
	// insertion sort by y; four elements, no need for sort.Slice overhead.
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j].Y < pts[j-1].Y; j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
	top, bottom := pts[:2], pts[2:]
	if top[1].X < top[0].X {
		top[0], top[1] = top[1], top[0]
	}
	if bottom[1].X < bottom[0].X {
		bottom[0], bottom[1] = bottom[1], bottom[0]
	}
	tl, tr := top[0], top[1]
	bl, br := bottom[0], bottom[1]

	// Edge length is the mean of the two horizontal and two vertical edges
	// of the ordered quad.
	side := (dist(tl, tr) + dist(bl, br) + dist(tl, bl) + dist(tr, br)) / 4

	return Anchor{TL: tl, TR: tr, BR: br, BL: bl, Side: side}
}

func dist(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// toImage renders f for gozxing with ink (255) turned back into dark pixels.
func toImage(f *frame.Frame) image.Image {
	g := f.ToGray()
	for i, v := range g.Pix {
		g.Pix[i] = 255 - v
	}
	return g
}
