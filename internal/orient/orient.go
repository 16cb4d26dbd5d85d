// Package orient implements the orientation normalizer (§4.2): it detects
// the ticket's QR code and perspective-warps the binary frame onto an
// upright canvas sized and anchored relative to the QR's own edge length,
// so the rest of the pipeline never has to reason about rotation, skew, or
// scale again.
package orient

import (
	"math"

	"github.com/cocosip/go-ticket-vision/internal/frame"
	"github.com/cocosip/go-ticket-vision/internal/qranchor"
)

// Empirical constants from §4.2: the ticket-to-QR size ratio and the QR's
// margin from the canvas's trailing edge. Flagged in the spec as
// possibly printer-specific; kept as named constants so a future
// recalibration is a one-line change, not a code hunt.
const (
	canvasToQRRatio = 10.8
	qrMarginRatio   = 0.2
)

// Result is the outcome of orientation normalization.
type Result struct {
	Canvas   *frame.Frame
	QRFound  bool
	QRTopY   int // top row of the QR's bounding box on Canvas, valid iff QRFound
	QRHeight int // QR edge length (rounded), valid iff QRFound
}

// Normalize runs QR detection on bin and, if found, warps it onto a square
// canvas of side round(10.8*s) with the QR's top-left corner placed at
// (W-s-round(0.2*s), H-s-round(0.2*s)). If no QR is found it returns the
// original frame unchanged with QRFound=false, per §4.2's "method=none"
// fallback — the caller is expected to hand off to the textual fallback
// path rather than treat this as an error.
func Normalize(bin *frame.Frame) Result {
	anchor, err := qranchor.Detect(bin)
	if err != nil {
		return Result{Canvas: bin, QRFound: false}
	}

	s := anchor.Side
	side := int(math.Round(canvasToQRRatio * s))
	margin := int(math.Round(qrMarginRatio * s))
	qrSide := int(math.Round(s))

	targetX := float64(side - qrSide - margin)
	targetY := float64(side - qrSide - margin)

	dst := [4]qranchor.Point{
		{X: targetX, Y: targetY},         // TL
		{X: targetX + s, Y: targetY},     // TR
		{X: targetX + s, Y: targetY + s}, // BR
		{X: targetX, Y: targetY + s},     // BL
	}
	src := [4]qranchor.Point{anchor.TL, anchor.TR, anchor.BR, anchor.BL}

	// Solve for H mapping canvas coordinates to source coordinates
	// directly (correspondences given canvas->source), so the warp loop
	// below can do a plain inverse lookup with no matrix inversion step.
	h, ok := solveHomography(dst, src)
	if !ok {
		return Result{Canvas: bin, QRFound: false}
	}

	canvas := warp(bin, h, side, side)

	return Result{
		Canvas:   canvas,
		QRFound:  true,
		QRTopY:   int(targetY),
		QRHeight: qrSide,
	}
}

// warp fills a destW x destH canvas by, for every destination pixel,
// mapping back into source coordinates through h and nearest-neighbor
// sampling. Nearest-neighbor (rather than bilinear) is deliberate: the
// source is already strictly {0,255} binary per the binarizer's invariant,
// and resampling with interpolation would reintroduce intermediate gray
// values that every downstream stage assumes cannot occur. Pixels that map
// outside the source are filled with background (0), matching the
// binarizer's foreground-is-255/background-is-0 convention.
func warp(src *frame.Frame, h homography, destW, destH int) *frame.Frame {
	out := frame.New(destW, destH)
	for y := 0; y < destH; y++ {
		for x := 0; x < destW; x++ {
			sx, sy := h.apply(float64(x), float64(y))
			out.Set(x, y, src.At(int(math.Round(sx)), int(math.Round(sy))))
		}
	}
	return out
}
