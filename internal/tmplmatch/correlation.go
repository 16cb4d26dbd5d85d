package tmplmatch

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/cocosip/go-ticket-vision/internal/frame"
)

// ncc computes normalized cross-correlation between two equally-sized
// patches, in [-1, 1]. Patches of mismatched size are resized to the
// template's dimensions first by the caller; ncc itself requires equal
// dimensions and returns 0 if that invariant is violated (a defensive
// floor, not a recoverable error — callers never pass mismatched patches).
func ncc(a, b *frame.Frame) float64 {
	if a.Width != b.Width || a.Height != b.Height || len(a.Pix) == 0 {
		return 0
	}

	n := float64(len(a.Pix))
	var sumA, sumB float64
	for i := range a.Pix {
		sumA += float64(a.Pix[i])
		sumB += float64(b.Pix[i])
	}
	meanA, meanB := sumA/n, sumB/n

	var num, denA, denB float64
	for i := range a.Pix {
		da := float64(a.Pix[i]) - meanA
		db := float64(b.Pix[i]) - meanB
		num += da * db
		denA += da * da
		denB += db * db
	}

	den := math.Sqrt(denA * denB)
	if den == 0 {
		return 0
	}
	return num / den
}

// resize rescales f to w x h using a Catmull-Rom kernel, matching what the
// multi-scale template sweep needs (§4.5.2 step 3): resampling a candidate
// region against five scaled copies of each digit template. A hand-rolled
// nearest-neighbor scaler would alias badly at the ±15% scale factors in
// play; x/image/draw's CatmullRom scaler is the pack's only general-purpose
// image resampler and is used here instead.
func resize(f *frame.Frame, w, h int) *frame.Frame {
	if w <= 0 || h <= 0 {
		return frame.New(0, 0)
	}
	src := f.ToGray()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out := frame.New(w, h)
	for y := 0; y < h; y++ {
		copy(out.Pix[y*w:(y+1)*w], dst.Pix[y*dst.Stride:y*dst.Stride+w])
	}
	return out
}
