// Package morph applies the small morphological closing operation (§4.4)
// that joins gaps in printed digit strokes without merging neighboring
// digits together.
package morph

import "github.com/cocosip/go-ticket-vision/internal/frame"

// Close runs a binary closing (dilate then erode) with a 3x3 structuring
// element for two iterations, matching §4.4 exactly. It is implemented
// directly over the Frame's {0,255} pixels rather than through x/image's
// convolution helpers, which operate on weighted kernels suited to
// grayscale blur, not binary set operations.
func Close(src *frame.Frame) *frame.Frame {
	out := src
	for i := 0; i < 2; i++ {
		out = dilate(out)
	}
	for i := 0; i < 2; i++ {
		out = erode(out)
	}
	return out
}

func dilate(src *frame.Frame) *frame.Frame {
	out := frame.New(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if neighborhoodAny(src, x, y) {
				out.Set(x, y, 255)
			}
		}
	}
	return out
}

func erode(src *frame.Frame) *frame.Frame {
	out := frame.New(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if neighborhoodAll(src, x, y) {
				out.Set(x, y, 255)
			}
		}
	}
	return out
}

func neighborhoodAny(f *frame.Frame, cx, cy int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if f.At(cx+dx, cy+dy) == 255 {
				return true
			}
		}
	}
	return false
}

func neighborhoodAll(f *frame.Frame, cx, cy int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if f.At(cx+dx, cy+dy) != 255 {
				return false
			}
		}
	}
	return true
}
