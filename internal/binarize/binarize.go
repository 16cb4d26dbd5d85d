// Package binarize converts a captured frame into a clean foreground/
// background image via grayscale conversion and inverted Otsu thresholding.
package binarize

import "github.com/cocosip/go-ticket-vision/internal/frame"

// Binarize converts src to an inverted-Otsu-thresholded Frame: pixels whose
// intensity falls at or below the Otsu threshold (ink, on a light ticket
// background) become foreground (255); everything else becomes background
// (0). This is the single convention every downstream stage — template
// correlation, contour finding, projection counts — assumes: foreground is
// positive signal.
//
// No parameter is tuned per image; Otsu's method picks the threshold from
// the frame's own histogram.
func Binarize(src *frame.Frame) *frame.Frame {
	hist := histogram(src)
	t := otsuThreshold(hist, src.Width*src.Height)

	out := frame.New(src.Width, src.Height)
	for i, v := range src.Pix {
		if int(v) <= t {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out
}

func histogram(src *frame.Frame) [256]int {
	var hist [256]int
	for _, v := range src.Pix {
		hist[v]++
	}
	return hist
}

// otsuThreshold implements Otsu's method: the threshold t in [0,255] that
// minimizes intra-class variance (equivalently maximizes inter-class
// variance) of the two classes the split produces.
func otsuThreshold(hist [256]int, total int) int {
	if total == 0 {
		return 128
	}

	var sumAll float64
	for i, c := range hist {
		sumAll += float64(i * c)
	}

	var sumB, wB float64
	var best, bestVar float64
	threshold := 0

	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t * hist[t])
		mB := sumB / wB
		mF := (sumAll - sumB) / wF

		between := wB * wF * (mB - mF) * (mB - mF)
		if between > bestVar {
			bestVar = between
			best = float64(t)
		}
	}
	threshold = int(best)
	return threshold
}
