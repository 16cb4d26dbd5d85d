package tmplmatch

import (
	"github.com/cocosip/go-ticket-vision/internal/contour"
	"github.com/cocosip/go-ticket-vision/internal/frame"
)

// DefaultDigitConfidenceFloor is the §4.5.2 default, used when a caller
// passes a zero confidenceFloor to DetectDigits (an unset internal/config
// override).
const DefaultDigitConfidenceFloor = 0.40

// scales is the multi-scale sweep of §4.5.2 step 3, tolerating ±15%
// ticket-to-template size mismatch that survives QR normalization.
var scales = []float64{0.85, 0.925, 1.0, 1.075, 1.15}

// DetectDigits finds candidate digit glyphs by external-contour bounding
// box, classifies each by the best multi-scale correlation against every
// digit template, and returns one DigitHit per surviving candidate, deduped
// within a 10px radius (§9 design note: duplicate contours for the same
// glyph keep only the higher-scoring classification). A zero
// confidenceFloor falls back to DefaultDigitConfidenceFloor.
func DetectDigits(region *frame.Frame, digits map[int]*frame.Frame, confidenceFloor float64) []DigitHit {
	if len(digits) == 0 {
		return nil
	}
	if confidenceFloor == 0 {
		confidenceFloor = DefaultDigitConfidenceFloor
	}

	var hits []DigitHit
	for _, box := range contour.Find(region) {
		if !isDigitSizedBox(box) {
			continue
		}

		candidate := region.Crop(box.X, box.Y, box.W, box.H)
		digit, score := classify(candidate, digits)
		if score < confidenceFloor {
			continue
		}

		hits = append(hits, DigitHit{
			X:          box.X,
			Y:          box.Y + box.H/2,
			Digit:      digit,
			Confidence: score,
		})
	}

	return dedupeHits(hits)
}

func isDigitSizedBox(b contour.Box) bool {
	return b.H >= 30 && b.W >= 15 && b.W <= 90 && b.Area >= 800 && b.Area <= 6000
}

// classify scores candidate against every digit template across the
// multi-scale sweep and returns the best-scoring digit and its score.
func classify(candidate *frame.Frame, digits map[int]*frame.Frame) (int, float64) {
	bestDigit := -1
	bestScore := -1.0

	for d := 0; d <= 9; d++ {
		tmpl, ok := digits[d]
		if !ok {
			continue
		}
		score := bestScoreAcrossScales(candidate, tmpl)
		if score > bestScore {
			bestScore = score
			bestDigit = d
		}
	}
	return bestDigit, bestScore
}

func bestScoreAcrossScales(candidate, tmpl *frame.Frame) float64 {
	best := -1.0
	for _, sigma := range scales {
		w := roundPositive(float64(tmpl.Width) * sigma)
		h := roundPositive(float64(tmpl.Height) * sigma)
		if w <= 0 || h <= 0 {
			continue
		}
		scaledTmpl := resize(tmpl, w, h)
		scaledCandidate := resize(candidate, w, h)
		score := ncc(scaledCandidate, scaledTmpl)
		if score > best {
			best = score
		}
	}
	return best
}

func roundPositive(v float64) int {
	return int(v + 0.5)
}

// dedupeHits keeps only the higher-scoring classification among hits whose
// centers lie within a 10px radius of each other, resolving the duplicate-
// contour case called out in §9.
func dedupeHits(hits []DigitHit) []DigitHit {
	const radius = 10
	kept := make([]DigitHit, 0, len(hits))

	for _, h := range hits {
		replaced := false
		for i, k := range kept {
			if absInt(h.X-k.X) <= radius && absInt(h.Y-k.Y) <= radius {
				if h.Confidence > k.Confidence {
					kept[i] = h
				}
				replaced = true
				break
			}
		}
		if !replaced {
			kept = append(kept, h)
		}
	}
	return kept
}
