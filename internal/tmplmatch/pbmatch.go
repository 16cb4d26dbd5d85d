package tmplmatch

import "github.com/cocosip/go-ticket-vision/internal/frame"

// Built-in defaults for the parameters DetectPB exposes as overrides;
// these are the values §4.5.1 specifies and what a zero-valued override
// from internal/config falls back to.
const (
	DefaultPBConfidenceFloor = 0.75
	DefaultPBNMSRadius       = 30
)

// DetectPB finds "PB" marker occurrences in region by sliding the PB
// template over every position and thresholding normalized cross-
// correlation, per §4.5.1. Candidates are then reduced by non-maximum
// suppression: sorted by correlation descending, a candidate survives only
// if no already-kept candidate lies within nmsRadius pixels in both x and
// y. Surviving markers are returned sorted by y ascending. A zero
// confidenceFloor or nmsRadius falls back to the §4.5.1 defaults above,
// letting a caller pass through an unset internal/config override.
func DetectPB(region *frame.Frame, pbTemplate *frame.Frame, confidenceFloor float64, nmsRadius int) []PBMarker {
	if pbTemplate == nil || pbTemplate.Width == 0 || pbTemplate.Height == 0 {
		return nil
	}
	if confidenceFloor == 0 {
		confidenceFloor = DefaultPBConfidenceFloor
	}
	if nmsRadius == 0 {
		nmsRadius = DefaultPBNMSRadius
	}

	tw, th := pbTemplate.Width, pbTemplate.Height
	var candidates []PBMarker

	for y := 0; y+th <= region.Height; y++ {
		for x := 0; x+tw <= region.Width; x++ {
			patch := region.Crop(x, y, tw, th)
			score := ncc(patch, pbTemplate)
			if score >= confidenceFloor {
				candidates = append(candidates, PBMarker{X: x, Y: y, W: tw, H: th, Confidence: score})
			}
		}
	}

	sortByConfidenceDesc(candidates)
	kept := nonMaxSuppress(candidates, nmsRadius)
	sortByY(kept)
	return kept
}

func sortByConfidenceDesc(m []PBMarker) {
	for i := 1; i < len(m); i++ {
		for j := i; j > 0 && m[j].Confidence > m[j-1].Confidence; j-- {
			m[j], m[j-1] = m[j-1], m[j]
		}
	}
}

func sortByY(m []PBMarker) {
	for i := 1; i < len(m); i++ {
		for j := i; j > 0 && m[j].Y < m[j-1].Y; j-- {
			m[j], m[j-1] = m[j-1], m[j]
		}
	}
}

func nonMaxSuppress(candidates []PBMarker, nmsRadius int) []PBMarker {
	var kept []PBMarker
	for _, c := range candidates {
		tooClose := false
		for _, k := range kept {
			if absInt(c.X-k.X) < nmsRadius && absInt(c.Y-k.Y) < nmsRadius {
				tooClose = true
				break
			}
		}
		if !tooClose {
			kept = append(kept, c)
		}
	}
	return kept
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
