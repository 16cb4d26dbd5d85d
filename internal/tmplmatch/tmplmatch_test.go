package tmplmatch

import (
	"math"
	"testing"

	"github.com/cocosip/go-ticket-vision/internal/frame"
)

// ringGlyph draws a thick rectangular ring (a hollow box) at the frame's
// origin, giving a non-constant, 8-connected foreground blob with a
// predictable bounding box and area — a stand-in for a printed glyph that
// is simple enough to author by hand in a test.
func ringGlyph(w, h, thickness int) *frame.Frame {
	f := frame.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			onBorder := x < thickness || x >= w-thickness || y < thickness || y >= h-thickness
			if onBorder {
				f.Set(x, y, 255)
			}
		}
	}
	return f
}

func TestNCC_IdenticalPatchesScoreOne(t *testing.T) {
	a := ringGlyph(20, 20, 4)
	b := a.Clone()
	if got := ncc(a, b); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ncc(identical) = %v, want 1.0", got)
	}
}

func TestNCC_MismatchedSizeScoresZero(t *testing.T) {
	a := ringGlyph(20, 20, 4)
	b := ringGlyph(10, 10, 2)
	if got := ncc(a, b); got != 0.0 {
		t.Errorf("ncc(mismatched size) = %v, want 0.0", got)
	}
}

func TestNCC_UniformPatchesScoreZero(t *testing.T) {
	a := frame.New(5, 5)
	b := frame.New(5, 5)
	if got := ncc(a, b); got != 0.0 {
		t.Errorf("ncc(uniform) = %v, want 0.0", got)
	}
}

func TestDetectPB_FindsAndSuppressesDuplicates(t *testing.T) {
	tmpl := ringGlyph(20, 12, 3)
	region := frame.New(200, 60)
	pasteAt(region, tmpl, 30, 10)
	// A second, distinct marker 110px away survives NMS; the weaker
	// candidates at shifted positions around each paste are suppressed.
	pasteAt(region, tmpl, 140, 10)

	markers := DetectPB(region, tmpl, 0, 0)
	if len(markers) != 2 {
		t.Fatalf("DetectPB() returned %d markers, want 2", len(markers))
	}
	if markers[0].X != 30 {
		t.Errorf("markers[0].X = %d, want 30", markers[0].X)
	}
	if markers[1].X != 140 {
		t.Errorf("markers[1].X = %d, want 140", markers[1].X)
	}
}

func TestDetectPB_ConfidenceFloorOverrideRejectsWeakMatch(t *testing.T) {
	tmpl := ringGlyph(20, 12, 3)
	region := frame.New(200, 60)
	pasteAt(region, tmpl, 30, 10)

	// An exact paste scores 1.0; a confidence floor above that must reject
	// every candidate, proving the override actually reaches ncc's threshold
	// check and isn't just ignored in favor of the built-in default.
	markers := DetectPB(region, tmpl, 1.5, 0)
	if len(markers) != 0 {
		t.Errorf("DetectPB() with confidenceFloor=1.5 = %+v, want no markers", markers)
	}
}

func TestDetectDigits_ClassifiesPlantedGlyph(t *testing.T) {
	glyph := ringGlyph(40, 40, 6) // area 1600 - 28*28 = 816, within [800,6000]
	region := frame.New(120, 120)
	pasteAt(region, glyph, 10, 10)

	digits := map[int]*frame.Frame{7: glyph}
	hits := DetectDigits(region, digits, 0)

	if len(hits) != 1 {
		t.Fatalf("DetectDigits() returned %d hits, want 1", len(hits))
	}
	if hits[0].Digit != 7 {
		t.Errorf("hits[0].Digit = %d, want 7", hits[0].Digit)
	}
	if hits[0].Confidence <= 0.9 {
		t.Errorf("hits[0].Confidence = %v, want > 0.9", hits[0].Confidence)
	}
	if hits[0].X != 10 {
		t.Errorf("hits[0].X = %d, want 10", hits[0].X)
	}
	if hits[0].Y != 30 {
		t.Errorf("hits[0].Y = %d, want 30", hits[0].Y)
	}
}

func TestDetectDigits_RejectsBelowConfidenceFloor(t *testing.T) {
	glyph := ringGlyph(40, 40, 6)
	decoy := frame.New(32, 32) // solid filled block: uniform, zero correlation
	for i := range decoy.Pix {
		decoy.Pix[i] = 255
	}
	region := frame.New(120, 120)
	pasteAt(region, decoy, 10, 10)

	digits := map[int]*frame.Frame{7: glyph}
	hits := DetectDigits(region, digits, 0)
	if len(hits) != 0 {
		t.Errorf("DetectDigits() = %+v, want no hits", hits)
	}
}

func TestDetectDigits_ConfidenceFloorOverrideRejectsPlantedGlyph(t *testing.T) {
	glyph := ringGlyph(40, 40, 6)
	region := frame.New(120, 120)
	pasteAt(region, glyph, 10, 10)

	digits := map[int]*frame.Frame{7: glyph}
	// Same planted glyph as the classification test above, but with an
	// override above the achievable score, proving the override isn't
	// shadowed by the built-in default.
	hits := DetectDigits(region, digits, 1.5)
	if len(hits) != 0 {
		t.Errorf("DetectDigits() with confidenceFloor=1.5 = %+v, want no hits", hits)
	}
}

func pasteAt(dst, src *frame.Frame, ox, oy int) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			if src.At(x, y) == 255 {
				dst.Set(ox+x, oy+y, 255)
			}
		}
	}
}
