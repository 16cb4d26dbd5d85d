package tmplmatch

// DigitHit is a classified digit glyph location: X is the left edge of the
// glyph's bounding box and Y its vertical center, plus the classified
// digit and the winning correlation score.
type DigitHit struct {
	X, Y       int
	Digit      int
	Confidence float64
}

// PBMarker is a located "PB" glyph, per §3: top-left (x, y), its template
// footprint (w, h, needed by the row reconstructor to partition digits into
// before/after the marker), and the correlation score.
type PBMarker struct {
	X, Y, W, H int
	Confidence float64
}
