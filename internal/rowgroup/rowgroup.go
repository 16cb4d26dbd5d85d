// Package rowgroup clusters classified digits into ticket rows and
// reconstructs each row's two-digit white-ball and Powerball numbers
// (§4.6).
package rowgroup

import (
	"golang.org/x/exp/slices"

	"github.com/cocosip/go-ticket-vision/internal/play"
	"github.com/cocosip/go-ticket-vision/internal/tmplmatch"
)

// Built-in defaults for the tolerances Reconstruct exposes as overrides;
// these are the values §4.6 specifies and what a zero-valued override from
// internal/config falls back to.
const (
	DefaultRowClusterTolerance = 40
	DefaultPairingTolerance    = 110
	beforeKeepCount            = 10
	afterKeepCount             = 2
)

// Reconstruct groups hits into rows, pairs each row's digits against its
// nearest PB marker, and validates the resulting candidate. Rows that fail
// to produce a valid Play are silently dropped (§4.6 step 4) — the
// function never errors; an empty result simply means no row validated.
// Output order follows the rows' top-to-bottom order on the ticket (§5).
// A zero rowClusterTolerance or pairingTolerance falls back to the §4.6
// defaults above.
func Reconstruct(hits []tmplmatch.DigitHit, markers []tmplmatch.PBMarker, rowClusterTolerance, pairingTolerance int) []play.Play {
	if rowClusterTolerance == 0 {
		rowClusterTolerance = DefaultRowClusterTolerance
	}
	if pairingTolerance == 0 {
		pairingTolerance = DefaultPairingTolerance
	}

	rows := clusterRows(hits, rowClusterTolerance)

	var plays []play.Play
	for _, row := range rows {
		p, ok := reconstructRow(row, markers, rowClusterTolerance, pairingTolerance)
		if ok {
			plays = append(plays, p)
		}
	}
	return plays
}

// clusterRows sorts hits by y and greedily single-linkage clusters them:
// a new row begins whenever the next hit's y differs from the current
// row's *first* hit's y by more than rowClusterTolerance, per §4.6 step 2.
func clusterRows(hits []tmplmatch.DigitHit, rowClusterTolerance int) [][]tmplmatch.DigitHit {
	if len(hits) == 0 {
		return nil
	}

	sorted := append([]tmplmatch.DigitHit(nil), hits...)
	slices.SortFunc(sorted, func(a, b tmplmatch.DigitHit) int { return a.Y - b.Y })

	var rows [][]tmplmatch.DigitHit
	current := []tmplmatch.DigitHit{sorted[0]}
	rowFirstY := sorted[0].Y

	for _, h := range sorted[1:] {
		if absInt(h.Y-rowFirstY) > rowClusterTolerance {
			rows = append(rows, current)
			current = []tmplmatch.DigitHit{h}
			rowFirstY = h.Y
			continue
		}
		current = append(current, h)
	}
	rows = append(rows, current)
	return rows
}

func reconstructRow(row []tmplmatch.DigitHit, markers []tmplmatch.PBMarker, rowClusterTolerance, pairingTolerance int) (play.Play, bool) {
	sorted := append([]tmplmatch.DigitHit(nil), row...)
	slices.SortFunc(sorted, func(a, b tmplmatch.DigitHit) int { return a.X - b.X })

	meanY := meanOfY(sorted)
	pb, ok := nearestMarker(markers, meanY, rowClusterTolerance)
	if !ok {
		return play.Play{}, false
	}

	var before, after []tmplmatch.DigitHit
	for _, h := range sorted {
		switch {
		case h.X < pb.X:
			before = append(before, h)
		case h.X > pb.X+pb.W:
			after = append(after, h)
		}
	}

	before = lastN(before, beforeKeepCount)
	after = firstN(after, afterKeepCount)

	whiteNums := pairDigits(before, pairingTolerance)
	afterNums := pairDigits(after, pairingTolerance)

	if len(whiteNums) != 5 || len(afterNums) == 0 {
		return play.Play{}, false
	}

	p, err := play.Validate(whiteNums, afterNums[0])
	if err != nil {
		return play.Play{}, false
	}
	return p, true
}

// nearestMarker finds the PBMarker whose vertical center is closest to
// meanY. Ties (equal distance) are broken in favor of the marker with the
// smaller y, per §4.6's tie-breaking rule. A marker further than
// rowClusterTolerance from meanY is not considered to belong to this row
// at all (it is some other row's marker) and is treated the same as "no
// marker exists" — this is what makes a row with its own PB glyph erased
// drop silently instead of incorrectly borrowing a neighboring row's
// marker, as required by the erased-PB-glyph scenario in §8.
func nearestMarker(markers []tmplmatch.PBMarker, meanY float64, rowClusterTolerance int) (tmplmatch.PBMarker, bool) {
	best := tmplmatch.PBMarker{}
	bestDist := -1.0
	found := false

	for _, m := range markers {
		d := distToCenter(m, meanY)
		if d > float64(rowClusterTolerance) {
			continue
		}
		if !found || d < bestDist || (d == bestDist && m.Y < best.Y) {
			best = m
			bestDist = d
			found = true
		}
	}
	return best, found
}

func distToCenter(m tmplmatch.PBMarker, meanY float64) float64 {
	center := float64(m.Y) + float64(m.H)/2
	d := center - meanY
	if d < 0 {
		return -d
	}
	return d
}

func meanOfY(hits []tmplmatch.DigitHit) float64 {
	if len(hits) == 0 {
		return 0
	}
	sum := 0
	for _, h := range hits {
		sum += h.Y
	}
	return float64(sum) / float64(len(hits))
}

// pairDigits steps through the sorted sequence, combining a hit and its
// successor into a two-digit number when they lie within pairingTolerance
// in x, otherwise emitting the hit alone, per §4.6 step 3d.
func pairDigits(hits []tmplmatch.DigitHit, pairingTolerance int) []int {
	var out []int
	for i := 0; i < len(hits); {
		if i+1 < len(hits) && absInt(hits[i+1].X-hits[i].X) <= pairingTolerance {
			out = append(out, hits[i].Digit*10+hits[i+1].Digit)
			i += 2
			continue
		}
		out = append(out, hits[i].Digit)
		i++
	}
	return out
}

func lastN(hits []tmplmatch.DigitHit, n int) []tmplmatch.DigitHit {
	if len(hits) <= n {
		return hits
	}
	return hits[len(hits)-n:]
}

func firstN(hits []tmplmatch.DigitHit, n int) []tmplmatch.DigitHit {
	if len(hits) <= n {
		return hits
	}
	return hits[:n]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
