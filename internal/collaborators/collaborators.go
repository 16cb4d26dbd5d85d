// Package collaborators declares the external interfaces §6 names as
// sitting outside the extraction core: looking up a drawing's winning
// numbers and turning a Play into a prize amount. Neither is implemented
// here — both depend on a data source (a drawing results feed, a prize
// table) this repository has no opinion about — so callers supply their
// own implementation the same way they supply OCR text to the fallback
// path.
package collaborators

import "github.com/cocosip/go-ticket-vision/internal/play"

// Drawing is a single winning-numbers draw a Play can be checked against.
type Drawing struct {
	White     [5]int
	Powerball int
}

// WinningNumbersLookup resolves the winning numbers for a drawing date,
// identified by the caller in whatever form its results feed uses (a date
// string, a draw ID); the core has no opinion on that format.
type WinningNumbersLookup interface {
	Lookup(drawIdentifier string) (Drawing, error)
}

// PrizeCalculator maps a Play checked against a Drawing to a payout. The
// prize table itself (fixed amounts, parimutuel shares, jackpot rules) is
// a matter of lottery rules the core does not encode.
type PrizeCalculator interface {
	Calculate(p play.Play, d Drawing) (amountCents int64, err error)
}
