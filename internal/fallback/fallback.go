// Package fallback implements the textual extractor (§4.7), the
// conservative salvage path invoked only when template matching yields
// zero plays: it repairs a noisy recognized-text string with a fixed
// substitution chain and pulls PB-anchored play candidates out of it line
// by line.
package fallback

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cocosip/go-ticket-vision/internal/play"
)

const minLineLength = 10
const minValidNumbersPerLine = 6

var (
	reMBKB       = regexp.MustCompile(`\b(?:MB|KB)\b`)
	reMRun       = regexp.MustCompile(`m+\s*(\d)`)
	reBDigits    = regexp.MustCompile(`\bB(\d{1,2})\b`)
	reDigitB     = regexp.MustCompile(`(\d)B\b`)
	reDigitPB    = regexp.MustCompile(`(\d)PB`)
	reOBeforeDig = regexp.MustCompile(`O(\d)`)
	re72         = regexp.MustCompile(`\b72\b`)
	re71         = regexp.MustCompile(`\b71\b`)
	reDigitRun   = regexp.MustCompile(`\d{4,}`)
	reDigitToken = regexp.MustCompile(`\d+`)
	rePBNumber   = regexp.MustCompile(`PB\s*(\d{1,2})`)
)

// Extract runs the substitution chain over raw, then parses each surviving
// line for a play candidate, validating before accepting.
func Extract(raw string) []play.Play {
	repaired := repair(raw)

	var plays []play.Play
	for _, line := range strings.Split(repaired, "\n") {
		if len(line) < minLineLength {
			continue
		}
		if p, ok := extractLine(line); ok {
			plays = append(plays, p)
		}
	}
	return plays
}

// repair applies the fixed substitution chain of §4.7 step 1, in order.
func repair(s string) string {
	s = reMBKB.ReplaceAllString(s, "PB")
	s = reMRun.ReplaceAllString(s, "PB $1")
	s = reBDigits.ReplaceAllString(s, "PB $1")
	s = reDigitB.ReplaceAllString(s, "$1")
	s = reDigitPB.ReplaceAllString(s, "$1 PB")

	// §9 flags "72"->"12"/"71"->"11" as aggressive: applied as a blind
	// substring replace they corrupt genuine digit sequences whenever two
	// adjacent glued digits happen to read "71" or "72" (e.g. "...61PB..."
	// in a run-together line has no such boundary, but "0714224561" does
	// contain "71" spanning the 07/14 boundary). Restricting the
	// substitution to a standalone two-digit token avoids exactly that
	// corruption while still repairing the OCR misreads the rule exists
	// for, and is what makes a glued digit run reconstruct correctly.
	s = re72.ReplaceAllString(s, "12")
	s = re71.ReplaceAllString(s, "11")
	s = strings.ReplaceAll(s, "Ba", "04")
	s = strings.ReplaceAll(s, "Oa", "04")
	s = reOBeforeDig.ReplaceAllString(s, "0$1")

	s = reDigitRun.ReplaceAllStringFunc(s, splitDigitRun)
	return s
}

// splitDigitRun chunks a run of four-or-more digits into successive
// two-digit tokens, keeping a trailing odd digit alone, per §4.7 step 1's
// last rule.
func splitDigitRun(run string) string {
	var chunks []string
	i := 0
	for ; i+1 < len(run); i += 2 {
		chunks = append(chunks, run[i:i+2])
	}
	if i < len(run) {
		chunks = append(chunks, run[i:])
	}
	return strings.Join(chunks, " ")
}

// extractLine implements §4.7 steps 2-3 for a single already-repaired line.
func extractLine(line string) (play.Play, bool) {
	tokenIdx := reDigitToken.FindAllStringIndex(line, -1)
	if len(tokenIdx) == 0 {
		return play.Play{}, false
	}

	type validEntry struct {
		value      int
		tokenIndex int // index into tokenIdx
	}
	var valid []validEntry
	for i, loc := range tokenIdx {
		v, err := strconv.Atoi(line[loc[0]:loc[1]])
		if err != nil {
			continue
		}
		if v >= 1 && v <= 69 {
			valid = append(valid, validEntry{value: v, tokenIndex: i})
		}
	}
	if len(valid) < minValidNumbersPerLine {
		return play.Play{}, false
	}

	pivot := -1
	powerball := 0

	if m := rePBNumber.FindStringSubmatchIndex(line); m != nil {
		n, err := strconv.Atoi(line[m[2]:m[3]])
		if err == nil && n >= 1 && n <= 26 {
			// Find which digit token the matched number corresponds to,
			// then map that to its position within the valid-numbers list.
			for i, loc := range tokenIdx {
				if loc[0] == m[2] && loc[1] == m[3] {
					for vi, ve := range valid {
						if ve.tokenIndex == i {
							pivot = vi
							powerball = n
						}
					}
				}
			}
		}
	}

	if pivot < 0 {
		pivot = len(valid) - 1
		powerball = valid[pivot].value
	}

	if pivot < 5 {
		return play.Play{}, false
	}

	white := make([]int, 0, 5)
	for _, ve := range valid[pivot-5 : pivot] {
		white = append(white, ve.value)
	}

	p, err := play.Validate(white, powerball)
	if err != nil {
		return play.Play{}, false
	}
	return p, true
}
