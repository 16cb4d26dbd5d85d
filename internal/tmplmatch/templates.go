// Package tmplmatch implements the template matcher (§4.5): PB-marker
// localization by normalized cross-correlation with non-maximum
// suppression, and digit localization by external-contour filtering
// followed by a multi-scale correlation sweep against the digit templates.
package tmplmatch

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/cocosip/go-ticket-vision/internal/binarize"
	"github.com/cocosip/go-ticket-vision/internal/frame"
)

// TemplateSet holds the eleven grayscale templates (digits 0-9 and the "PB"
// marker) the matcher correlates against. All templates are binarized with
// the same inverted-Otsu convention as the runtime frames, per §6: "all
// templates must be single-channel and binarized with the same convention
// as the runtime binarizer."
type TemplateSet struct {
	Digits map[int]*frame.Frame
	PB     *frame.Frame
}

// Empty reports whether the template set carries no usable templates at
// all — the "template library unavailable" condition of §7, which disables
// the primary path but never the fallback.
func (t TemplateSet) Empty() bool {
	return len(t.Digits) == 0 && t.PB == nil
}

// LoadTemplateSet loads "0.png".."9.png" and "PB.png" from dir. A missing
// individual file is tolerated (that digit, or the PB marker, is simply
// absent from the set); a directory that yields nothing at all produces an
// Empty TemplateSet, not an error, consistent with §6's "missing templates
// disable the primary path but do not disable the fallback."
func LoadTemplateSet(dir string) (TemplateSet, error) {
	ts := TemplateSet{Digits: make(map[int]*frame.Frame)}

	for d := 0; d <= 9; d++ {
		f, err := loadOne(filepath.Join(dir, fmt.Sprintf("%d.png", d)))
		if err != nil {
			continue
		}
		ts.Digits[d] = f
	}

	if pb, err := loadOne(filepath.Join(dir, "PB.png")); err == nil {
		ts.PB = pb
	}

	return ts, nil
}

func loadOne(path string) (*frame.Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	img, err := png.Decode(fh)
	if err != nil {
		return nil, err
	}

	return binarize.Binarize(frame.FromImage(img)), nil
}
