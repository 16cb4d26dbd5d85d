// Package pipeline wires the extraction stages together into the single
// entry point described in §6: binarize, normalize orientation, locate the
// plays region, clean, template-match, group rows, and validate — falling
// back to the textual extractor only when the primary path yields nothing.
package pipeline

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/cocosip/go-ticket-vision/internal/binarize"
	"github.com/cocosip/go-ticket-vision/internal/fallback"
	"github.com/cocosip/go-ticket-vision/internal/frame"
	"github.com/cocosip/go-ticket-vision/internal/morph"
	"github.com/cocosip/go-ticket-vision/internal/obsmetrics"
	"github.com/cocosip/go-ticket-vision/internal/orient"
	"github.com/cocosip/go-ticket-vision/internal/play"
	"github.com/cocosip/go-ticket-vision/internal/region"
	"github.com/cocosip/go-ticket-vision/internal/rowgroup"
	"github.com/cocosip/go-ticket-vision/internal/tmplmatch"
)

// Thresholds collects the detection tunables that internal/config may
// override per deployment (§4.5/§4.6's NCC confidence floors and
// row-clustering tolerances). A zero field means "use the built-in
// default from the owning package" — the same convention
// internal/config.Config documents for its own fields.
type Thresholds struct {
	PBConfidenceFloor    float64
	DigitConfidenceFloor float64
	RowClusterTolerance  int
	PairingTolerance     int
	NMSRadius            int
}

// Pipeline is the extraction service: a loaded TemplateSet, a logger, and
// the detection thresholds, shared read-only across calls (§5 — templates
// are loaded once at startup and invocations must not mutate them).
// Pipeline holds no other mutable state; an extraction is a pure function
// of (frame, templates, thresholds) as required by §5.
type Pipeline struct {
	Templates  tmplmatch.TemplateSet
	Logger     *log.Logger
	Thresholds Thresholds
}

// New builds a Pipeline. A nil or Empty TemplateSet is accepted — per §7,
// a missing template library disables the primary path but not the
// fallback — and logged once here rather than once per call. Zero-valued
// fields in thresholds fall back to the built-in defaults of the
// tmplmatch/rowgroup packages.
func New(templates tmplmatch.TemplateSet, logger *log.Logger, thresholds Thresholds) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	if templates.Empty() {
		logger.Printf("%v, primary path disabled", ErrTemplatesUnavailable)
	}
	return &Pipeline{Templates: templates, Logger: logger, Thresholds: thresholds}
}

// ExtractPlays is the entry point of §6: extract_plays(image, templates).
// ocrText is the caller-supplied recognized text used only by the textual
// fallback path (§4.7 takes "a raw recognized-text string" as a given; OCR
// recognition itself is a collaborator outside the core, the same way
// winning-numbers lookup and prize calculation are, so it is threaded in
// as an input rather than performed here). An empty ocrText simply yields
// an empty fallback result, not an error.
func (p *Pipeline) ExtractPlays(ctx context.Context, img *frame.Frame, ocrText string) []play.Play {
	callID := uuid.NewString()
	logger := p.Logger
	timer := obsmetrics.StartTimer()

	bin := binarize.Binarize(img)
	norm := orient.Normalize(bin)

	var plays []play.Play
	if norm.QRFound && !p.Templates.Empty() {
		plays = p.primaryPath(norm)
		logger.Printf("extract[%s]: primary path found %d play(s)", callID, len(plays))
	} else {
		logger.Printf("extract[%s]: qr_found=%v templates_empty=%v, skipping primary path",
			callID, norm.QRFound, p.Templates.Empty())
	}

	outcome := obsmetrics.OutcomePrimary
	if len(plays) == 0 {
		plays = fallback.Extract(ocrText)
		logger.Printf("extract[%s]: fallback path found %d play(s)", callID, len(plays))
		outcome = obsmetrics.OutcomeFallback
		if len(plays) == 0 {
			outcome = obsmetrics.OutcomeEmpty
		}
	}

	obsmetrics.ObserveExtraction(outcome, timer)
	return plays
}

// primaryPath runs stages 3-6+8 of §2's data flow over an already
// QR-normalized canvas.
func (p *Pipeline) primaryPath(norm orient.Result) []play.Play {
	rect, err := region.Locate(norm.Canvas, norm.QRTopY)
	if err != nil {
		return nil
	}

	playsRegion := region.Crop(norm.Canvas, rect)
	cleaned := morph.Close(playsRegion)

	var pbMarkers []tmplmatch.PBMarker
	if p.Templates.PB != nil {
		pbMarkers = tmplmatch.DetectPB(cleaned, p.Templates.PB, p.Thresholds.PBConfidenceFloor, p.Thresholds.NMSRadius)
	}
	digitHits := tmplmatch.DetectDigits(cleaned, p.Templates.Digits, p.Thresholds.DigitConfidenceFloor)

	return rowgroup.Reconstruct(digitHits, pbMarkers, p.Thresholds.RowClusterTolerance, p.Thresholds.PairingTolerance)
}
