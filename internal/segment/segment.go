// Package segment infers a logical outline from plain text recovered from a
// document of unknown layout.
//
// Segmentation runs five phases, each consuming the previous phase's full
// output: Normalize, Score, Validate, Build, and (when Build yields fewer
// than two sections) Fallback. Every phase is pure; independent documents
// may be segmented concurrently.
//
//	res, err := segment.Segment(text)
//	if errors.Is(err, segment.ErrNoContentExtracted) {
//		// nothing usable in the input
//	}
package segment

import (
	"errors"

	"github.com/Samrudhp/EduSummaryV2/internal/outline"
)

// ErrNoContentExtracted is returned when the input holds no section with
// enough content.
var ErrNoContentExtracted = errors.New("no content extracted")

// Strategy tells which path produced the sections.
type Strategy string

const (
	StrategyHeadings Strategy = "headings"
	StrategyFallback Strategy = "fallback"
)

// Result is the outline of one document.
type Result struct {
	Sections   []outline.Section
	Strategy   Strategy
	Lines      int
	PageBreaks []PageBreak // nil when the text carried no page markers
}

// Option configures a Segment call.
type Option func(*options)

type options struct {
	observe Observer
}

// WithObserver streams per-phase diagnostics to fn.
func WithObserver(fn Observer) Option {
	return func(o *options) { o.observe = fn }
}

// Segment runs the full pipeline over text.
func Segment(text string, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	emit := func(e Event) {
		if o.observe != nil {
			o.observe(e)
		}
	}

	norm := Normalize(text)
	emit(Event{
		Phase:  PhaseNormalize,
		In:     norm.RawLines,
		Out:    len(norm.Lines),
		Counts: map[string]int{"page_marker": len(norm.PageBreaks)},
	})
	if len(norm.Lines) == 0 {
		return nil, ErrNoContentExtracted
	}

	candidates := Score(norm.Lines)
	emit(Event{Phase: PhaseScore, In: len(norm.Lines), Out: len(candidates)})

	v := Validate(candidates, norm.Lines)
	emit(Event{
		Phase:  PhaseValidate,
		In:     len(candidates),
		Out:    len(v.Headings),
		Counts: map[string]int{"merged": v.Merged, "no_body": v.NoBody},
	})

	sections, short := Build(v.Headings, norm.Lines)
	emit(Event{
		Phase:  PhaseBuild,
		In:     len(v.Headings),
		Out:    len(sections),
		Counts: map[string]int{"short": short},
	})

	res := &Result{
		Sections:   sections,
		Strategy:   StrategyHeadings,
		Lines:      len(norm.Lines),
		PageBreaks: norm.PageBreaks,
	}

	if len(sections) < 2 {
		fb := Fallback(norm.Lines)
		emit(Event{
			Phase:  PhaseFallback,
			In:     fb.Paragraphs,
			Out:    len(fb.Sections),
			Counts: map[string]int{"target": fb.Target},
		})
		res.Sections = fb.Sections
		res.Strategy = StrategyFallback
	}

	if len(res.Sections) == 0 {
		return nil, ErrNoContentExtracted
	}
	return res, nil
}
