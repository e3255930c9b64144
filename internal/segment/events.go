package segment

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

// Phase names a segmentation stage.
type Phase string

const (
	PhaseNormalize Phase = "normalize"
	PhaseScore     Phase = "score"
	PhaseValidate  Phase = "validate"
	PhaseBuild     Phase = "build"
	PhaseFallback  Phase = "fallback"
)

// Event is a per-phase diagnostic. In and Out count the phase's input and
// output items; Counts holds phase-specific tallies such as drop reasons.
type Event struct {
	Phase  Phase
	In     int
	Out    int
	Counts map[string]int
}

// Observer receives one Event per phase, in pipeline order.
type Observer func(Event)

// LogEvents returns an Observer that writes each event to log at debug level.
func LogEvents(log *slog.Logger) Observer {
	return func(e Event) {
		attrs := []slog.Attr{
			slog.String("phase", string(e.Phase)),
			slog.Int("in", e.In),
			slog.Int("out", e.Out),
		}
		for _, name := range slices.Sorted(maps.Keys(e.Counts)) {
			attrs = append(attrs, slog.Int(name, e.Counts[name]))
		}
		log.LogAttrs(context.Background(), slog.LevelDebug, "segment phase", attrs...)
	}
}
