package classify

import (
	"time"

	"github.com/astrosnid/snid/internal/xlog"
	"github.com/astrosnid/snid/preprocess"
)

// Step records one top-level component's timing and free-form decision
// points, unifying preprocess's own per-step Trace into one outer trace.
type Step struct {
	Name     string
	Duration time.Duration
	Notes    xlog.Fields
}

// Trace accumulates one Step per Analyze component (preprocess, scoring,
// cluster), plus the nested step-by-step preprocessing trace.
type Trace struct {
	Steps      []Step
	Preprocess *preprocess.Trace
}

func (t *Trace) record(name string, start time.Time, notes xlog.Fields) {
	t.Steps = append(t.Steps, Step{Name: name, Duration: time.Since(start), Notes: notes})
}
