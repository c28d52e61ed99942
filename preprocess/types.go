// Package preprocess turns a raw (wave, flux) spectrum into a flattened,
// apodized representation on the shared log-wavelength grid.
package preprocess

import "time"

// Processed is the output of Process: a spectrum fully resampled, flattened,
// and apodized on the shared grid.
type Processed struct {
	LogWave      []float64 // = grid.Wavelengths(), kept for convenience
	LogFlux      []float64 // rebinned flux on the grid, zero outside the active region
	Continuum    []float64
	FlatFlux     []float64 // continuum-divided, mean-zero inside the active region
	TaperedFlux  []float64 // FlatFlux with a cosine taper near the active edges
	LeftEdge     int
	RightEdge    int
	NonzeroMask  []bool
}

// StepTrace records one preprocessing step's timing and any decision points
// worth surfacing (e.g. how many spikes were removed, whether the continuum
// fit degraded).
type StepTrace struct {
	Name     string
	Duration time.Duration
	Notes    map[string]any
}

// Trace accumulates one StepTrace per preprocessing step, in order.
type Trace struct {
	Steps []StepTrace
}

func (t *Trace) record(name string, start time.Time, notes map[string]any) {
	t.Steps = append(t.Steps, StepTrace{Name: name, Duration: time.Since(start), Notes: notes})
}
