package preprocess

import (
	"time"

	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/internal/xerrors"
	"github.com/astrosnid/snid/internal/xlog"
	"github.com/astrosnid/snid/spectrum"
)

// Process runs the full preprocessing pipeline against a raw spectrum,
// producing a Processed spectrum on g plus a Trace of per-step decisions.
//
// This orchestrator owns no algorithmic logic of its own: each step lives in
// its own file and is invoked here in the fixed order the spec requires,
// following the teacher's thin-orchestration style in
// fingerprint.FingerprintGenerator.GenerateFingerprint.
func Process(raw *spectrum.Spectrum, cfg Config, g grid.Grid) (*Processed, *Trace, error) {
	logger := xlog.WithFields(xlog.Fields{"component": "preprocess"})
	trace := &Trace{}

	wave, flux := raw.Wave, raw.Flux

	if cfg.SpikeMasking {
		start := time.Now()
		var removed int
		flux, removed = removeSpikes(flux, cfg.SpikeBaselineWindow, cfg.SpikeFloorZ, cfg.SpikeRelEdgeRatio, cfg.SpikeMinSeparation)
		trace.record("spike_removal", start, map[string]any{"removed": removed})
	}

	start := time.Now()
	flux = applyMasks(wave, flux, cfg)
	trace.record("masking", start, nil)

	if cfg.SavgolWindow >= 3 {
		start = time.Now()
		flux = savitzkyGolay(flux, cfg.SavgolWindow, cfg.SavgolOrder)
		trace.record("savgol", start, map[string]any{"window": cfg.SavgolWindow, "order": cfg.SavgolOrder})
	}

	start = time.Now()
	logFlux := rebin(wave, flux, g)
	trace.record("rebin", start, nil)

	left, right, ok := findActiveRegion(logFlux)
	if !ok {
		logger.Warn("spectrum has no active region after rebinning")
		return nil, trace, xerrors.New(xerrors.EmptySpectrum, "preprocess.Process", errNoActiveRegion())
	}

	start = time.Now()
	continuum, degraded := fitContinuum(logFlux, left, right)
	if degraded {
		logger.Warn("continuum fit degenerate, falling back to linear fit", xlog.Fields{"left": left, "right": right})
		continuum = fitContinuumLinear(logFlux, left, right)
	}
	trace.record("continuum", start, map[string]any{"degraded": degraded})

	start = time.Now()
	flatFlux := flatten(logFlux, continuum, left, right)
	trace.record("flatten", start, nil)

	start = time.Now()
	tapered := apodize(flatFlux, left, right, cfg.ApodizePercent)
	trace.record("apodize", start, map[string]any{"percent": cfg.ApodizePercent})

	mask := make([]bool, g.N)
	for i := left; i <= right; i++ {
		mask[i] = logFlux[i] != 0
	}

	return &Processed{
		LogWave:     g.Wavelengths(),
		LogFlux:     logFlux,
		Continuum:   continuum,
		FlatFlux:    flatFlux,
		TaperedFlux: tapered,
		LeftEdge:    left,
		RightEdge:   right,
		NonzeroMask: mask,
	}, trace, nil
}

// findActiveRegion returns the first and last index with nonzero flux.
func findActiveRegion(flux []float64) (left, right int, ok bool) {
	left, right = -1, -1
	for i, v := range flux {
		if v != 0 {
			if left < 0 {
				left = i
			}
			right = i
		}
	}
	return left, right, left >= 0
}
