// Package spectrum normalizes external spectrum files (plain text, CSV, FITS)
// into a common (wave, flux) representation. Units are assumed Angstrom.
package spectrum

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/astrosnid/snid/internal/xerrors"
	"github.com/astrosnid/snid/internal/xlog"
)

// Spectrum is a raw (wave, flux) pair as read from disk, before any
// resampling or flattening.
type Spectrum struct {
	Wave []float64
	Flux []float64
}

// Loader produces a Spectrum from a file path.
type Loader interface {
	Load(path string) (*Spectrum, error)
}

// minSamples is the floor below which a spectrum is considered empty after
// trimming non-finite samples.
const minSamples = 16

// Load dispatches to a loader by file extension, the way transcode.Decoder
// dispatches on probed stream metadata rather than forcing callers to pick a
// codec up front.
func Load(path string) (*Spectrum, error) {
	logger := xlog.WithFields(xlog.Fields{"component": "spectrum", "path": path})

	ext := strings.ToLower(filepath.Ext(path))
	var loader Loader
	switch ext {
	case ".fits", ".fit":
		loader = &fitsLoader{}
	case ".csv":
		loader = &csvLoader{}
	default:
		loader = &textLoader{}
	}

	logger.Debug("loading spectrum", xlog.Fields{"loader": ext})
	return loader.Load(path)
}

// sanitize drops non-finite samples and any wave values that are not
// strictly increasing after the drop, then enforces the minimum sample
// floor.
func sanitize(wave, flux []float64) ([]float64, []float64, error) {
	if len(wave) != len(flux) {
		return nil, nil, xerrors.New(xerrors.BadInput, "spectrum.sanitize", errLengthMismatch(len(wave), len(flux)))
	}

	outWave := make([]float64, 0, len(wave))
	outFlux := make([]float64, 0, len(flux))

	lastWave := math.Inf(-1)
	for i := range wave {
		w, f := wave[i], flux[i]
		if math.IsNaN(w) || math.IsInf(w, 0) || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if w <= lastWave {
			continue
		}
		lastWave = w
		outWave = append(outWave, w)
		outFlux = append(outFlux, f)
	}

	if len(outWave) < minSamples {
		return nil, nil, xerrors.New(xerrors.EmptySpectrum, "spectrum.sanitize", errTooFewSamples(len(outWave)))
	}

	return outWave, outFlux, nil
}
