package preprocess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/spectrum"
)

func gaussianSpectrum(n int, waveStart, waveStep float64) *spectrum.Spectrum {
	wave := make([]float64, n)
	flux := make([]float64, n)
	for i := 0; i < n; i++ {
		w := waveStart + float64(i)*waveStep
		wave[i] = w
		center := waveStart + float64(n/2)*waveStep
		flux[i] = 10 + 5*math.Exp(-((w-center)*(w-center))/(2*50*50))
	}
	return &spectrum.Spectrum{Wave: wave, Flux: flux}
}

func TestProcessProducesTaperedZeroMean(t *testing.T) {
	g := grid.New(1024, 3500, 2e-3)
	raw := gaussianSpectrum(2000, 3500, 1.5)

	out, trace, err := Process(raw, DefaultConfig(), g)
	require.NoError(t, err)
	require.NotNil(t, trace)
	require.Greater(t, out.RightEdge, out.LeftEdge)

	for i := 0; i < out.LeftEdge; i++ {
		assert.Equal(t, 0.0, out.TaperedFlux[i])
	}
	for i := out.RightEdge + 1; i < g.N; i++ {
		assert.Equal(t, 0.0, out.TaperedFlux[i])
	}

	var sum float64
	for i := out.LeftEdge; i <= out.RightEdge; i++ {
		sum += out.FlatFlux[i]
	}
	assert.InDelta(t, 0.0, sum/float64(out.RightEdge-out.LeftEdge+1), 1e-6)
}

func TestProcessEmptySpectrumError(t *testing.T) {
	g := grid.New(256, 3500, 2e-3)
	raw := &spectrum.Spectrum{
		Wave: []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 112, 113, 114, 115},
		Flux: make([]float64, 16),
	}

	_, _, err := Process(raw, DefaultConfig(), g)
	require.Error(t, err)
}

func TestRemoveSpikesFlattensOutlier(t *testing.T) {
	flux := make([]float64, 200)
	for i := range flux {
		flux[i] = 10
	}
	flux[100] = 1000 // single-pixel spike

	out, removed := removeSpikes(flux, 21, 5, 1.2, 3)
	assert.Equal(t, 1, removed)
	assert.Less(t, out[100], 100.0)
}

func TestApplyMasksZeroesTelluric(t *testing.T) {
	wave := []float64{7600, 7700, 5000}
	flux := []float64{1, 1, 1}
	cfg := DefaultConfig()
	cfg.ABandRemove = true

	out := applyMasks(wave, flux, cfg)
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 1.0, out[1])
	assert.Equal(t, 1.0, out[2])
}
