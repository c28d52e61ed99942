package correlate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/preprocess"
	"github.com/astrosnid/snid/templates"
)

func bumpFlux(n, center, width int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		d := float64(i - center)
		out[i] = math.Exp(-d * d / (2 * float64(width*width)))
	}
	return out
}

func TestCorrelateRecoversKnownShift(t *testing.T) {
	n := 512
	g := grid.New(n, 4000, 2e-3)

	shift := 7
	inputFlux := bumpFlux(n, 256, 5)
	tmplFlux := bumpFlux(n, 256-shift, 5)

	input := &preprocess.Processed{
		TaperedFlux: inputFlux,
		LeftEdge:    100,
		RightEdge:   400,
	}

	f := grid.NewFFT()
	padTo := grid.NextPow2(2 * n)
	tmpl := &templates.Template{
		Name: "t1", Type: "Ia",
		FlatFlux: tmplFlux, LeftEdge: 100, RightEdge: 400,
		Norm: grid.Norm2(tmplFlux, 100, 401),
		FFT:  f.ComputePadded(tmplFlux, padTo),
	}

	cfg := DefaultConfig()
	cfg.ZMin = -0.5
	cfg.ZMax = 0.5
	cfg.RlapMin = 0
	cfg.LapMin = 0

	c := NewCorrelator(g, input, cfg)
	m, err := c.Compute(tmpl)
	require.NoError(t, err)

	assert.False(t, m.Rejected)
	assert.InDelta(t, float64(shift), m.LagPixels, 1.5)
	assert.Greater(t, m.Lap, 0.0)
}

func TestCorrelateRejectsDegenerateTemplate(t *testing.T) {
	n := 256
	g := grid.New(n, 4000, 2e-3)
	input := &preprocess.Processed{
		TaperedFlux: bumpFlux(n, 128, 5),
		LeftEdge:    50,
		RightEdge:   200,
	}
	c := NewCorrelator(g, input, DefaultConfig())

	tmpl := &templates.Template{Name: "zero", Norm: 0}
	m, err := c.Compute(tmpl)
	require.NoError(t, err)
	assert.True(t, m.Rejected)
}

func TestFractionalOverlap(t *testing.T) {
	g := grid.New(100, 4000, 2e-3)
	ov := fractionalOverlap(g, 10, 89, 10, 89, 0)
	assert.InDelta(t, 1.0, ov, 1e-9)

	ov2 := fractionalOverlap(g, 10, 89, 200, 300, 0)
	assert.Equal(t, 0.0, ov2)
}
