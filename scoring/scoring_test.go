package scoring

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/preprocess"
	"github.com/astrosnid/snid/templates"
)

func bump(n, center, width int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		d := float64(i - center)
		out[i] = math.Exp(-d * d / (2 * float64(width*width)))
	}
	return out
}

func TestScoreReturnsSortedMatches(t *testing.T) {
	n := 256
	g := grid.New(n, 4000, 2e-3)

	input := &preprocess.Processed{
		TaperedFlux: bump(n, 128, 5),
		LeftEdge:    20,
		RightEdge:   230,
	}

	f := grid.NewFFT()
	padTo := grid.NextPow2(2 * n)
	mk := func(name string, center int) *templates.Template {
		flux := bump(n, center, 5)
		return &templates.Template{
			Name: name, Type: "Ia", LeftEdge: 20, RightEdge: 230,
			FlatFlux: flux,
			Norm:     grid.Norm2(flux, 20, 231),
			FFT:      f.ComputePadded(flux, padTo),
		}
	}

	lib := templates.NewLibraryForTest(map[string][]*templates.Template{
		"Ia": {mk("exact", 128), mk("offset", 120)},
	})

	cfg := DefaultConfig()
	cfg.ZMin, cfg.ZMax = -0.2, 0.2
	cfg.RlapMin, cfg.LapMin = 0, 0

	matches, err := Score(context.Background(), g, input, lib, cfg, nil)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].RlapCCC, matches[i].RlapCCC)
	}
}

func TestScoreNoEligibleTemplates(t *testing.T) {
	n := 128
	g := grid.New(n, 4000, 2e-3)
	input := &preprocess.Processed{TaperedFlux: bump(n, 64, 5), LeftEdge: 10, RightEdge: 100}

	lib := templates.NewLibraryForTest(map[string][]*templates.Template{})

	_, err := Score(context.Background(), g, input, lib, DefaultConfig(), nil)
	require.Error(t, err)
}

func TestScoreRespectsCancellation(t *testing.T) {
	n := 128
	g := grid.New(n, 4000, 2e-3)
	input := &preprocess.Processed{TaperedFlux: bump(n, 64, 5), LeftEdge: 10, RightEdge: 100}

	f := grid.NewFFT()
	padTo := grid.NextPow2(2 * n)
	flux := bump(n, 64, 5)
	tmpl := &templates.Template{
		Name: "t", Type: "Ia", LeftEdge: 10, RightEdge: 100,
		FlatFlux: flux, Norm: grid.Norm2(flux, 10, 101), FFT: f.ComputePadded(flux, padTo),
	}
	lib := templates.NewLibraryForTest(map[string][]*templates.Template{"Ia": {tmpl}})

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := Score(ctx, g, input, lib, DefaultConfig(), nil)
	require.Error(t, err)
}
