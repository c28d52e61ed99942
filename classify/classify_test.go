package classify

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrosnid/snid/cluster"
	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/preprocess"
	"github.com/astrosnid/snid/scoring"
	"github.com/astrosnid/snid/spectrum"
	"github.com/astrosnid/snid/templates"
)

func gaussianSpectrum(n int, waveStart, waveStep, center, width float64) *spectrum.Spectrum {
	wave := make([]float64, n)
	flux := make([]float64, n)
	for i := 0; i < n; i++ {
		w := waveStart + float64(i)*waveStep
		wave[i] = w
		flux[i] = 10 + 5*math.Exp(-((w-center)*(w-center))/(2*width*width))
	}
	return &spectrum.Spectrum{Wave: wave, Flux: flux}
}

func gaussianFlux(n int, center, width float64) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		d := float64(i) - center
		out[i] = math.Exp(-d * d / (2 * width * width))
	}
	return out
}

func buildTestLibrary(g grid.Grid) *templates.Library {
	f := grid.NewFFT()
	padTo := grid.NextPow2(2 * g.N)

	mk := func(name, typ string, center int) *templates.Template {
		flux := gaussianFlux(g.N, float64(center), 6)
		return &templates.Template{
			Name: name, Type: typ, Subtype: "normal", AgeDays: 5,
			LeftEdge: 40, RightEdge: g.N - 40,
			FlatFlux: flux,
			Norm:     grid.Norm2(flux, 40, g.N-39),
			FFT:      f.ComputePadded(flux, padTo),
		}
	}

	return templates.NewLibraryForTest(map[string][]*templates.Template{
		"Ia": {mk("ia-1", "Ia", 512), mk("ia-2", "Ia", 512), mk("ia-3", "Ia", 512)},
	})
}

func TestAnalyzeEndToEnd(t *testing.T) {
	n := 1024
	g := grid.New(n, 3500, 2e-3)
	center := 3500 * math.Exp(float64(n/2)*2e-3)
	raw := gaussianSpectrum(2000, 3500, 5.0, center, 50)

	library := buildTestLibrary(g)

	scoringCfg := scoring.DefaultConfig()
	scoringCfg.ZMin, scoringCfg.ZMax = -0.05, 0.05
	scoringCfg.RlapMin, scoringCfg.LapMin = 0, 0

	clusterCfg := cluster.DefaultConfig()
	clusterCfg.RlapCCCThreshold = 0
	clusterCfg.MinClusterSize = 2

	result, err := Analyze(context.Background(), raw, library, g, preprocess.DefaultConfig(), scoringCfg, clusterCfg, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.FilteredMatches)
	assert.NotEmpty(t, result.TopMatches)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, result))
	assert.Contains(t, buf.String(), "best_type")

	summary := FormatSummary(result)
	assert.NotEmpty(t, summary)
	oneLine := FormatOneLine(result)
	assert.NotEmpty(t, oneLine)
}

func TestAnalyzePropagatesPreprocessError(t *testing.T) {
	g := grid.New(256, 3500, 2e-3)
	empty := &spectrum.Spectrum{}
	library := buildTestLibrary(g)

	_, err := Analyze(context.Background(), empty, library, g, preprocess.DefaultConfig(), scoring.DefaultConfig(), cluster.DefaultConfig(), nil)
	require.Error(t, err)
}

func TestFormatOneLineUnknown(t *testing.T) {
	result := &AnalysisResult{Success: true, BestType: "unknown"}
	assert.Equal(t, "unknown", FormatOneLine(result))
	assert.Contains(t, FormatSummary(result), "no classification")
}
