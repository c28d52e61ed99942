package correlate

import (
	"math"
	"math/cmplx"

	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/preprocess"
	"github.com/astrosnid/snid/templates"
)

// Correlator holds the one-time-per-analysis state shared across every
// template correlation: the input's own FFT, zero-padded once, mirroring
// the teacher's split between a stateless stats.CrossCorrelation holding
// fixed parameters and its per-pair Compute call.
type Correlator struct {
	g     grid.Grid
	fft   *grid.FFT
	padTo int
	cfg   Config

	inputFFT   []complex128
	inputFlux  []float64
	inputLeft  int
	inputRight int
	inputNorm  float64
}

// NewCorrelator builds a Correlator for one preprocessed input spectrum.
func NewCorrelator(g grid.Grid, input *preprocess.Processed, cfg Config) *Correlator {
	f := grid.NewFFT()
	padTo := grid.NextPow2(2 * g.N)

	return &Correlator{
		g:          g,
		fft:        f,
		padTo:      padTo,
		cfg:        cfg,
		inputFFT:   f.ComputePadded(input.TaperedFlux, padTo),
		inputFlux:  input.TaperedFlux,
		inputLeft:  input.LeftEdge,
		inputRight: input.RightEdge,
		inputNorm:  grid.Norm2(input.TaperedFlux, input.LeftEdge, input.RightEdge+1),
	}
}

// Compute correlates the input against one template, returning its Match.
// Never returns an error for a well-formed template; a degenerate template
// (e.g. zero norm) yields a rejected Match rather than failing the whole
// analysis, since scoring must continue across individual template
// failures.
func (c *Correlator) Compute(t *templates.Template) (Match, error) {
	m := Match{
		TemplateName: t.Name,
		Type:         t.Type,
		Subtype:      t.Subtype,
		AgeDays:      t.AgeDays,
	}

	if t.Norm <= 0 || c.inputNorm <= 0 || len(t.FFT) != len(c.inputFFT) {
		m.Rejected = true
		return m, nil
	}

	correlation := c.crossCorrelate(t.FFT)

	var lagIdx int
	if c.cfg.ForcedRedshift != nil {
		lagIdx = int(math.Round(c.g.LagForRedshift(*c.cfg.ForcedRedshift)))
	} else {
		lo := int(math.Floor(c.g.LagForRedshift(c.cfg.ZMin)))
		hi := int(math.Ceil(c.g.LagForRedshift(c.cfg.ZMax)))
		lagIdx = findPeakInWindow(correlation, lo, hi, c.cfg.PeakWindowSize)
	}

	peakVal, subpixel := refinePeak(correlation, lagIdx)
	lag := float64(lagIdx) + subpixel

	sigma := offPeakSigma(correlation, lagIdx, c.cfg.PeakWindowSize)

	m.ZBest = c.g.RedshiftForLag(lag)
	m.ZErr = zErrFromHalfWidth(correlation, lagIdx, peakVal, sigma, c.g)
	m.LagPixels = lag
	m.CorrPeak = peakVal
	m.CorrSigma = sigma

	if sigma > 0 {
		// rlap: peak correlation amplitude scaled to the off-peak noise
		// level, the Tonry & Davis "r" generalized to the FFT cross-power
		// peak rather than a time-domain correlation coefficient.
		m.Rlap = peakVal / sigma
	}

	m.Lap = fractionalOverlap(c.g, c.inputLeft, c.inputRight, t.LeftEdge, t.RightEdge, lag)

	if c.cfg.UseCCC {
		m.CCC = cosineSimilarity(c.inputFlux, t.FlatFlux, c.inputLeft, c.inputRight, t.LeftEdge, t.RightEdge, lagIdx)
		m.RlapCCC = m.Rlap * math.Max(m.CCC, 0)
	} else {
		m.RlapCCC = m.Rlap
	}

	if m.Lap < c.cfg.LapMin || m.Rlap < c.cfg.RlapMin {
		m.Rejected = true
	}

	return m, nil
}

// crossCorrelate computes the FFT cross-power spectrum against the input
// and returns the real inverse FFT, following computeFFT's
// fft1[i]*conj(fft2[i]) construction.
func (c *Correlator) crossCorrelate(tmplFFT []complex128) []float64 {
	crossPower := make([]complex128, c.padTo)
	for i := range crossPower {
		crossPower[i] = c.inputFFT[i] * cmplx.Conj(tmplFFT[i])
	}
	return c.fft.ComputeInverseReal(crossPower)
}
