// Package correlate cross-correlates one preprocessed input spectrum
// against template spectra via FFT, extracting a best redshift and the
// RLAP/LAP/CCC quality metrics.
package correlate

// Match is the per-template result of one correlation.
type Match struct {
	TemplateName string
	Type         string
	Subtype      string
	AgeDays      float64

	ZBest     float64
	ZErr      float64
	LagPixels float64

	Rlap     float64
	Lap      float64
	CCC      float64
	RlapCCC  float64
	CorrPeak float64
	CorrSigma float64

	Rejected bool
}
