package correlate

// Config configures one analysis's correlator: the redshift search window,
// rejection thresholds, and whether to fold cosine similarity into the
// combined quality metric.
type Config struct {
	ZMin, ZMax       float64
	RlapMin          float64
	LapMin           float64
	ForcedRedshift   *float64
	PeakWindowSize   int
	UseCCC           bool
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		ZMin:           -0.01,
		ZMax:           1.0,
		RlapMin:        4.0,
		LapMin:         0.3,
		PeakWindowSize: 10,
		UseCCC:         true,
	}
}
