package scoring

// Config restricts which templates are eligible for scoring and tunes the
// worker pool. The redshift/threshold fields are forwarded into
// correlate.Config for each template.
type Config struct {
	ZMin, ZMax       float64
	RlapMin, LapMin  float64
	AgeMin, AgeMax   *float64
	TypeFilter       []string
	TemplateFilter   []string
	ExcludeTemplates []string
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
