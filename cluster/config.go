package cluster

// Config tunes the per-type clustering and winner selection of Select.
type Config struct {
	RlapCCCThreshold float64
	KMax             int
	MinClusterSize   int
	AlphaZ           float64
	AlphaAge         float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		RlapCCCThreshold: 1.8,
		KMax:             5,
		MinClusterSize:   3,
		AlphaZ:           1.0,
		AlphaAge:         1.0,
	}
}
