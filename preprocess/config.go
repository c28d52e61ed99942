package preprocess

// Config configures every stage of the preprocessor. Each stage is optional
// except log-rebinning and edge detection, which always run.
type Config struct {
	// Spike removal
	SpikeMasking         bool    `json:"spike_masking"`
	SpikeFloorZ          float64 `json:"spike_floor_z"`
	SpikeBaselineWindow  int     `json:"spike_baseline_window"`
	SpikeRelEdgeRatio    float64 `json:"spike_rel_edge_ratio"`
	SpikeMinSeparation   int     `json:"spike_min_separation"`

	// Wavelength masking
	ABandRemove     bool        `json:"aband_remove"`
	SkyClip         bool        `json:"sky_clip"`
	EmclipZ         float64     `json:"emclip_z"` // < 0 disables
	EmwidthA        float64     `json:"emwidth_a"`
	WavelengthMasks [][2]float64 `json:"wavelength_masks"`

	// Savitzky-Golay smoothing (0 window disables)
	SavgolWindow int `json:"savgol_window"`
	SavgolOrder  int `json:"savgol_order"`

	// Apodization
	ApodizePercent float64 `json:"apodize_percent"`
}

// DefaultConfig returns the spec's documented defaults.
func DefaultConfig() Config {
	return Config{
		SpikeMasking:        false,
		SpikeFloorZ:         50,
		SpikeBaselineWindow: 501,
		SpikeRelEdgeRatio:   1.3,
		SpikeMinSeparation:  5,

		ABandRemove: false,
		SkyClip:     false,
		EmclipZ:     -1,
		EmwidthA:    40,

		SavgolWindow: 0,
		SavgolOrder:  3,

		ApodizePercent: 10,
	}
}

// ConfigForQuality returns a preprocessing config tuned for noisier input
// ("low") or a clean, well-reduced spectrum ("high"), following the
// teacher's content-aware config presets in fingerprint/config.
func ConfigForQuality(level string) Config {
	cfg := DefaultConfig()

	switch level {
	case "low":
		cfg.SpikeMasking = true
		cfg.SpikeFloorZ = 15
		cfg.SavgolWindow = 11
		cfg.SavgolOrder = 3
	case "high":
		// defaults already assume a clean reduction
	default:
		// unrecognized level: defaults
	}

	return cfg
}
