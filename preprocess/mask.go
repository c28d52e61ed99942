package preprocess

// tellericABand is the fixed telluric A-band absorption window, in
// Angstrom, zeroed when Config.ABandRemove is set.
var tellericABand = [2]float64{7575, 7675}

// skyLines is a small built-in table of common night-sky emission line
// wavelengths (Angstrom) clipped when Config.SkyClip is set. Encoded as a
// package-level default, following the teacher's habit of naming domain
// constants (e.g. DefaultDecoderConfig's LUFS targets) rather than inlining
// magic numbers.
var skyLines = []float64{5577.3, 6300.3, 6363.8}

const skyLineHalfWidthA = 5.0

// applyMasks zeroes flux samples inside any user-supplied wavelength
// window, the telluric A-band (if enabled), sky emission lines (if
// enabled), and narrow emission lines at the given redshift (if enabled).
func applyMasks(wave, flux []float64, cfg Config) []float64 {
	out := make([]float64, len(flux))
	copy(out, flux)

	for _, m := range cfg.WavelengthMasks {
		zeroWindow(wave, out, m[0], m[1])
	}

	if cfg.ABandRemove {
		zeroWindow(wave, out, tellericABand[0], tellericABand[1])
	}

	if cfg.SkyClip {
		for _, line := range skyLines {
			zeroWindow(wave, out, line-skyLineHalfWidthA, line+skyLineHalfWidthA)
		}
	}

	if cfg.EmclipZ >= 0 {
		// A single representative strong emission line (H-alpha) redshifted
		// by EmclipZ, clipped to +/- EmwidthA.
		const restHAlpha = 6562.8
		center := restHAlpha * (1 + cfg.EmclipZ)
		zeroWindow(wave, out, center-cfg.EmwidthA, center+cfg.EmwidthA)
	}

	return out
}

func zeroWindow(wave, flux []float64, wmin, wmax float64) {
	if wmax < wmin {
		wmin, wmax = wmax, wmin
	}
	for i, w := range wave {
		if w >= wmin && w <= wmax {
			flux[i] = 0
		}
	}
}
