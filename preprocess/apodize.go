package preprocess

import "github.com/astrosnid/snid/grid"

// apodize wraps grid.Taper, tapering only the active region's edges.
func apodize(flatFlux []float64, left, right int, percent float64) []float64 {
	return grid.Taper(flatFlux, left, right, percent)
}
