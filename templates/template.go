// Package templates provides the read-only, process-wide library of
// reference spectra that an input is scored against.
package templates

import "github.com/astrosnid/snid/grid"

// Template is one immutable reference spectrum, pre-flattened and
// pre-apodized onto the shared grid at library build time, with its FFT
// precomputed for the correlator.
type Template struct {
	Name      string
	Type      string
	Subtype   string
	AgeDays   float64
	Quality   float64
	FlatFlux  []float64 // length N, on the shared grid
	LeftEdge  int
	RightEdge int
	Norm      float64 // L2 norm over [LeftEdge, RightEdge]
	FFT       []complex128
}

// precompute fills in Norm and FFT from FlatFlux, the one-time cost paid at
// library load so the scoring engine never recomputes it per analysis.
func (t *Template) precompute(f *grid.FFT, padTo int) {
	t.Norm = grid.Norm2(t.FlatFlux, t.LeftEdge, t.RightEdge+1)
	t.FFT = f.ComputePadded(t.FlatFlux, padTo)
}
