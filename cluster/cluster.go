// Package cluster partitions the ranked matches from scoring by template
// type, fits a Gaussian Mixture Model per type in (z, log(rlap_ccc)) space,
// and selects the winning cluster that defines the final classification.
package cluster

import "github.com/astrosnid/snid/correlate"

// TypeUnknown is the reserved best_type value when no cluster is eligible.
const TypeUnknown = "unknown"

// Cluster is one group of mutually consistent matches of a single type.
type Cluster struct {
	Type         string
	Members      []correlate.Match
	ZMean        float64
	ZSigma       float64
	AgeMean      float64
	AgeSigma     float64
	BestSubtype  string
	Score        float64
	Tightness    float64
	QualityScore float64
}

// Result is the outcome of Select: a winning cluster (nil when no cluster
// is eligible, which is not an error) plus per-type/subtype fractions
// computed over its members.
type Result struct {
	BestType         string
	Winner           *Cluster
	TypeFractions    map[string]float64
	SubtypeFractions map[string]float64
}
