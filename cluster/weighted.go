package cluster

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// WeightedMeanStd computes the weighted mean and standard deviation of
// values, generalizing the teacher's reliance on gonum/stat for weighted
// statistics. Within this module it computes each cluster's consensus
// z/age; it is exported for other weighted summaries.
func WeightedMeanStd(values, weights []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean, variance := stat.MeanVariance(values, weights)
	if variance < 0 {
		variance = 0
	}
	return mean, math.Sqrt(variance)
}
