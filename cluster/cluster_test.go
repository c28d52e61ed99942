package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrosnid/snid/correlate"
)

func mkMatch(tpl, typ, subtype string, z, age, rlapCCC float64) correlate.Match {
	return correlate.Match{
		TemplateName: tpl,
		Type:         typ,
		Subtype:      subtype,
		AgeDays:      age,
		ZBest:        z,
		RlapCCC:      rlapCCC,
	}
}

func TestSelectPicksTightConsistentCluster(t *testing.T) {
	matches := []correlate.Match{
		mkMatch("ia-1", "Ia", "normal", 0.050, 10, 8.0),
		mkMatch("ia-2", "Ia", "normal", 0.051, 12, 7.5),
		mkMatch("ia-3", "Ia", "91bg", 0.049, 9, 6.0),
		mkMatch("ii-1", "II", "P", 0.300, 40, 3.0),
		mkMatch("ii-2", "II", "P", 0.310, 42, 2.5),
		mkMatch("ii-3", "II", "L", 0.295, 38, 2.0),
	}

	cfg := DefaultConfig()
	result := Select(matches, cfg)

	require.NotNil(t, result.Winner)
	assert.Equal(t, "Ia", result.BestType)
	assert.InDelta(t, 0.05, result.Winner.ZMean, 0.01)
	assert.Equal(t, "normal", result.Winner.BestSubtype)
	assert.Equal(t, 1.0, result.TypeFractions["Ia"])
}

func TestSelectNoWinnerBelowThreshold(t *testing.T) {
	matches := []correlate.Match{
		mkMatch("ia-1", "Ia", "normal", 0.05, 10, 0.2),
		mkMatch("ia-2", "Ia", "normal", 0.05, 10, 0.3),
		mkMatch("ia-3", "Ia", "normal", 0.05, 10, 0.1),
	}

	cfg := DefaultConfig()
	result := Select(matches, cfg)

	assert.Nil(t, result.Winner)
	assert.Equal(t, TypeUnknown, result.BestType)
}

func TestSelectIgnoresRejectedMatches(t *testing.T) {
	matches := []correlate.Match{
		mkMatch("ia-1", "Ia", "normal", 0.05, 10, 8.0),
		mkMatch("ia-2", "Ia", "normal", 0.05, 10, 7.5),
		{TemplateName: "ia-bad", Type: "Ia", Subtype: "normal", ZBest: 0.9, RlapCCC: 100, Rejected: true},
	}

	cfg := DefaultConfig()
	cfg.MinClusterSize = 2
	result := Select(matches, cfg)

	require.NotNil(t, result.Winner)
	assert.Len(t, result.Winner.Members, 2)
}

func TestWeightedMeanStd(t *testing.T) {
	mean, std := WeightedMeanStd([]float64{1, 2, 3}, []float64{1, 1, 1})
	assert.InDelta(t, 2.0, mean, 1e-9)
	assert.Greater(t, std, 0.0)
}

func TestFitWithBICSelectsReasonableK(t *testing.T) {
	data := [][2]float64{
		{0.05, 1.0}, {0.051, 1.05}, {0.049, 0.95},
		{0.30, 0.5}, {0.31, 0.45}, {0.295, 0.55},
	}
	weights := []float64{1, 1, 1, 1, 1, 1}

	result := FitWithBIC(data, weights, 5)
	require.NotNil(t, result)
	assert.GreaterOrEqual(t, result.K, 1)
	assert.LessOrEqual(t, result.K, 5)
}
