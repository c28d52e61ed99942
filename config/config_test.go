package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigBuildsGrid(t *testing.T) {
	cfg := DefaultConfig()
	g := cfg.Grid.Grid()

	assert.Equal(t, 1024, g.N)
	assert.InDelta(t, 2500, g.Wave(0), 1e-6)
	assert.InDelta(t, 10000, g.Wave(g.N), 50)
}

func TestConfigForQualityTightensHigh(t *testing.T) {
	low := ConfigForQuality("low")
	high := ConfigForQuality("high")

	assert.Less(t, low.Scoring.RlapMin, high.Scoring.RlapMin)
	assert.Less(t, low.Cluster.RlapCCCThreshold, high.Cluster.RlapCCCThreshold)
}
