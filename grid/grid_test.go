package grid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedshiftLagRoundTrip(t *testing.T) {
	g := New(1024, 3000, 1e-3)

	for _, z := range []float64{0, 0.01, 0.1, 0.5, 1.2} {
		k := g.LagForRedshift(z)
		got := g.RedshiftForLag(k)
		assert.InDelta(t, z, got, 1e-9)
	}
}

func TestWaveLogWaveRoundTrip(t *testing.T) {
	g := New(256, 4000, 2e-3)

	for i := 0; i < g.N; i += 32 {
		w := g.Wave(i)
		assert.InDelta(t, g.LogWave(i), math.Log(w), 1e-9)
	}
}

func TestIndexOfWaveClamps(t *testing.T) {
	g := New(100, 4000, 1e-3)

	assert.Equal(t, 0, g.IndexOfWave(1))
	assert.Equal(t, g.N-1, g.IndexOfWave(1e9))
	assert.Equal(t, 0, g.IndexOfWave(g.Wave(0)))
}

func TestParabolicVertexSymmetric(t *testing.T) {
	// A symmetric peak should report zero offset.
	assert.InDelta(t, 0.0, ParabolicVertex(1, 2, 1), 1e-12)
}

func TestParabolicVertexSkewed(t *testing.T) {
	// Larger left shoulder pulls the vertex toward the left (negative offset).
	v := ParabolicVertex(1.5, 2, 1)
	assert.Less(t, v, 0.0)
}

func TestNorm2(t *testing.T) {
	x := []float64{3, 4, 0, 0}
	assert.InDelta(t, 5.0, Norm2(x, 0, 2), 1e-12)
	assert.InDelta(t, 0.0, Norm2(x, 2, 4), 1e-12)
}
