package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaperWeightsMonotonic(t *testing.T) {
	n, left, right := 200, 20, 179
	w := TaperWeights(n, left, right, 10)

	require.Len(t, w, n)

	for i := left; i < left+10; i++ {
		if i+1 < right {
			assert.LessOrEqual(t, w[i], w[i+1]+1e-12, "weights must rise through the left taper")
		}
	}
	for i := right; i > right-10; i-- {
		if i-1 > left {
			assert.LessOrEqual(t, w[i], w[i-1]+1e-12, "weights must rise through the right taper (moving inward)")
		}
	}

	// 10% of the 160-point active region is a 16-point taper on each side.
	for i := left + 16; i <= right-16; i++ {
		assert.InDelta(t, 1.0, w[i], 1e-12, "interior of the active region is untouched")
	}

	assert.InDelta(t, 0.0, w[0], 1e-12, "outside the active region stays zero")
	assert.InDelta(t, 0.0, w[n-1], 1e-12, "outside the active region stays zero")
}

func TestTaperAppliesWeights(t *testing.T) {
	flux := make([]float64, 100)
	for i := range flux {
		flux[i] = 1.0
	}

	out := Taper(flux, 10, 89, 20)
	w := TaperWeights(100, 10, 89, 20)

	for i := range flux {
		assert.InDelta(t, flux[i]*w[i], out[i], 1e-12)
	}
}

func TestTaperNoOpWhenPercentZero(t *testing.T) {
	flux := []float64{1, 2, 3, 4, 5}
	out := Taper(flux, 0, 4, 0)
	assert.Equal(t, flux, out)
}
