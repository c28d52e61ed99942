package cluster

import (
	"math"
	"math/rand"
)

// GMMResult is one fitted Gaussian Mixture Model over the 2-D (z,
// log(rlap_ccc)) feature space, diagonal covariance per component.
type GMMResult struct {
	K                int
	Means            [][2]float64
	Variances        [][2]float64
	MixingCoeffs     []float64
	Responsibilities [][]float64
	Labels           []int
	LogLikelihood    float64
	BIC              float64
	Converged        bool
	Iterations       int
}

const (
	gmmMaxIterations = 100
	gmmTolerance     = 1e-4
	gmmRegularizer   = 1e-6
)

// fitGMM runs the EM algorithm for a fixed component count k, generalizing
// the teacher's gaussianMixture loop to two dimensions with a per-sample
// weight (rlap_ccc) folded into the log-likelihood and the M-step (the
// E-step responsibilities themselves are unweighted).
func fitGMM(data [][2]float64, weights []float64, k int, rng *rand.Rand) *GMMResult {
	n := len(data)

	means := initializeMeans(data, k, rng)
	variances := make([][2]float64, k)
	for j := range variances {
		variances[j] = [2]float64{1.0, 1.0}
	}
	mixingCoeffs := make([]float64, k)
	for j := range mixingCoeffs {
		mixingCoeffs[j] = 1.0 / float64(k)
	}

	responsibilities := make([][]float64, n)
	for i := range responsibilities {
		responsibilities[i] = make([]float64, k)
	}

	prevLogLikelihood := math.Inf(-1)
	logLikelihood := 0.0
	iterations := 0
	converged := false

	for ; iterations < gmmMaxIterations; iterations++ {
		logLikelihood = 0.0
		for i := range n {
			sum := 0.0
			for j := 0; j < k; j++ {
				responsibilities[i][j] = mixingCoeffs[j] * gaussianPDF2(data[i], means[j], variances[j])
				sum += responsibilities[i][j]
			}
			if sum > 0 {
				for j := 0; j < k; j++ {
					responsibilities[i][j] /= sum
				}
				logLikelihood += weights[i] * math.Log(sum)
			}
		}

		if math.Abs(logLikelihood-prevLogLikelihood) < gmmTolerance {
			converged = true
			iterations++
			break
		}
		prevLogLikelihood = logLikelihood

		for j := 0; j < k; j++ {
			nj := 0.0
			for i := range n {
				nj += weights[i] * responsibilities[i][j]
			}
			if nj <= 0 {
				continue
			}

			var mean [2]float64
			for i := range n {
				w := weights[i] * responsibilities[i][j]
				mean[0] += w * data[i][0]
				mean[1] += w * data[i][1]
			}
			mean[0] /= nj
			mean[1] /= nj
			means[j] = mean

			var variance [2]float64
			for i := range n {
				w := weights[i] * responsibilities[i][j]
				d0 := data[i][0] - mean[0]
				d1 := data[i][1] - mean[1]
				variance[0] += w * d0 * d0
				variance[1] += w * d1 * d1
			}
			variance[0] = variance[0]/nj + gmmRegularizer
			variance[1] = variance[1]/nj + gmmRegularizer
			variances[j] = variance

			mixingCoeffs[j] = nj / totalWeight(weights)
		}
	}

	labels := make([]int, n)
	for i := range n {
		best := 0
		bestResp := -1.0
		for j := 0; j < k; j++ {
			if responsibilities[i][j] > bestResp {
				bestResp = responsibilities[i][j]
				best = j
			}
		}
		labels[i] = best
	}

	freeParams := k*(2+2+1) - 1
	bic := -2*logLikelihood + float64(freeParams)*math.Log(float64(n))

	return &GMMResult{
		K:                k,
		Means:            means,
		Variances:        variances,
		MixingCoeffs:     mixingCoeffs,
		Responsibilities: responsibilities,
		Labels:           labels,
		LogLikelihood:    logLikelihood,
		BIC:              bic,
		Converged:        converged,
		Iterations:       iterations,
	}
}

// FitWithBIC fits k = 1..kMax components and returns the model with the
// lowest BIC, the standard penalized-likelihood criterion for picking
// component count without overfitting.
func FitWithBIC(data [][2]float64, weights []float64, kMax int) *GMMResult {
	if kMax > len(data) {
		kMax = len(data)
	}
	if kMax < 1 {
		kMax = 1
	}

	rng := rand.New(rand.NewSource(42))

	var best *GMMResult
	for k := 1; k <= kMax; k++ {
		result := fitGMM(data, weights, k, rng)
		if best == nil || result.BIC < best.BIC {
			best = result
		}
	}
	return best
}

func gaussianPDF2(x, mean, variance [2]float64) float64 {
	d0 := x[0] - mean[0]
	d1 := x[1] - mean[1]

	det := variance[0] * variance[1]
	if det <= 0 {
		return 0
	}

	quadratic := 0.0
	if variance[0] > 0 {
		quadratic += d0 * d0 / variance[0]
	}
	if variance[1] > 0 {
		quadratic += d1 * d1 / variance[1]
	}

	normalization := 1.0 / math.Sqrt(4*math.Pi*math.Pi*det)
	return normalization * math.Exp(-0.5*quadratic)
}

func initializeMeans(data [][2]float64, k int, rng *rand.Rand) [][2]float64 {
	n := len(data)
	means := make([][2]float64, k)
	means[0] = data[rng.Intn(n)]

	for i := 1; i < k; i++ {
		distances := make([]float64, n)
		total := 0.0
		for j, p := range data {
			minDist := math.Inf(1)
			for l := 0; l < i; l++ {
				dist := sqDist(p, means[l])
				if dist < minDist {
					minDist = dist
				}
			}
			distances[j] = minDist
			total += minDist
		}

		if total <= 0 {
			means[i] = data[rng.Intn(n)]
			continue
		}

		target := rng.Float64() * total
		cum := 0.0
		chosen := n - 1
		for j, d := range distances {
			cum += d
			if cum >= target {
				chosen = j
				break
			}
		}
		means[i] = data[chosen]
	}

	return means
}

func sqDist(a, b [2]float64) float64 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	return d0*d0 + d1*d1
}

func totalWeight(weights []float64) float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	return sum
}
