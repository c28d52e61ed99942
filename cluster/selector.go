package cluster

import (
	"math"
	"sort"

	"github.com/astrosnid/snid/correlate"
)

// Select partitions accepted matches by type, fits a per-type GMM in (z,
// log(rlap_ccc)) space, scores the resulting clusters, and returns the
// winning one plus the fractions it implies. A nil Winner with a non-nil,
// non-error Result is the documented no-winner case.
func Select(matches []correlate.Match, cfg Config) *Result {
	accepted := make([]correlate.Match, 0, len(matches))
	for _, m := range matches {
		if !m.Rejected {
			accepted = append(accepted, m)
		}
	}

	byType := make(map[string][]correlate.Match)
	for _, m := range accepted {
		byType[m.Type] = append(byType[m.Type], m)
	}

	var candidates []*Cluster
	for typeName, members := range byType {
		if len(members) < cfg.MinClusterSize {
			continue
		}
		candidates = append(candidates, clusterType(typeName, members, cfg)...)
	}

	var eligible []*Cluster
	for _, c := range candidates {
		if c.Score >= cfg.RlapCCCThreshold {
			eligible = append(eligible, c)
		}
	}

	winner := pickWinner(eligible)

	result := &Result{BestType: TypeUnknown}
	if winner == nil {
		return result
	}

	result.BestType = winner.Type
	result.Winner = winner
	result.TypeFractions = fractions(typesOf(winner.Members))
	result.SubtypeFractions = fractions(subtypesOf(winner.Members))
	return result
}

// clusterType fits a BIC-selected GMM over one type's matches and turns
// each fitted component into a candidate Cluster.
func clusterType(typeName string, members []correlate.Match, cfg Config) []*Cluster {
	n := len(members)
	data := make([][2]float64, n)
	weights := make([]float64, n)
	for i, m := range members {
		logRlapCCC := math.Log(math.Max(m.RlapCCC, 1e-6))
		data[i] = [2]float64{m.ZBest, logRlapCCC}
		weights[i] = math.Max(m.RlapCCC, 1e-6)
	}

	kMax := cfg.KMax
	fit := FitWithBIC(data, weights, kMax)

	clusters := make([]*Cluster, fit.K)
	for k := 0; k < fit.K; k++ {
		clusters[k] = &Cluster{Type: typeName}
	}
	for i, label := range fit.Labels {
		clusters[label].Members = append(clusters[label].Members, members[i])
	}

	out := make([]*Cluster, 0, fit.K)
	for _, c := range clusters {
		if len(c.Members) == 0 {
			continue
		}
		finishCluster(c, cfg)
		out = append(out, c)
	}
	return out
}

// finishCluster fills in the score/tightness/quality and consensus fields
// of a cluster from its raw member list.
func finishCluster(c *Cluster, cfg Config) {
	n := len(c.Members)
	z := make([]float64, n)
	age := make([]float64, n)
	w := make([]float64, n)
	score := 0.0
	for i, m := range c.Members {
		z[i] = m.ZBest
		age[i] = m.AgeDays
		w[i] = m.RlapCCC
		score += m.RlapCCC
	}

	c.ZMean, c.ZSigma = WeightedMeanStd(z, w)
	c.AgeMean, c.AgeSigma = WeightedMeanStd(age, w)
	c.BestSubtype = bestSubtype(c.Members)
	c.Score = score
	c.Tightness = 1.0 / (1.0 + c.ZSigma*cfg.AlphaZ + c.AgeSigma*cfg.AlphaAge)
	c.QualityScore = c.Score * c.Tightness
}

// bestSubtype returns the subtype with the largest rlap_ccc sum within
// members, breaking ties by member count then lexicographic name.
func bestSubtype(members []correlate.Match) string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range members {
		sums[m.Subtype] += m.RlapCCC
		counts[m.Subtype]++
	}

	var names []string
	for name := range sums {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if sums[names[i]] != sums[names[j]] {
			return sums[names[i]] > sums[names[j]]
		}
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// pickWinner selects the eligible cluster with the highest quality score,
// tie-broken by larger member count then lexicographic type name.
func pickWinner(eligible []*Cluster) *Cluster {
	if len(eligible) == 0 {
		return nil
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].QualityScore != eligible[j].QualityScore {
			return eligible[i].QualityScore > eligible[j].QualityScore
		}
		if len(eligible[i].Members) != len(eligible[j].Members) {
			return len(eligible[i].Members) > len(eligible[j].Members)
		}
		return eligible[i].Type < eligible[j].Type
	})
	return eligible[0]
}

func typesOf(members []correlate.Match) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Type
	}
	return out
}

func subtypesOf(members []correlate.Match) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Subtype
	}
	return out
}

// fractions computes the member-count fraction of each distinct label.
func fractions(labels []string) map[string]float64 {
	out := make(map[string]float64)
	if len(labels) == 0 {
		return out
	}
	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}
	n := float64(len(labels))
	for l, c := range counts {
		out[l] = float64(c) / n
	}
	return out
}
