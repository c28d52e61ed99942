// Package classify is the single entry point of the analysis core: it
// orchestrates preprocessing, scoring, and clustering into one
// AnalysisResult, owning no algorithmic logic of its own beyond packing.
package classify

import (
	"context"
	"time"

	"github.com/astrosnid/snid/cluster"
	"github.com/astrosnid/snid/correlate"
	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/internal/xlog"
	"github.com/astrosnid/snid/preprocess"
	"github.com/astrosnid/snid/scoring"
	"github.com/astrosnid/snid/spectrum"
	"github.com/astrosnid/snid/templates"
)

// TopMatchCount is the default number of top accepted matches packed into
// AnalysisResult.TopMatches.
const TopMatchCount = 10

// AnalysisResult is the final, packed outcome of one Analyze call.
type AnalysisResult struct {
	Success bool

	BestType          string
	BestSubtype       string
	BestTemplateName  string
	Z, ZErr           float64
	Age, AgeErr       float64
	RlapBest          float64

	TopMatches      []correlate.Match
	FilteredMatches []correlate.Match

	WinningCluster   *cluster.Cluster
	TypeFractions    map[string]float64
	SubtypeFractions map[string]float64

	// Processed is the preprocessed input on the shared grid, kept so a
	// caller (e.g. cmd/sage) can write flux/flattened dumps without
	// re-running preprocessing.
	Processed *preprocess.Processed

	Trace *Trace
}

// Analyze runs one spectrum through preprocessing, scoring, and clustering
// and assembles the result. It is a thin orchestrator in the spirit of the
// teacher's FingerprintGenerator.GenerateFingerprint: it owns no algorithm
// of its own, only sequencing, logging, and packing.
func Analyze(
	ctx context.Context,
	input *spectrum.Spectrum,
	library *templates.Library,
	g grid.Grid,
	preprocCfg preprocess.Config,
	scoringCfg scoring.Config,
	clusteringCfg cluster.Config,
	progress chan<- scoring.Progress,
) (*AnalysisResult, error) {
	logger := xlog.WithContext(ctx).WithFields(xlog.Fields{"component": "classify"})
	trace := &Trace{}

	start := time.Now()
	processed, preprocTrace, err := preprocess.Process(input, preprocCfg, g)
	trace.record("preprocess", start, xlog.Fields{"steps": len(preprocTrace.Steps)})
	trace.Preprocess = preprocTrace
	if err != nil {
		logger.Error(err, "preprocessing failed")
		return nil, err
	}

	start = time.Now()
	matches, err := scoring.Score(ctx, g, processed, library, scoringCfg, progress)
	trace.record("scoring", start, xlog.Fields{"matches": len(matches)})
	if err != nil {
		logger.Error(err, "scoring failed")
		return nil, err
	}

	start = time.Now()
	clusterResult := cluster.Select(matches, clusteringCfg)
	trace.record("cluster", start, xlog.Fields{"best_type": clusterResult.BestType})

	result := &AnalysisResult{
		Success:          true,
		BestType:         clusterResult.BestType,
		TypeFractions:    clusterResult.TypeFractions,
		SubtypeFractions: clusterResult.SubtypeFractions,
		WinningCluster:   clusterResult.Winner,
		FilteredMatches:  matches,
		TopMatches:       topMatches(matches, TopMatchCount),
		Processed:        processed,
		Trace:            trace,
	}

	if clusterResult.Winner != nil {
		result.BestSubtype = clusterResult.Winner.BestSubtype
		result.Z = clusterResult.Winner.ZMean
		result.ZErr = clusterResult.Winner.ZSigma
		result.Age = clusterResult.Winner.AgeMean
		result.AgeErr = clusterResult.Winner.AgeSigma
	}

	if len(result.TopMatches) > 0 {
		best := result.TopMatches[0]
		result.BestTemplateName = best.TemplateName
		result.RlapBest = best.Rlap
	}

	return result, nil
}

// topMatches returns up to n non-rejected matches, preserving the input's
// (already RlapCCC-descending) order.
func topMatches(matches []correlate.Match, n int) []correlate.Match {
	out := make([]correlate.Match, 0, n)
	for _, m := range matches {
		if m.Rejected {
			continue
		}
		out = append(out, m)
		if len(out) == n {
			break
		}
	}
	return out
}
