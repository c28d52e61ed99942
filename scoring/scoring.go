// Package scoring drives the correlator over an eligible template set in
// parallel, collecting per-template matches into a deterministic, ranked
// result.
package scoring

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/astrosnid/snid/correlate"
	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/internal/xerrors"
	"github.com/astrosnid/snid/internal/xlog"
	"github.com/astrosnid/snid/preprocess"
	"github.com/astrosnid/snid/templates"
)

// Score correlates input against every template in library that survives
// cfg's filters, in parallel, and returns the full match list (including
// rejected matches) sorted by (-RlapCCC, TemplateName).
//
// The worker pool generalizes the teacher's STFT.ComputeWithWindow: a
// buffered jobs channel, a sync.WaitGroup, and a CPU-scaled worker count.
// Unlike the teacher, which fully buffers one job per frame up front, the
// job channel here is sized to the worker count — at most one pending
// match per worker, the tighter backpressure this stage's contract
// requires (see DESIGN.md).
func Score(ctx context.Context, g grid.Grid, input *preprocess.Processed, library *templates.Library, cfg Config, progress chan<- Progress) ([]correlate.Match, error) {
	logger := xlog.WithContext(ctx).WithFields(xlog.Fields{"component": "scoring"})

	eligible := queryEligible(library, cfg)
	total := len(eligible)
	if total == 0 {
		return nil, xerrors.New(xerrors.NoEligibleTemplates, "scoring.Score", errNoEligibleTemplates())
	}

	corrCfg := correlate.Config{
		ZMin: cfg.ZMin, ZMax: cfg.ZMax,
		RlapMin: cfg.RlapMin, LapMin: cfg.LapMin,
		ForcedRedshift: cfg.ForcedRedshift,
		PeakWindowSize: cfg.PeakWindowSize,
		UseCCC:         cfg.UseCCC,
	}
	c := correlate.NewCorrelator(g, input, corrCfg)

	numWorkers := getOptimalWorkerCount(total)
	jobs := make(chan *templates.Template, numWorkers)
	results := make(chan correlate.Match, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				select {
				case <-ctx.Done():
					continue
				default:
				}
				m, err := c.Compute(t)
				if err != nil {
					logger.Warn("template scoring failed, skipping", xlog.Fields{"template": t.Name, "error": err.Error()})
					continue
				}
				results <- m
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, t := range eligible {
			select {
			case <-ctx.Done():
				return
			case jobs <- t:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	matches := make([]correlate.Match, 0, total)
	completed := 0
	for m := range results {
		matches = append(matches, m)
		completed++
		sendProgress(progress, Progress{Completed: completed, Total: total, Phase: "correlating"})
	}

	sortMatches(matches)

	if ctx.Err() != nil {
		return matches, xerrors.New(xerrors.Cancelled, "scoring.Score", ctx.Err())
	}

	return matches, nil
}

func queryEligible(library *templates.Library, cfg Config) []*templates.Template {
	filter := templates.Filter{
		TypeFilter:       cfg.TypeFilter,
		TemplateFilter:   cfg.TemplateFilter,
		ExcludeTemplates: cfg.ExcludeTemplates,
		AgeMin:           cfg.AgeMin,
		AgeMax:           cfg.AgeMax,
	}
	var out []*templates.Template
	for t := range library.Query(filter) {
		out = append(out, t)
	}
	return out
}

// sortMatches sorts by descending RlapCCC, ties broken by template name,
// giving a scheduling-order-independent final ranking.
func sortMatches(matches []correlate.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].RlapCCC != matches[j].RlapCCC {
			return matches[i].RlapCCC > matches[j].RlapCCC
		}
		return matches[i].TemplateName < matches[j].TemplateName
	})
}

// sendProgress is a non-blocking send: a reader that isn't keeping up never
// stalls a worker.
func sendProgress(progress chan<- Progress, p Progress) {
	if progress == nil {
		return
	}
	select {
	case progress <- p:
	default:
	}
}

// getOptimalWorkerCount scales the worker count to the template count and
// available CPUs, ported in spirit from the teacher's
// spectral.STFT.getOptimalWorkerCount.
func getOptimalWorkerCount(numTemplates int) int {
	numCPU := runtime.NumCPU()

	if numTemplates < 100 {
		w := numCPU / 2
		if w < 1 {
			w = 1
		}
		if w > numTemplates {
			w = numTemplates
		}
		return w
	}
	if numTemplates < 1000 {
		if numCPU > 8 {
			return 8
		}
		return numCPU
	}
	return numCPU
}
