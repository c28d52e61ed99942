package classify

import (
	"bufio"
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport renders the primary text record: classification summary plus
// top-K matches, aligned with text/tabwriter.
func WriteReport(w io.Writer, result *AnalysisResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "best_type\t%s\n", result.BestType)
	fmt.Fprintf(tw, "best_subtype\t%s\n", result.BestSubtype)
	fmt.Fprintf(tw, "best_template\t%s\n", result.BestTemplateName)
	fmt.Fprintf(tw, "z\t%.6f\n", result.Z)
	fmt.Fprintf(tw, "z_err\t%.6f\n", result.ZErr)
	fmt.Fprintf(tw, "age\t%.2f\n", result.Age)
	fmt.Fprintf(tw, "age_err\t%.2f\n", result.AgeErr)
	fmt.Fprintf(tw, "rlap_best\t%.3f\n", result.RlapBest)
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "rank\ttemplate\ttype\tsubtype\tz\trlap\tlap\trlap_ccc\n")
	for i, m := range result.TopMatches {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.5f\t%.3f\t%.3f\t%.3f\n",
			i+1, m.TemplateName, m.Type, m.Subtype, m.ZBest, m.Rlap, m.Lap, m.RlapCCC)
	}

	return tw.Flush()
}

// WriteFluxDump writes the two-column (wave, flux) text dump of the
// rebinned, un-flattened input spectrum on the shared grid.
func WriteFluxDump(w io.Writer, wave, flux []float64) error {
	return writeColumns(w, wave, flux)
}

// WriteFlattenedDump writes the two-column (wave, flux) text dump of the
// continuum-flattened, tapered input spectrum on the shared grid.
func WriteFlattenedDump(w io.Writer, wave, flux []float64) error {
	return writeColumns(w, wave, flux)
}

func writeColumns(w io.Writer, wave, flux []float64) error {
	bw := bufio.NewWriter(w)
	n := len(wave)
	if len(flux) < n {
		n = len(flux)
	}
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(bw, "%.6f %.8e\n", wave[i], flux[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
