package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astrosnid/snid/classify"
	"github.com/astrosnid/snid/config"
	"github.com/astrosnid/snid/internal/xerrors"
	"github.com/astrosnid/snid/internal/xlog"
	"github.com/astrosnid/snid/spectrum"
	"github.com/astrosnid/snid/templates"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sage <spectrum>",
		Short:         "Classify a spectrum against a template library",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runAnalyze,
	}

	flags := cmd.Flags()
	flags.String("template-dir", "", "base template library directory (required)")
	flags.String("user-template-dir", "", "user override template library directory")
	flags.String("output-dir", "", "directory to write report/flux dumps into (default: stdout)")
	flags.Float64("forced-redshift", 0, "force the correlation redshift instead of searching")
	flags.Float64("zmin", -0.01, "minimum redshift to search")
	flags.Float64("zmax", 1.0, "maximum redshift to search")
	flags.Float64("rlapmin", 4.0, "minimum rlap for a match to be accepted")
	flags.Float64("lapmin", 0.3, "minimum fractional overlap for a match to be accepted")
	flags.StringSlice("type-filter", nil, "restrict to these template types")
	flags.Float64("age-min", 0, "minimum template age in days")
	flags.Float64("age-max", 0, "maximum template age in days")
	flags.Int("savgol-window", 0, "Savitzky-Golay smoothing window (0 disables)")
	flags.Int("savgol-order", 3, "Savitzky-Golay polynomial order")
	flags.Bool("aband-remove", false, "mask the telluric A-band")
	flags.Bool("skyclip", false, "mask common night-sky emission lines")
	flags.StringSlice("wavelength-masks", nil, "WMIN:WMAX wavelength windows to mask")
	flags.Float64("apodize-percent", 10, "percent of the active region tapered at each edge")
	flags.Bool("complete", false, "also write flux and flattened dumps (only with --output-dir)")
	flags.Bool("minimal", false, "print only the one-line classification digest")
	flags.Bool("quiet", false, "suppress info-level logging")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	if quiet, _ := flags.GetBool("quiet"); quiet {
		xlog.SetLevel(xlog.WarnLevel)
	}

	templateDir, _ := flags.GetString("template-dir")
	if templateDir == "" {
		return xerrors.New(xerrors.BadInput, "sage", fmt.Errorf("--template-dir is required"))
	}
	userTemplateDir, _ := flags.GetString("user-template-dir")

	cfg := config.DefaultConfig()
	cfg.Library.BaseDir = templateDir
	cfg.Library.UserDir = userTemplateDir

	if v, _ := flags.GetFloat64("zmin"); flags.Changed("zmin") {
		cfg.Scoring.ZMin = v
	}
	if v, _ := flags.GetFloat64("zmax"); flags.Changed("zmax") {
		cfg.Scoring.ZMax = v
	}
	if v, _ := flags.GetFloat64("rlapmin"); flags.Changed("rlapmin") {
		cfg.Scoring.RlapMin = v
	}
	if v, _ := flags.GetFloat64("lapmin"); flags.Changed("lapmin") {
		cfg.Scoring.LapMin = v
	}
	if v, _ := flags.GetStringSlice("type-filter"); len(v) > 0 {
		cfg.Scoring.TypeFilter = v
	}
	if flags.Changed("age-min") {
		v, _ := flags.GetFloat64("age-min")
		cfg.Scoring.AgeMin = &v
	}
	if flags.Changed("age-max") {
		v, _ := flags.GetFloat64("age-max")
		cfg.Scoring.AgeMax = &v
	}
	if flags.Changed("forced-redshift") {
		v, _ := flags.GetFloat64("forced-redshift")
		cfg.Scoring.ForcedRedshift = &v
	}
	if v, _ := flags.GetInt("savgol-window"); flags.Changed("savgol-window") {
		cfg.Preprocess.SavgolWindow = v
	}
	if v, _ := flags.GetInt("savgol-order"); flags.Changed("savgol-order") {
		cfg.Preprocess.SavgolOrder = v
	}
	if v, _ := flags.GetBool("aband-remove"); v {
		cfg.Preprocess.ABandRemove = true
	}
	if v, _ := flags.GetBool("skyclip"); v {
		cfg.Preprocess.SkyClip = true
	}
	if v, _ := flags.GetFloat64("apodize-percent"); flags.Changed("apodize-percent") {
		cfg.Preprocess.ApodizePercent = v
	}
	masks, _ := flags.GetStringSlice("wavelength-masks")
	wavelengthMasks, err := parseWavelengthMasks(masks)
	if err != nil {
		return xerrors.New(xerrors.BadInput, "sage", err)
	}
	cfg.Preprocess.WavelengthMasks = wavelengthMasks

	outputDir, _ := flags.GetString("output-dir")
	complete, _ := flags.GetBool("complete")
	minimal, _ := flags.GetBool("minimal")

	raw, err := spectrum.Load(args[0])
	if err != nil {
		return err
	}

	g := cfg.Grid.Grid()
	library, err := (templates.Loader{PadTo: cfg.Library.PadTo}).Load(cfg.Library.BaseDir, cfg.Library.UserDir, g)
	if err != nil {
		return err
	}

	result, err := classify.Analyze(context.Background(), raw, library, g, cfg.Preprocess, cfg.Scoring, cfg.Cluster, nil)
	if err != nil {
		return err
	}

	return writeOutput(cmd, result, outputDir, complete, minimal)
}

func writeOutput(cmd *cobra.Command, result *classify.AnalysisResult, outputDir string, complete, minimal bool) error {
	out := cmd.OutOrStdout()

	if minimal {
		fmt.Fprintln(out, classify.FormatOneLine(result))
		return nil
	}

	if outputDir == "" {
		return classify.WriteReport(out, result)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	reportFile, err := os.Create(filepath.Join(outputDir, "report.txt"))
	if err != nil {
		return err
	}
	defer reportFile.Close()
	if err := classify.WriteReport(reportFile, result); err != nil {
		return err
	}

	if !complete || result.Processed == nil {
		return nil
	}

	fluxFile, err := os.Create(filepath.Join(outputDir, "flux.txt"))
	if err != nil {
		return err
	}
	defer fluxFile.Close()
	if err := classify.WriteFluxDump(fluxFile, result.Processed.LogWave, result.Processed.LogFlux); err != nil {
		return err
	}

	flatFile, err := os.Create(filepath.Join(outputDir, "flattened.txt"))
	if err != nil {
		return err
	}
	defer flatFile.Close()
	return classify.WriteFlattenedDump(flatFile, result.Processed.LogWave, result.Processed.TaperedFlux)
}

// parseWavelengthMasks parses "WMIN:WMAX" pairs into [][2]float64.
func parseWavelengthMasks(specs []string) ([][2]float64, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([][2]float64, 0, len(specs))
	for _, s := range specs {
		parts := strings.SplitN(s, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid wavelength mask %q, want WMIN:WMAX", s)
		}
		wmin, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid wavelength mask %q: %w", s, err)
		}
		wmax, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid wavelength mask %q: %w", s, err)
		}
		out = append(out, [2]float64{wmin, wmax})
	}
	return out, nil
}
