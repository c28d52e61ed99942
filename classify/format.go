package classify

import "fmt"

// FormatSummary renders a human-readable multi-line summary of result,
// supplementing the primary report with a denser prose form.
func FormatSummary(result *AnalysisResult) string {
	if result.BestType == "unknown" {
		return fmt.Sprintf("no classification: %d candidate matches, none formed an eligible cluster", len(result.FilteredMatches))
	}
	return fmt.Sprintf(
		"type=%s subtype=%s template=%s z=%.5f±%.5f age=%.1f±%.1fd rlap=%.2f (%d matches, %d in winning cluster)",
		result.BestType, result.BestSubtype, result.BestTemplateName,
		result.Z, result.ZErr, result.Age, result.AgeErr, result.RlapBest,
		len(result.FilteredMatches), memberCount(result),
	)
}

// FormatOneLine renders a compact single-line digest suitable for batch
// logging across many spectra.
func FormatOneLine(result *AnalysisResult) string {
	if result.BestType == "unknown" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%s z=%.5f rlap=%.2f", result.BestType, result.BestSubtype, result.Z, result.RlapBest)
}

func memberCount(result *AnalysisResult) int {
	if result.WinningCluster == nil {
		return 0
	}
	return len(result.WinningCluster.Members)
}
