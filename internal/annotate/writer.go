package annotate

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"skipctl/internal/config"
	"skipctl/internal/domain"
	"skipctl/internal/report"
)

const (
	// SkipTag causes the test runner to bypass the scenario below it.
	SkipTag = "@skip"
	// reasonMarker starts the reason comment of a canonical annotation.
	reasonMarker = "# SKIP REASON:"
	// ReasonPrefix is the reason marker plus its separating space.
	ReasonPrefix = reasonMarker + " "

	// maxReasonLength caps the reason text written into feature files.
	maxReasonLength = 100
	// lookbackWindow is how many preceding lines are checked for an
	// existing annotation before inserting a new one.
	lookbackWindow = 4
)

// Writer inserts skip annotations above failed scenario definitions
type Writer struct {
	config *config.Config
}

// NewWriter creates a new Writer
func NewWriter(cfg *config.Config) *Writer {
	return &Writer{config: cfg}
}

// Apply annotates every failure's scenario in its feature file and returns
// one detail per record. Failures within a file are processed in descending
// line order so an insertion never shifts the lines of a failure that has
// not been processed yet. A file is written back only if at least one
// annotation was inserted.
func (w *Writer) Apply(failures []domain.FailureRecord) []domain.SkipDetail {
	groups := report.GroupByURI(failures)

	uris := make([]string, 0, len(groups))
	for uri := range groups {
		uris = append(uris, uri)
	}
	sort.Strings(uris)

	var details []domain.SkipDetail
	for _, uri := range uris {
		details = append(details, w.applyToFile(uri, groups[uri])...)
	}
	return details
}

func (w *Writer) applyToFile(uri string, failures []domain.FailureRecord) []domain.SkipDetail {
	path := w.config.GetFeaturePath(uri)

	data, err := os.ReadFile(path)
	if err != nil {
		color.Yellow("Warning: File %s not found. Skipping.", uri)
		details := make([]domain.SkipDetail, 0, len(failures))
		for _, f := range failures {
			details = append(details, newDetail(f, domain.SkipDetail{Missing: true}))
		}
		return details
	}

	fmt.Printf("checking %s...\n", uri)
	lines := strings.Split(string(data), "\n")

	sorted := make([]domain.FailureRecord, len(failures))
	copy(sorted, failures)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Line > sorted[j].Line })

	var details []domain.SkipDetail
	modified := false
	for _, failure := range sorted {
		idx, found := LocateScenario(lines, failure.Name)
		if !found {
			color.Yellow("  Could not locate scenario '%s' in %s. It might have been skipped or moved.", failure.Name, uri)
			details = append(details, newDetail(failure, domain.SkipDetail{Missing: true}))
			continue
		}

		if AlreadySkipped(lines, idx) {
			fmt.Printf("  '%s' is already skipped.\n", failure.Name)
			details = append(details, newDetail(failure, domain.SkipDetail{Skipped: true}))
			continue
		}

		fmt.Printf("  Skipping '%s' at line %d\n", failure.Name, idx+1)
		indent := indentOf(lines[idx])
		annotation := []string{
			indent + ReasonPrefix + FormatReason(failure.Error),
			indent + SkipTag,
		}
		lines = append(lines[:idx], append(annotation, lines[idx:]...)...)
		details = append(details, newDetail(failure, domain.SkipDetail{Annotated: true}))
		modified = true
	}

	if modified {
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
			color.Yellow("Warning: failed to write %s: %v", uri, err)
		}
	}
	return details
}

// AlreadySkipped reports whether an annotation already sits within the
// lookback window above the definition line. The scan stops early at another
// scenario or feature line so a neighbor's annotation is never mistaken for
// this one's.
func AlreadySkipped(lines []string, idx int) bool {
	for i := 1; i <= lookbackWindow; i++ {
		if idx-i < 0 {
			break
		}
		prev := strings.TrimSpace(lines[idx-i])
		if strings.HasPrefix(prev, SkipTag) || strings.HasPrefix(prev, "@ignore") || strings.HasPrefix(prev, reasonMarker) {
			return true
		}
		if strings.HasPrefix(prev, scenarioKeyword) || strings.HasPrefix(prev, "Feature") {
			break
		}
	}
	return false
}

// FormatReason normalizes an error message for the reason comment: double
// quotes become single quotes and anything past 100 characters is truncated
// to 97 plus an ellipsis.
func FormatReason(message string) string {
	reason := strings.ReplaceAll(message, `"`, "'")
	if runes := []rune(reason); len(runes) > maxReasonLength {
		reason = string(runes[:maxReasonLength-3]) + "..."
	}
	return reason
}

func newDetail(f domain.FailureRecord, outcome domain.SkipDetail) domain.SkipDetail {
	outcome.URI = f.URI
	outcome.Line = f.Line
	outcome.Name = f.Name
	outcome.ID = f.ID
	outcome.Error = f.Error
	return outcome
}
