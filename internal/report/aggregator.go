package report

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"

	"skipctl/internal/config"
	"skipctl/internal/domain"
)

// Aggregator collects failed scenarios from sharded CI report files
type Aggregator struct {
	config *config.Config
}

// NewAggregator creates a new Aggregator
func NewAggregator(cfg *config.Config) *Aggregator {
	return &Aggregator{config: cfg}
}

// Collect globs the configured report files and returns the deduplicated,
// sorted failure records. A report that cannot be read or parsed is reported
// and skipped; it never aborts the rest of the run.
func (a *Aggregator) Collect() ([]domain.FailureRecord, int, error) {
	paths, err := doublestar.FilepathGlob(a.config.GetReportGlob())
	if err != nil {
		return nil, 0, err
	}
	sort.Strings(paths)

	var failures []domain.FailureRecord
	read := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			color.Yellow("Error reading %s: %v", path, err)
			continue
		}

		var features []Feature
		if err := json.Unmarshal(data, &features); err != nil {
			color.Yellow("Error reading %s: %v", path, err)
			continue
		}

		read++
		failures = append(failures, ExtractFailures(features)...)
	}

	return Dedupe(failures), read, nil
}

// ExtractFailures scans decoded report features and returns one record per
// failed scenario. The first failed step determines the failure and supplies
// the error message.
func ExtractFailures(features []Feature) []domain.FailureRecord {
	var failures []domain.FailureRecord

	for _, feature := range features {
		if feature.URI == "" {
			continue
		}

		for _, element := range feature.Elements {
			if element.Type != "scenario" {
				continue
			}

			failed := false
			errorMessage := ""
			for _, step := range element.Steps {
				if step.Result.Status == "failed" {
					failed = true
					errorMessage = firstLine(step.Result.ErrorMessage)
					break
				}
			}

			if failed {
				failures = append(failures, domain.FailureRecord{
					URI:   feature.URI,
					Line:  element.Line,
					Name:  element.Name,
					ID:    element.ID,
					Error: errorMessage,
				})
			}
		}
	}

	return failures
}

// Dedupe drops records whose ID was already seen (later shard duplicates
// lose) and sorts the survivors by (uri, line) ascending.
func Dedupe(failures []domain.FailureRecord) []domain.FailureRecord {
	seen := make(map[string]bool)
	var unique []domain.FailureRecord
	for _, f := range failures {
		if seen[f.ID] {
			continue
		}
		seen[f.ID] = true
		unique = append(unique, f)
	}

	sort.Slice(unique, func(i, j int) bool {
		if unique[i].URI != unique[j].URI {
			return unique[i].URI < unique[j].URI
		}
		return unique[i].Line < unique[j].Line
	})

	return unique
}

// GroupByURI buckets records by their feature file, preserving order within
// each bucket.
func GroupByURI(failures []domain.FailureRecord) map[string][]domain.FailureRecord {
	groups := make(map[string][]domain.FailureRecord)
	for _, f := range failures {
		groups[f.URI] = append(groups[f.URI], f)
	}
	return groups
}

func firstLine(message string) string {
	if message == "" {
		return "Unknown error"
	}
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}
	return strings.TrimSpace(message)
}
