package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"skipctl/internal/domain"
)

// Save writes run details to the configured JSON output file.
func (s *JSONStorage) Save(details []domain.SkipDetail, reports int, duration time.Duration) error {
	annotated := 0
	alreadySkipped := 0
	unlocatable := 0
	for _, d := range details {
		switch {
		case d.Annotated:
			annotated++
		case d.Skipped:
			alreadySkipped++
		case d.Missing:
			unlocatable++
		}
	}

	output := domain.SkipRunOutput{
		Meta: domain.SkipRunMeta{
			Reports:         reports,
			FailedScenarios: len(details),
			Annotated:       annotated,
			AlreadySkipped:  alreadySkipped,
			Unlocatable:     unlocatable,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: details,
	}

	return s.SaveOutput(&output)
}

// Load reads the last run results from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.SkipRunOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.SkipRunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file (e.g. after marking details resolved).
func (s *JSONStorage) SaveOutput(output *domain.SkipRunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
