package storage

import (
	"time"

	"skipctl/internal/config"
	"skipctl/internal/domain"
)

// Storage persists and loads annotation run results (e.g. for the view command).
type Storage interface {
	Save(details []domain.SkipDetail, reports int, duration time.Duration) error
	Load() (*domain.SkipRunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-flag updates).
	SaveOutput(output *domain.SkipRunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
