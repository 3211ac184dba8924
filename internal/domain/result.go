package domain

// SkipDetail is a FailureRecord plus the outcome of the annotation pass.
type SkipDetail struct {
	URI       string `json:"uri"`
	Line      int    `json:"line"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Error     string `json:"error"`
	Annotated bool   `json:"annotated"`          // a skip annotation was inserted this run
	Skipped   bool   `json:"already_skipped"`    // an annotation was already present
	Missing   bool   `json:"missing,omitempty"`  // scenario could not be located in the file
	Resolved  bool   `json:"resolved,omitempty"` // marked as reviewed in the viewer
}

// SkipRunMeta contains metadata about an annotation run
type SkipRunMeta struct {
	Reports         int     `json:"reports"`
	FailedScenarios int     `json:"failed_scenarios"`
	Annotated       int     `json:"annotated"`
	AlreadySkipped  int     `json:"already_skipped"`
	Unlocatable     int     `json:"unlocatable"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// SkipRunOutput is the complete output structure for an annotation run
type SkipRunOutput struct {
	Meta    SkipRunMeta  `json:"meta"`
	Details []SkipDetail `json:"details"`
}
