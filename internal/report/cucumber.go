package report

// Feature mirrors one entry of a cucumber JSON report (each report file
// holds an array of these).
type Feature struct {
	URI      string    `json:"uri"`
	Elements []Element `json:"elements"`
}

// Element is a scenario (or background) within a feature.
type Element struct {
	Type  string `json:"type"`
	Line  int    `json:"line"`
	Name  string `json:"name"`
	ID    string `json:"id"`
	Steps []Step `json:"steps"`
}

// Step is a single step with its execution result.
type Step struct {
	Result StepResult `json:"result"`
}

// StepResult holds the status and error message of an executed step.
type StepResult struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}
