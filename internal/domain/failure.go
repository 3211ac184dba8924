package domain

// FailureRecord represents one failed scenario extracted from a CI report.
// Records are rebuilt from the reports on every run; SkipDetail is the
// persisted form.
type FailureRecord struct {
	URI   string // feature file path as reported (relative to the project)
	Line  int    // scenario definition line at report time (may have drifted)
	Name  string // scenario name
	ID    string // stable scenario identifier, unique across shards
	Error string // first line of the failing step's error message
}
