package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultReportGlob matches the per-shard cucumber reports produced by CI
	DefaultReportGlob = "ci-output/e2e-reports-shard-*/cucumber-report-ci.json"
	// DefaultFeaturesDir is the root of the behavior-driven specification files
	DefaultFeaturesDir = "e2e/features"
	// DefaultFeatureGlob matches feature files at any depth under the features dir
	DefaultFeatureGlob = "**/*.feature"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "skip-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
)
