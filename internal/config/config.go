package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	FeaturesDir string

	// Report settings
	ReportGlob  string
	FeatureGlob string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Cleanup bool
}

// New creates a new Config with defaults, applying .env and environment
// overrides when present.
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		FeaturesDir:    DefaultFeaturesDir,
		ReportGlob:     DefaultReportGlob,
		FeatureGlob:    DefaultFeatureGlob,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags
	return cfg
}

// applyEnv overlays .env and environment variables onto the defaults.
func (c *Config) applyEnv() {
	// .env file might not exist, that's okay - use environment variables
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		_ = err
	}

	if v := os.Getenv("SKIPCTL_PROJECT_PATH"); v != "" {
		c.ProjectPath = v
	}
	if v := os.Getenv("SKIPCTL_REPORT_GLOB"); v != "" {
		c.ReportGlob = v
	}
	if v := os.Getenv("SKIPCTL_FEATURES_DIR"); v != "" {
		c.FeaturesDir = v
	}
}

// GetReportGlob returns the report glob resolved against the project path.
func (c *Config) GetReportGlob() string {
	if filepath.IsAbs(c.ReportGlob) {
		return c.ReportGlob
	}
	return filepath.Join(c.ProjectPath, c.ReportGlob)
}

// GetFeaturesDir returns the features directory resolved against the project path.
func (c *Config) GetFeaturesDir() string {
	if filepath.IsAbs(c.FeaturesDir) {
		return c.FeaturesDir
	}
	return filepath.Join(c.ProjectPath, c.FeaturesDir)
}

// GetFeaturePath resolves a report URI to a path on disk. Report URIs are
// written relative to the project root the suite ran from.
func (c *Config) GetFeaturePath(uri string) string {
	if filepath.IsAbs(uri) {
		return uri
	}
	return filepath.Join(c.ProjectPath, uri)
}

// GetOutputPath returns the full path to the output JSON file (under project so skip and view use the same file).
// Resolves to an absolute path so skip and view always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
