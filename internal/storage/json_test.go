package storage

import (
	"os"
	"testing"
	"time"

	"skipctl/internal/config"
	"skipctl/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "skipctl-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &config.Config{
		ProjectPath:    tmpDir,
		OutputJSONDir:  "storage",
		OutputJSONFile: "skip-results.json",
	}
	st := NewJSONStorage(cfg)

	details := []domain.SkipDetail{
		{URI: "a.feature", Line: 4, Name: "One", ID: "1", Error: "boom", Annotated: true},
		{URI: "a.feature", Line: 9, Name: "Two", ID: "2", Error: "bang", Skipped: true},
		{URI: "b.feature", Line: 2, Name: "Three", ID: "3", Error: "pow", Missing: true},
	}

	if err := st.Save(details, 4, 1500*time.Millisecond); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if output.Meta.Reports != 4 {
		t.Errorf("expected 4 reports, got %d", output.Meta.Reports)
	}
	if output.Meta.FailedScenarios != 3 {
		t.Errorf("expected 3 failed scenarios, got %d", output.Meta.FailedScenarios)
	}
	if output.Meta.Annotated != 1 || output.Meta.AlreadySkipped != 1 || output.Meta.Unlocatable != 1 {
		t.Errorf("unexpected counts: %+v", output.Meta)
	}
	if len(output.Details) != 3 {
		t.Fatalf("expected 3 details, got %d", len(output.Details))
	}
	if output.Details[0].Name != "One" || !output.Details[0].Annotated {
		t.Errorf("unexpected first detail: %+v", output.Details[0])
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "skipctl-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &config.Config{
		ProjectPath:    tmpDir,
		OutputJSONDir:  "storage",
		OutputJSONFile: "skip-results.json",
	}
	st := NewJSONStorage(cfg)

	if _, err := st.Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
