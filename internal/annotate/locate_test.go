package annotate

import (
	"testing"
)

func TestLocateScenario(t *testing.T) {
	doc := []string{
		"Feature: Login",
		"",
		"  Scenario: Login with valid token",
		"    Given a user",
		"",
		"  Scenario Outline: Login with expired token",
		"    Given a user",
	}

	tests := []struct {
		name       string
		target     string
		expected   int
		shouldFind bool
	}{
		{
			name:       "plain scenario",
			target:     "Login with valid token",
			expected:   2,
			shouldFind: true,
		},
		{
			name:       "scenario outline",
			target:     "Login with expired token",
			expected:   5,
			shouldFind: true,
		},
		{
			name:       "missing scenario",
			target:     "Logout",
			shouldFind: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, found := LocateScenario(doc, tt.target)
			if found != tt.shouldFind {
				t.Fatalf("expected found=%v, got %v", tt.shouldFind, found)
			}
			if found && idx != tt.expected {
				t.Errorf("expected index %d, got %d", tt.expected, idx)
			}
		})
	}
}

func TestLocateScenario_KeywordGuard(t *testing.T) {
	// A step mentioning the scenario name must not be mistaken for its definition
	doc := []string{
		"Feature: Login",
		"  Scenario: Audit",
		"    Given an audit entry saying Login fails",
		"  Scenario: Login fails",
	}

	idx, found := LocateScenario(doc, "Login fails")
	if !found {
		t.Fatal("expected to locate scenario")
	}
	if idx != 3 {
		t.Errorf("expected definition line 3, got %d", idx)
	}
}

func TestAlreadySkipped(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		idx      int
		expected bool
	}{
		{
			name: "canonical annotation above",
			lines: []string{
				"  # SKIP REASON: flaky",
				"  @skip",
				"  Scenario: Login",
			},
			idx:      2,
			expected: true,
		},
		{
			name: "ignore tag counts as annotated",
			lines: []string{
				"  @ignore",
				"  Scenario: Login",
			},
			idx:      1,
			expected: true,
		},
		{
			name: "no annotation",
			lines: []string{
				"Feature: Login",
				"",
				"  Scenario: Login",
			},
			idx:      2,
			expected: false,
		},
		{
			name: "scan stops at previous scenario",
			lines: []string{
				"  @skip",
				"  Scenario: Other",
				"    Given a step",
				"  Scenario: Login",
			},
			idx:      3,
			expected: false,
		},
		{
			name: "annotation outside the window is missed",
			lines: []string{
				"  @skip",
				"  # one",
				"  # two",
				"  # three",
				"  # four",
				"  Scenario: Login",
			},
			idx:      5,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlreadySkipped(tt.lines, tt.idx); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFormatReason(t *testing.T) {
	t.Run("quotes normalized", func(t *testing.T) {
		got := FormatReason(`expected "401" got "200"`)
		expected := "expected '401' got '200'"
		if got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})

	t.Run("long message truncated to 97 plus ellipsis", func(t *testing.T) {
		long := ""
		for i := 0; i < 120; i++ {
			long += "x"
		}
		got := FormatReason(long)
		if len(got) != 100 {
			t.Errorf("expected 100 characters, got %d", len(got))
		}
		if got[97:] != "..." {
			t.Errorf("expected ellipsis suffix, got %q", got[97:])
		}
	})

	t.Run("short message untouched", func(t *testing.T) {
		if got := FormatReason("boom"); got != "boom" {
			t.Errorf("expected boom, got %q", got)
		}
	})
}
