package annotate

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		input       []string
		expected    []string
		wantChanged bool
	}{
		{
			name: "canonical form is untouched",
			input: []string{
				"Feature: Login",
				"",
				"  # SKIP REASON: flaky selector",
				"  @skip",
				"  Scenario: Login",
				"    Given a user",
			},
			expected: []string{
				"Feature: Login",
				"",
				"  # SKIP REASON: flaky selector",
				"  @skip",
				"  Scenario: Login",
				"    Given a user",
			},
			wantChanged: false,
		},
		{
			name: "inline form rewritten to two lines",
			input: []string{
				"  @skip  # timeout waiting for dialog",
				"  Scenario: Login",
			},
			expected: []string{
				"  # SKIP REASON: timeout waiting for dialog",
				"  @skip",
				"  Scenario: Login",
			},
			wantChanged: true,
		},
		{
			name: "error prefix stripped from inline reason",
			input: []string{
				"  @skip  # Error: timeout waiting for dialog",
				"  Scenario: Login",
			},
			expected: []string{
				"  # SKIP REASON: timeout waiting for dialog",
				"  @skip",
				"  Scenario: Login",
			},
			wantChanged: true,
		},
		{
			name: "consecutive inline duplicates collapse",
			input: []string{
				"  @skip  # first reason",
				"  @skip  # second reason",
				"  @skip  # third reason",
				"  Scenario: Login",
			},
			expected: []string{
				"  # SKIP REASON: first reason",
				"  @skip",
				"  Scenario: Login",
			},
			wantChanged: true,
		},
		{
			name: "consecutive bare tags collapse",
			input: []string{
				"  # SKIP REASON: flaky",
				"  @skip",
				"  @skip",
				"  Scenario: Login",
			},
			expected: []string{
				"  # SKIP REASON: flaky",
				"  @skip",
				"  Scenario: Login",
			},
			wantChanged: true,
		},
		{
			name: "indentation preserved on rewrite",
			input: []string{
				"\t@skip  # broke after redesign",
				"\tScenario: Login",
			},
			expected: []string{
				"\t# SKIP REASON: broke after redesign",
				"\t@skip",
				"\tScenario: Login",
			},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, changed := Normalize(tt.input)
			if changed != tt.wantChanged {
				t.Errorf("expected changed=%v, got %v", tt.wantChanged, changed)
			}
			if strings.Join(result, "\n") != strings.Join(tt.expected, "\n") {
				t.Errorf("expected:\n%s\ngot:\n%s", strings.Join(tt.expected, "\n"), strings.Join(result, "\n"))
			}
		})
	}
}

func TestNormalize_RoundTrip(t *testing.T) {
	// A normalized document must survive a second pass byte-identical
	input := []string{
		"Feature: Login",
		"  @skip  # Error: timeout",
		"  @skip  # dup",
		"  Scenario: Login",
		"  @skip",
		"  @skip",
		"  Scenario: Other",
		"",
	}

	once, changed := Normalize(input)
	if !changed {
		t.Fatal("expected first pass to change the document")
	}

	twice, changed := Normalize(once)
	if changed {
		t.Error("expected second pass to be a no-op")
	}
	if strings.Join(once, "\n") != strings.Join(twice, "\n") {
		t.Errorf("second pass altered output:\n%s\nvs:\n%s", strings.Join(once, "\n"), strings.Join(twice, "\n"))
	}
}
