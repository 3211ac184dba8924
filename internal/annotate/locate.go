package annotate

import "strings"

// scenarioKeyword prefixes both "Scenario:" and "Scenario Outline:" lines.
const scenarioKeyword = "Scenario"

// LocateScenario returns the index of the line defining the named scenario.
// Line numbers from reports drift as annotations are inserted, so the match
// is by text: the trimmed line must start with the scenario keyword and end
// with the scenario name. There is no fallback to the reported line number;
// a stale number could point at a different scenario.
func LocateScenario(lines []string, name string) (int, bool) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, name) && strings.HasPrefix(trimmed, scenarioKeyword) {
			return i, true
		}
	}
	return -1, false
}

// indentOf returns the leading whitespace of a line.
func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
