package annotate

import (
	"regexp"
	"strings"
)

// inlineSkipPattern matches the malformed one-line form "@skip  # reason".
var inlineSkipPattern = regexp.MustCompile(`^(\s*)@skip\s+#\s*(.*)`)

// Normalize rewrites a document's skip annotations into the canonical
// two-line form. Malformed inline annotations become a reason comment plus a
// bare tag (dropping a redundant "Error: " prefix), consecutive duplicate
// tags collapse to one, and a document already in canonical form comes back
// unchanged with changed == false.
func Normalize(lines []string) ([]string, bool) {
	newLines := make([]string, 0, len(lines))
	changed := false

	i := 0
	for i < len(lines) {
		line := lines[i]

		if m := inlineSkipPattern.FindStringSubmatch(line); m != nil {
			indent := m[1]
			reason := strings.TrimSpace(m[2])
			reason = strings.TrimPrefix(reason, "Error: ")

			// Swallow consecutive duplicate inline tags
			for i+1 < len(lines) && inlineSkipPattern.MatchString(lines[i+1]) {
				i++
			}

			newLines = append(newLines, indent+ReasonPrefix+reason, indent+SkipTag)
			changed = true
			i++
			continue
		}

		if strings.TrimSpace(line) == SkipTag && len(newLines) > 0 {
			if strings.TrimSpace(newLines[len(newLines)-1]) == SkipTag {
				changed = true
				i++
				continue
			}
		}

		newLines = append(newLines, line)
		i++
	}

	return newLines, changed
}
