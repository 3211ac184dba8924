package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner finds specification files under a directory
type Scanner struct {
	pattern string
}

// NewScanner creates a new Scanner matching the given glob pattern
// (doublestar syntax, so "**/*.feature" matches at any depth).
func NewScanner(pattern string) *Scanner {
	return &Scanner{pattern: pattern}
}

// Scan returns all files under root matching the scanner's pattern, sorted.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("features path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("features path is not a directory: %s", root)
	}

	matches, err := doublestar.Glob(os.DirFS(root), s.pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", s.pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Join(root, m))
	}
	sort.Strings(files)

	return files, nil
}
