package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultIgnores are merged into every new project's .gitignore.
var DefaultIgnores = []string{
	"node_modules",
	"dist",
	".env.local",
	".DS_Store",
	"*.log",
}

// MergeGitignore makes sure every entry of lines appears in dir/.gitignore.
// Existing non-blank lines keep their order and come first; duplicates are
// dropped and the file always ends with a newline.
func MergeGitignore(dir string, lines []string) error {
	path := filepath.Join(dir, ".gitignore")

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading .gitignore: %w", err)
	}

	merged := mergeLines(strings.Split(string(content), "\n"), lines)
	out := strings.Join(merged, "\n") + "\n"

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}

func mergeLines(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing)+len(extra))
	var out []string
	add := func(l string) {
		l = strings.TrimRight(l, "\r")
		if l == "" || seen[l] {
			return
		}
		seen[l] = true
		out = append(out, l)
	}
	for _, l := range existing {
		add(l)
	}
	for _, l := range extra {
		add(l)
	}
	return out
}
