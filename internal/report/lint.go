package report

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	warningPattern  = regexp.MustCompile(`(?i)(warning|error)`)
	lintLinePattern = regexp.MustCompile(`^.+:\d+:\d+:`)
)

// CollectWarnings scans a log file, or all .txt files under a directory,
// for lint warning and error lines. Matching lines are trimmed and
// deduplicated preserving first-seen order.
func CollectWarnings(path string) ([]string, error) {
	lines, err := collectLines(path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var unique []string
	for _, line := range lines {
		if !warningPattern.MatchString(line) && !lintLinePattern.MatchString(line) {
			continue
		}
		cleaned := strings.TrimSpace(line)
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		unique = append(unique, cleaned)
	}
	return unique, nil
}

// SummarizeWarnings returns the surviving lines joined for display.
func SummarizeWarnings(path string) (string, error) {
	lines, err := CollectWarnings(path)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

func collectLines(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return readLines(path)
	}

	var lines []string
	// WalkDir visits entries in lexical order, so output is deterministic.
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".txt" {
			return nil
		}
		fileLines, err := readLines(p)
		if err != nil {
			return err
		}
		lines = append(lines, fileLines...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	return lines, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from CLI arguments
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
