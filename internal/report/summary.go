package report

import (
	"fmt"
	"strings"

	"labctl/internal/domain"
)

// Summarize renders failures as a markdown bullet list.
func Summarize(failures []domain.TestFailure) string {
	lines := make([]string, 0, len(failures))
	for _, f := range failures {
		lines = append(lines, fmt.Sprintf("- **%s**: %s", f.Title, f.Message))
	}
	return strings.Join(lines, "\n")
}
