package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fwojciec/prospero"
)

// TruncatePath shortens a path for display, keeping the end which is more informative.
func TruncatePath(path string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return path[:min(len(path), maxLen)]
	}
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatSkipped formats skip counts as "link=2, tweet=1", sorted by kind.
func FormatSkipped(skipped map[prospero.Kind]int) string {
	parts := make([]string, 0, len(skipped))
	for kind, n := range skipped {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", kind, n))
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

// WrittenBytes returns the total size of the pairs written for a report.
func WrittenBytes(r *prospero.Report) int {
	n := 0
	for _, p := range r.Written {
		n += p.TextBytes + p.CtxBytes
	}
	return n
}
