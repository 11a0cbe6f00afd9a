// Package report renders comparison results to the console: the
// configuration echo, per-directory collection counts, the grouped
// membership sections, and the closing summary.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vvka-141/fscmp/pkg/fscmp"
)

const separatorWidth = 60

// Renderer writes formatted comparison output to a writer.
type Renderer struct {
	out   io.Writer
	color bool
}

// New creates a Renderer. When color is false all styling is suppressed and
// output is plain text.
func New(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, color: color}
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// PrintConfig echoes the effective configuration before any scanning starts.
func (r *Renderer) PrintConfig(dirs []string, rs fscmp.RuleSet, exclude []string, recursive bool) {
	fmt.Fprintf(r.out, "Comparing %d directories:\n", len(dirs))
	for _, dir := range dirs {
		fmt.Fprintf(r.out, "  - %s\n", dir)
	}

	if len(rs) > 0 {
		fmt.Fprintf(r.out, "\nNormalization rules (%d):\n", len(rs))
		for _, rule := range rs {
			fmt.Fprintf(r.out, "  %s\n", r.style(mutedStyle, fmt.Sprintf("'%s' -> '%s'", rule.Match, rule.Replace)))
		}
	}

	if len(exclude) > 0 {
		fmt.Fprintf(r.out, "\nExclusion patterns (%d):\n", len(exclude))
		for _, pattern := range exclude {
			fmt.Fprintf(r.out, "  - %s\n", pattern)
		}
	}

	fmt.Fprintf(r.out, "\nRecursive: %v\n", recursive)
	fmt.Fprintln(r.out)
}

// Separator prints a horizontal rule between output phases.
func (r *Renderer) Separator() {
	fmt.Fprintln(r.out, r.style(mutedStyle, strings.Repeat("=", separatorWidth)))
}

// PrintCollected reports how many keys a directory contributed.
func (r *Renderer) PrintCollected(dir string, count int) {
	fmt.Fprintf(r.out, "Collected %s files from: %s\n",
		r.style(countStyle, fmt.Sprintf("%d", count)), filepath.Base(dir))
}

// PrintGroups renders the partitioned results. Sections appear in signature
// order (tuple length ascending, then tuple contents); within a section keys
// are lexicographic. dirCount distinguishes the "present in all" header.
func (r *Renderer) PrintGroups(result *fscmp.PartitionResult, dirCount int) {
	for _, sig := range result.Signatures() {
		fmt.Fprintf(r.out, "\n%s\n", r.style(sectionStyle, sectionHeader(sig, dirCount)))
		for _, key := range result.Keys(sig) {
			fmt.Fprintf(r.out, "  %s\n", key)
		}
	}
}

// PrintSummary reports totals after the grouped sections.
func (r *Renderer) PrintSummary(result *fscmp.PartitionResult) {
	fmt.Fprintln(r.out)
	r.Separator()
	fmt.Fprintln(r.out, r.style(summaryStyle, fmt.Sprintf("Total unique files (normalized): %d", result.TotalKeys())))
	fmt.Fprintln(r.out, r.style(summaryStyle, fmt.Sprintf("Categories: %d", result.Len())))
}

// sectionHeader builds the header line for one signature group. Directory
// identifiers render as base names.
func sectionHeader(sig fscmp.Signature, dirCount int) string {
	names := make([]string, 0, len(sig))
	for _, dir := range sig {
		names = append(names, filepath.Base(dir))
	}
	joined := strings.Join(names, ", ")

	switch {
	case len(sig) == 1:
		return fmt.Sprintf("--- Files present only in: [%s] ---", joined)
	case len(sig) == dirCount:
		return fmt.Sprintf("--- Files present in all directories: [%s] ---", joined)
	default:
		return fmt.Sprintf("--- Files present in: [%s] ---", joined)
	}
}
