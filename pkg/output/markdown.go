package output

import (
	"fmt"
	"strings"

	"github.com/sdejongh/treediff/pkg/models"
)

// MarkdownFormatter renders a diff result as a markdown report
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a new markdown formatter
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format renders the diff result
func (f *MarkdownFormatter) Format(result *models.DiffResult) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# Directory Diff: %s\n\n", result.Metadata.ComparisonRoot)
	fmt.Fprintf(&b, "Generated: %s\n\n", result.Metadata.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if result.Metadata.PreviousLabel != "" {
		fmt.Fprintf(&b, "- Previous: `%s`\n", result.Metadata.PreviousLabel)
	}
	if result.Metadata.CurrentLabel != "" {
		fmt.Fprintf(&b, "- Current: `%s`\n", result.Metadata.CurrentLabel)
	}
	fmt.Fprintf(&b, "\n")

	f.writeSummaryTable(&b, &result.Summary)

	if !f.opts.StatsOnly && len(result.Changes) > 0 {
		fmt.Fprintf(&b, "## Changes\n\n")
		for i := range result.Changes {
			f.writeChange(&b, &result.Changes[i], 0)
		}
		fmt.Fprintf(&b, "\n")
	}

	return b.String(), nil
}

func (f *MarkdownFormatter) writeSummaryTable(b *strings.Builder, s *models.DiffSummary) {
	fmt.Fprintf(b, "## Summary\n\n")
	fmt.Fprintf(b, "| Category | Count | Files | Directories |\n")
	fmt.Fprintf(b, "|----------|------:|------:|------------:|\n")
	fmt.Fprintf(b, "| Added | %d | %d | %d |\n", s.Added, s.FilesAdded, s.DirectoriesAdded)
	fmt.Fprintf(b, "| Removed | %d | %d | %d |\n", s.Removed, s.FilesRemoved, s.DirectoriesRemoved)
	fmt.Fprintf(b, "| Moved | %d | %d | %d |\n", s.Moved, s.FilesMoved, s.DirectoriesMoved)
	fmt.Fprintf(b, "| Modified | %d | | |\n", s.Modified)
	fmt.Fprintf(b, "| Type changed | %d | | |\n", s.TypeChanged)
	fmt.Fprintf(b, "| Unchanged | %d | | |\n", s.Unchanged)
	fmt.Fprintf(b, "\n")
	fmt.Fprintf(b, "Total changes: **%d**", s.TotalChanges())
	if delta := formatSizeChange(s.SizeChange, f.opts.HumanSizes); delta != "" {
		fmt.Fprintf(b, ", size change: **%s**", delta)
	}
	fmt.Fprintf(b, "\n\n")
}

func (f *MarkdownFormatter) writeChange(b *strings.Builder, c *models.Change, depth int) {
	if !f.opts.visible(c) && len(c.Children) == 0 {
		return
	}

	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s- `%s` `%s`", indent, changeSymbol(c.Type), displayPath(c))

	switch c.Type {
	case models.ChangeMoved:
		fmt.Fprintf(b, " from `%s` (%.0f%% similar)", c.MovedFrom, c.Similarity*100)
	case models.ChangeTypeChanged:
		fmt.Fprintf(b, " (%s to %s)", c.FromKind, c.ToKind)
	default:
		if delta := formatSizeChange(c.SizeChange(), f.opts.HumanSizes); delta != "" {
			fmt.Fprintf(b, " (%s)", delta)
		}
	}
	fmt.Fprintf(b, "\n")

	for i := range c.Children {
		f.writeChange(b, &c.Children[i], depth+1)
	}
}

// Name returns the formatter name
func (f *MarkdownFormatter) Name() string {
	return "markdown"
}
