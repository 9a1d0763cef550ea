package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/sdejongh/treediff/pkg/models"
)

// TextFormatter renders a diff result as an indented listing with
// per-line change markers, suitable for terminals
type TextFormatter struct {
	opts Options
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(opts Options) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Format renders the diff result
func (f *TextFormatter) Format(result *models.DiffResult) (string, error) {
	var b strings.Builder

	root := result.Metadata.ComparisonRoot
	if root == "" {
		root = "."
	}
	fmt.Fprintf(&b, "%s/\n", root)

	if !f.opts.StatsOnly {
		for i := range result.Changes {
			f.writeChange(&b, &result.Changes[i], 1)
		}
	}

	if !f.opts.NoSummary {
		f.writeSummary(&b, &result.Summary)
	}

	return b.String(), nil
}

func (f *TextFormatter) writeChange(b *strings.Builder, c *models.Change, depth int) {
	if !f.opts.visible(c) && len(c.Children) == 0 {
		return
	}

	indent := strings.Repeat("  ", depth)
	name := displayPath(c)
	line := fmt.Sprintf("%s%s %s%s", indent, f.marker(c.Type), name, f.detail(c))
	fmt.Fprintln(b, line)

	for i := range c.Children {
		f.writeChange(b, &c.Children[i], depth+1)
	}
}

// detail renders the per-change annotation: move source and similarity,
// kind transition, or size delta.
func (f *TextFormatter) detail(c *models.Change) string {
	switch c.Type {
	case models.ChangeMoved:
		return fmt.Sprintf("  <- %s (%.0f%% similar)", c.MovedFrom, c.Similarity*100)
	case models.ChangeTypeChanged:
		return fmt.Sprintf("  (%s -> %s)", c.FromKind, c.ToKind)
	case models.ChangeAdded, models.ChangeRemoved, models.ChangeModified:
		if delta := formatSizeChange(c.SizeChange(), f.opts.HumanSizes); delta != "" {
			return fmt.Sprintf("  (%s)", delta)
		}
	}
	return ""
}

func (f *TextFormatter) marker(t models.ChangeType) string {
	symbol := changeSymbol(t)
	if !f.opts.Color {
		return symbol
	}
	return changePalette(t).Sprint(symbol)
}

// changePalette maps a change type to its terminal color
func changePalette(t models.ChangeType) *color.Color {
	switch t {
	case models.ChangeAdded:
		return color.New(color.FgGreen)
	case models.ChangeRemoved:
		return color.New(color.FgRed)
	case models.ChangeModified:
		return color.New(color.FgYellow)
	case models.ChangeMoved:
		return color.New(color.FgMagenta)
	case models.ChangeTypeChanged:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgHiBlack)
	}
}

func (f *TextFormatter) writeSummary(b *strings.Builder, s *models.DiffSummary) {
	fmt.Fprintf(b, "\nChanges Summary:\n")

	writeKindLine(b, "added", "+", s.DirectoriesAdded, s.FilesAdded)
	writeKindLine(b, "removed", "-", s.DirectoriesRemoved, s.FilesRemoved)
	writeKindLine(b, "moved", "~", s.DirectoriesMoved, s.FilesMoved)

	if s.TypeChanged > 0 {
		fmt.Fprintf(b, "  %d type changes (T)\n", s.TypeChanged)
	}
	if s.Modified > 0 {
		fmt.Fprintf(b, "  %d modified (M)\n", s.Modified)
	}
	if s.Unchanged > 0 {
		fmt.Fprintf(b, "  %d unchanged\n", s.Unchanged)
	}

	if delta := formatSizeChange(s.SizeChange, f.opts.HumanSizes); delta != "" {
		fmt.Fprintf(b, "  Size change: %s\n", delta)
	}

	if s.TotalChanges() == 0 {
		fmt.Fprintf(b, "  No changes detected\n")
	} else {
		fmt.Fprintf(b, "  Total: %d changes\n", s.TotalChanges())
	}
}

// writeKindLine renders a directory/file breakdown line for one category
func writeKindLine(b *strings.Builder, verb, symbol string, dirs, files int) {
	switch {
	case dirs > 0 && files > 0:
		fmt.Fprintf(b, "  %d directories %s, %d files %s (%s)\n", dirs, verb, files, verb, symbol)
	case dirs > 0:
		fmt.Fprintf(b, "  %d directories %s (%s)\n", dirs, verb, symbol)
	case files > 0:
		fmt.Fprintf(b, "  %d files %s (%s)\n", files, verb, symbol)
	}
}

// displayPath renders the identity path with a trailing slash on directories
func displayPath(c *models.Change) string {
	if c.IsDirectory() {
		return c.Path + "/"
	}
	return c.Path
}

// Name returns the formatter name
func (f *TextFormatter) Name() string {
	return "text"
}
