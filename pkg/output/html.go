package output

import (
	"fmt"
	"html"
	"strings"

	"github.com/sdejongh/treediff/pkg/models"
)

// HTMLFormatter renders a diff result as a standalone HTML page
type HTMLFormatter struct {
	opts Options
}

// NewHTMLFormatter creates a new HTML formatter
func NewHTMLFormatter(opts Options) *HTMLFormatter {
	return &HTMLFormatter{opts: opts}
}

const htmlStyle = `  body { font-family: monospace; margin: 2em; }
  table { border-collapse: collapse; margin-bottom: 1.5em; }
  th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: right; }
  th:first-child, td:first-child { text-align: left; }
  ul { list-style: none; padding-left: 1.5em; }
  .added { color: #1a7f37; }
  .removed { color: #cf222e; }
  .modified { color: #9a6700; }
  .moved { color: #8250df; }
  .type_changed { color: #0969da; }
  .unchanged { color: #6e7781; }
`

// Format renders the diff result
func (f *HTMLFormatter) Format(result *models.DiffResult) (string, error) {
	var b strings.Builder

	title := fmt.Sprintf("Directory Diff: %s", result.Metadata.ComparisonRoot)
	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n<style>\n%s</style>\n</head>\n<body>\n", html.EscapeString(title), htmlStyle)
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<p>Generated: %s</p>\n", result.Metadata.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	f.writeSummary(&b, &result.Summary)

	if !f.opts.StatsOnly && len(result.Changes) > 0 {
		fmt.Fprintf(&b, "<h2>Changes</h2>\n<ul>\n")
		for i := range result.Changes {
			f.writeChange(&b, &result.Changes[i])
		}
		fmt.Fprintf(&b, "</ul>\n")
	}

	fmt.Fprintf(&b, "</body>\n</html>\n")
	return b.String(), nil
}

func (f *HTMLFormatter) writeSummary(b *strings.Builder, s *models.DiffSummary) {
	fmt.Fprintf(b, "<h2>Summary</h2>\n<table>\n")
	fmt.Fprintf(b, "<tr><th>Category</th><th>Count</th><th>Files</th><th>Directories</th></tr>\n")
	fmt.Fprintf(b, "<tr><td>Added</td><td>%d</td><td>%d</td><td>%d</td></tr>\n", s.Added, s.FilesAdded, s.DirectoriesAdded)
	fmt.Fprintf(b, "<tr><td>Removed</td><td>%d</td><td>%d</td><td>%d</td></tr>\n", s.Removed, s.FilesRemoved, s.DirectoriesRemoved)
	fmt.Fprintf(b, "<tr><td>Moved</td><td>%d</td><td>%d</td><td>%d</td></tr>\n", s.Moved, s.FilesMoved, s.DirectoriesMoved)
	fmt.Fprintf(b, "<tr><td>Modified</td><td>%d</td><td></td><td></td></tr>\n", s.Modified)
	fmt.Fprintf(b, "<tr><td>Type changed</td><td>%d</td><td></td><td></td></tr>\n", s.TypeChanged)
	fmt.Fprintf(b, "<tr><td>Unchanged</td><td>%d</td><td></td><td></td></tr>\n", s.Unchanged)
	fmt.Fprintf(b, "</table>\n")
	fmt.Fprintf(b, "<p>Total changes: <strong>%d</strong>", s.TotalChanges())
	if delta := formatSizeChange(s.SizeChange, f.opts.HumanSizes); delta != "" {
		fmt.Fprintf(b, ", size change: <strong>%s</strong>", html.EscapeString(delta))
	}
	fmt.Fprintf(b, "</p>\n")
}

func (f *HTMLFormatter) writeChange(b *strings.Builder, c *models.Change) {
	if !f.opts.visible(c) && len(c.Children) == 0 {
		return
	}

	fmt.Fprintf(b, "<li class=\"%s\">%s %s", c.Type, changeSymbol(c.Type), html.EscapeString(displayPath(c)))
	switch c.Type {
	case models.ChangeMoved:
		fmt.Fprintf(b, " &larr; %s (%.0f%% similar)", html.EscapeString(c.MovedFrom), c.Similarity*100)
	case models.ChangeTypeChanged:
		fmt.Fprintf(b, " (%s &rarr; %s)", c.FromKind, c.ToKind)
	}

	if len(c.Children) > 0 {
		fmt.Fprintf(b, "\n<ul>\n")
		for i := range c.Children {
			f.writeChange(b, &c.Children[i])
		}
		fmt.Fprintf(b, "</ul>\n")
	}
	fmt.Fprintf(b, "</li>\n")
}

// Name returns the formatter name
func (f *HTMLFormatter) Name() string {
	return "html"
}
