// Package output renders diff results in human-readable (text, markdown,
// html) and machine-readable (json) formats. Renderers only consume the
// result value; they never re-derive engine facts.
package output

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/sdejongh/treediff/pkg/models"
)

// Formatter defines the interface for diff result rendering
// Implementations include text, json, markdown and html formatters
type Formatter interface {
	// Format renders a diff result to a string
	Format(result *models.DiffResult) (string, error)

	// Name returns the formatter name
	Name() string
}

// Options control rendering details shared by the formatters
type Options struct {
	// Color enables ANSI colors (text formatter only)
	Color bool

	// HumanSizes renders byte counts in human-friendly units
	HumanSizes bool

	// StatsOnly suppresses the change list and renders the summary only
	StatsOnly bool

	// NoSummary suppresses the summary block (text formatter only)
	NoSummary bool

	// ShowOnly restricts the rendered change list to the given change
	// types (empty = all). Summary counts are never affected.
	ShowOnly []models.ChangeType
}

// NewFormatter creates a formatter for the named format
func NewFormatter(format string, opts Options) (Formatter, error) {
	switch format {
	case "", "human", "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	case "markdown", "md":
		return NewMarkdownFormatter(opts), nil
	case "html":
		return NewHTMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use: human, json, markdown, html)", format)
	}
}

// visible reports whether a change passes the ShowOnly filter
func (o *Options) visible(c *models.Change) bool {
	if len(o.ShowOnly) == 0 {
		return true
	}
	for _, t := range o.ShowOnly {
		if c.Type == t {
			return true
		}
	}
	return false
}

// changeSymbol returns the per-line marker for a change type
func changeSymbol(t models.ChangeType) string {
	switch t {
	case models.ChangeAdded:
		return "[+]"
	case models.ChangeRemoved:
		return "[-]"
	case models.ChangeModified:
		return "[M]"
	case models.ChangeMoved:
		return "[~]"
	case models.ChangeTypeChanged:
		return "[T]"
	default:
		return "[=]"
	}
}

// formatSizeChange renders a signed size delta, empty for zero
func formatSizeChange(delta int64, human bool) string {
	if delta == 0 {
		return ""
	}
	sign := ""
	if delta > 0 {
		sign = "+"
	}
	if human {
		abs := delta
		if abs < 0 {
			abs = -abs
			sign = "-"
		}
		return sign + humanize.Bytes(uint64(abs))
	}
	return fmt.Sprintf("%s%d B", sign, delta)
}

// formatSize renders an absolute byte count
func formatSize(size int64, human bool) string {
	if human {
		return humanize.Bytes(uint64(size))
	}
	return fmt.Sprintf("%d B", size)
}
