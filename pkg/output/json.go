package output

import (
	"encoding/json"
	"fmt"

	"github.com/sdejongh/treediff/pkg/models"
)

// JSONFormatter renders a diff result as a JSON document mirroring the
// result's three top-level fields, for automation and scripting
type JSONFormatter struct {
	opts Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(opts Options) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format renders the diff result
func (f *JSONFormatter) Format(result *models.DiffResult) (string, error) {
	out := *result

	if f.opts.StatsOnly {
		out.Changes = nil
	} else if len(f.opts.ShowOnly) > 0 {
		out.Changes = f.filter(result.Changes)
	}

	data, err := json.MarshalIndent(&out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal diff result: %w", err)
	}
	return string(data) + "\n", nil
}

// filter applies the ShowOnly restriction recursively, keeping modified
// directories whose subtree still contains a visible change
func (f *JSONFormatter) filter(changes []models.Change) []models.Change {
	var kept []models.Change
	for i := range changes {
		c := changes[i]
		c.Children = f.filter(c.Children)
		if f.opts.visible(&c) || len(c.Children) > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
