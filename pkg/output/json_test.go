package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sdejongh/treediff/pkg/models"
)

func TestJSONFormatterRoundTrip(t *testing.T) {
	f := NewJSONFormatter(Options{})
	out, err := f.Format(fixtureResult())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	var decoded models.DiffResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(decoded.Changes) != 4 {
		t.Errorf("expected 4 top-level changes, got %d", len(decoded.Changes))
	}
	if decoded.Summary.TotalChanges() != 5 {
		t.Errorf("summary lost in round trip: %+v", decoded.Summary)
	}

	moved := decoded.Changes[1]
	if moved.MovedFrom != "original.txt" || moved.Similarity != 0.92 {
		t.Errorf("move fields lost: %+v", moved)
	}
	if decoded.Changes[0].Children == nil {
		t.Error("nested children lost in round trip")
	}
}

func TestJSONFormatterOmitsEmptyFields(t *testing.T) {
	f := NewJSONFormatter(Options{})
	out, err := f.Format(fixtureResult())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	// Fields only meaningful for some change types must not appear on
	// the others
	if strings.Contains(out, `"moved_from": ""`) {
		t.Error("empty moved_from should be omitted")
	}
	if strings.Contains(out, `"children": null`) {
		t.Error("empty children should be omitted")
	}
}

func TestJSONFormatterStatsOnly(t *testing.T) {
	f := NewJSONFormatter(Options{StatsOnly: true})
	out, err := f.Format(fixtureResult())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	var decoded models.DiffResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Changes) != 0 {
		t.Errorf("stats-only output must drop changes, got %d", len(decoded.Changes))
	}
	if decoded.Summary.TotalChanges() != 5 {
		t.Errorf("stats-only output must keep the summary: %+v", decoded.Summary)
	}
}

func TestJSONFormatterShowOnly(t *testing.T) {
	f := NewJSONFormatter(Options{ShowOnly: []models.ChangeType{models.ChangeAdded}})
	out, err := f.Format(fixtureResult())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	var decoded models.DiffResult
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	// The modified docs directory survives because its subtree holds an
	// added change; the moved/removed/type-changed entries do not.
	if len(decoded.Changes) != 1 {
		t.Fatalf("expected only the docs subtree, got %d changes", len(decoded.Changes))
	}
	if decoded.Changes[0].Path != "docs" {
		t.Errorf("expected docs kept as parent, got %s", decoded.Changes[0].Path)
	}
	if len(decoded.Changes[0].Children) != 1 || decoded.Changes[0].Children[0].Type != models.ChangeAdded {
		t.Errorf("expected added child kept, got %+v", decoded.Changes[0].Children)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	f := NewMarkdownFormatter(Options{})
	out, err := f.Format(fixtureResult())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	for _, want := range []string{
		"# Directory Diff:",
		"| Added | 1 |",
		"`renamed.txt`",
		"`[~]`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLFormatter(t *testing.T) {
	result := fixtureResult()
	result.Changes = append(result.Changes, models.Change{
		Path: "evil<script>.txt",
		Kind: models.KindFile,
		Type: models.ChangeAdded,
	})

	f := NewHTMLFormatter(Options{})
	out, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Errorf("expected standalone html document:\n%s", out)
	}
	if strings.Contains(out, "evil<script>") {
		t.Error("paths must be html-escaped")
	}
	if !strings.Contains(out, "evil&lt;script&gt;.txt") {
		t.Error("escaped path missing from output")
	}
	if !strings.Contains(out, `class="moved"`) {
		t.Errorf("change type classes missing:\n%s", out)
	}
}
