package output

import (
	"strings"
	"testing"

	"github.com/sdejongh/treediff/pkg/models"
)

func sizePtr(v int64) *int64 { return &v }

// fixtureResult builds a small result with one change of each flavor
func fixtureResult() *models.DiffResult {
	result := &models.DiffResult{
		Changes: []models.Change{
			{
				Path: "docs",
				Kind: models.KindDirectory,
				Type: models.ChangeModified,
				Children: []models.Change{
					{
						Path:    "docs/changelog.md",
						Kind:    models.KindFile,
						Type:    models.ChangeAdded,
						Current: &models.Entry{Path: "docs/changelog.md", Size: sizePtr(512)},
					},
				},
			},
			{
				Path:       "renamed.txt",
				Kind:       models.KindFile,
				Type:       models.ChangeMoved,
				MovedFrom:  "original.txt",
				Similarity: 0.92,
			},
			{
				Path:     "cache",
				Kind:     models.KindDirectory,
				Type:     models.ChangeTypeChanged,
				FromKind: models.KindFile,
				ToKind:   models.KindDirectory,
			},
			{
				Path:     "old.log",
				Kind:     models.KindFile,
				Type:     models.ChangeRemoved,
				Previous: &models.Entry{Path: "old.log", Size: sizePtr(100)},
			},
		},
		Metadata: models.DiffMetadata{ComparisonRoot: "/srv/data"},
	}
	for i := range result.Changes {
		result.Summary.Record(&result.Changes[i])
	}
	return result
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter(Options{})
	out, err := f.Format(fixtureResult())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	wantLines := []string{
		"/srv/data/",
		"[M] docs/",
		"[+] docs/changelog.md  (+512 B)",
		"[~] renamed.txt  <- original.txt (92% similar)",
		"[T] cache/  (file -> directory)",
		"[-] old.log  (-100 B)",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Nested change is indented one level deeper than its parent
	if !strings.Contains(out, "    [+] docs/changelog.md") {
		t.Errorf("nested change not indented:\n%s", out)
	}

	if !strings.Contains(out, "Changes Summary:") {
		t.Errorf("summary header missing:\n%s", out)
	}
	// The modified count covers files and directories alike and must
	// not be labeled as directories only.
	if !strings.Contains(out, "1 modified (M)") || strings.Contains(out, "directories modified") {
		t.Errorf("modified summary line wrong:\n%s", out)
	}
	if !strings.Contains(out, "Total: 5 changes") {
		t.Errorf("total line wrong:\n%s", out)
	}
}

func TestTextFormatterNoChanges(t *testing.T) {
	result := &models.DiffResult{}

	f := NewTextFormatter(Options{})
	out, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if !strings.Contains(out, "No changes detected") {
		t.Errorf("expected no-changes line:\n%s", out)
	}
	if !strings.HasPrefix(out, "./\n") {
		t.Errorf("empty root should render as ./:\n%s", out)
	}
}

func TestTextFormatterStatsOnly(t *testing.T) {
	f := NewTextFormatter(Options{StatsOnly: true})
	out, err := f.Format(fixtureResult())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if strings.Contains(out, "renamed.txt") {
		t.Errorf("stats-only output must not list changes:\n%s", out)
	}
	if !strings.Contains(out, "Changes Summary:") {
		t.Errorf("stats-only output must keep the summary:\n%s", out)
	}
}

func TestTextFormatterShowOnly(t *testing.T) {
	f := NewTextFormatter(Options{ShowOnly: []models.ChangeType{models.ChangeMoved}})
	out, err := f.Format(fixtureResult())
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if !strings.Contains(out, "renamed.txt") {
		t.Errorf("moved change should be visible:\n%s", out)
	}
	if strings.Contains(out, "old.log") {
		t.Errorf("removed change should be filtered:\n%s", out)
	}
	// Summary is computed upstream and never re-filtered
	if !strings.Contains(out, "Total: 5 changes") {
		t.Errorf("summary must stay complete under show-only:\n%s", out)
	}
}

func TestTextFormatterHumanSizes(t *testing.T) {
	result := &models.DiffResult{
		Changes: []models.Change{
			{
				Path:    "big.iso",
				Kind:    models.KindFile,
				Type:    models.ChangeAdded,
				Current: &models.Entry{Path: "big.iso", Size: sizePtr(2_000_000)},
			},
		},
	}
	result.Summary.Record(&result.Changes[0])

	f := NewTextFormatter(Options{HumanSizes: true})
	out, err := f.Format(result)
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if !strings.Contains(out, "+2.0 MB") {
		t.Errorf("expected humanized size:\n%s", out)
	}
	if strings.Contains(out, "2000000") {
		t.Errorf("raw byte count should not appear:\n%s", out)
	}
}

func TestChangeSymbols(t *testing.T) {
	tests := []struct {
		t    models.ChangeType
		want string
	}{
		{models.ChangeAdded, "[+]"},
		{models.ChangeRemoved, "[-]"},
		{models.ChangeModified, "[M]"},
		{models.ChangeMoved, "[~]"},
		{models.ChangeTypeChanged, "[T]"},
		{models.ChangeUnchanged, "[=]"},
	}
	for _, tt := range tests {
		if got := changeSymbol(tt.t); got != tt.want {
			t.Errorf("changeSymbol(%s) = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestFormatSizeChange(t *testing.T) {
	tests := []struct {
		delta int64
		human bool
		want  string
	}{
		{0, false, ""},
		{150, false, "+150 B"},
		{-75, false, "-75 B"},
		{1_500_000, true, "+1.5 MB"},
		{-1_500_000, true, "-1.5 MB"},
	}
	for _, tt := range tests {
		if got := formatSizeChange(tt.delta, tt.human); got != tt.want {
			t.Errorf("formatSizeChange(%d, %t) = %q, want %q", tt.delta, tt.human, got, tt.want)
		}
	}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"", "human", "text", "json", "markdown", "md", "html"} {
		if _, err := NewFormatter(format, Options{}); err != nil {
			t.Errorf("NewFormatter(%q) failed: %v", format, err)
		}
	}
	if _, err := NewFormatter("yaml", Options{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
