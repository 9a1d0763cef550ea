package diff

import (
	"testing"

	"github.com/sdejongh/treediff/pkg/models"
)

func sized(name string, size int64) *models.Entry {
	s := size
	return &models.Entry{Path: name, Kind: models.KindFile, Size: &s}
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		min  float64
		max  float64
	}{
		{"identical", "report.txt", "report.txt", 1.0, 1.0},
		{"both_empty", "", "", 1.0, 1.0},
		{"nothing_shared", "aaaa", "zzzz", 0.0, 0.0},
		{"small_rename", "report_v1.txt", "report_v2.txt", 0.9, 1.0},
		{"extension_change", "photo.jpeg", "photo.webp", 0.5, 0.9},
		{"unicode_rename", "café.txt", "cafe.txt", 0.8, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nameSimilarity(tt.a, tt.b)
			if got < tt.min || got > tt.max {
				t.Errorf("nameSimilarity(%q, %q) = %f, want in [%f, %f]",
					tt.a, tt.b, got, tt.min, tt.max)
			}
			// Symmetry
			if rev := nameSimilarity(tt.b, tt.a); rev != got {
				t.Errorf("asymmetric: %f vs %f", got, rev)
			}
		})
	}
}

func TestNameSimilarityOrderIndependent(t *testing.T) {
	// The score feeds the deterministic pairing order, so it must not
	// depend on which snapshot a name came from.
	pairs := [][2]string{
		{"photo.jpeg", "photo.webp"},
		{"report_q1.pdf", "zzz.bin"},
		{"a_very_long_name.txt", "name.txt"},
		{"data_2024.csv", "data_2025.csv"},
	}
	for _, p := range pairs {
		forward := nameSimilarity(p[0], p[1])
		reverse := nameSimilarity(p[1], p[0])
		if forward != reverse {
			t.Errorf("nameSimilarity(%q, %q) = %f but reversed = %f", p[0], p[1], forward, reverse)
		}
	}
}

func TestSizeSimilarity(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr int64
		want       float64
	}{
		{"equal", 100, 100, 1.0},
		{"equal_zero", 0, 0, 1.0},
		{"half", 100, 200, 0.5},
		{"half_reversed", 200, 100, 0.5},
		{"zero_vs_nonzero", 0, 50, 0.0},
		{"negative_guard", -1, 50, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sizeSimilarity(tt.prev, tt.curr); got != tt.want {
				t.Errorf("sizeSimilarity(%d, %d) = %f, want %f", tt.prev, tt.curr, got, tt.want)
			}
		})
	}
}

func TestEntrySimilarity(t *testing.T) {
	t.Run("same_name_same_size_is_certain", func(t *testing.T) {
		if got := entrySimilarity(sized("a/report.txt", 100), sized("b/report.txt", 100)); got != 1.0 {
			t.Errorf("expected 1.0, got %f", got)
		}
	})

	t.Run("equal_sizes_keep_score_above_half", func(t *testing.T) {
		got := entrySimilarity(sized("x.bin", 100), sized("completely_other.dat", 100))
		if got < 0.5 {
			t.Errorf("equal sizes must contribute 0.5, got %f", got)
		}
	})

	t.Run("different_name_and_size_scores_low", func(t *testing.T) {
		got := entrySimilarity(sized("report_q1.pdf", 100), sized("zzzz.bin", 200))
		if got >= 0.95 {
			t.Errorf("dissimilar pair scored %f, expected < 0.95", got)
		}
	})

	t.Run("missing_size_falls_back_to_name", func(t *testing.T) {
		noSize := &models.Entry{Path: "thing.txt", Kind: models.KindFile}
		got := entrySimilarity(noSize, sized("thing.txt", 12345))
		if got != 1.0 {
			t.Errorf("identical names without sizes should score 1.0, got %f", got)
		}
	})

	t.Run("bounded", func(t *testing.T) {
		pairs := [][2]*models.Entry{
			{sized("a", 1), sized("b", 1000000)},
			{sized("same", 7), sized("same", 7)},
			{sized("", 0), sized("x", 0)},
		}
		for _, p := range pairs {
			got := entrySimilarity(p[0], p[1])
			if got < 0.0 || got > 1.0 {
				t.Errorf("score %f out of [0,1] for %q/%q", got, p[0].Path, p[1].Path)
			}
		}
	})
}
