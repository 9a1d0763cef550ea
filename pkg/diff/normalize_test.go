package diff

import "testing"

func TestNormalizeIdentity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "docs/readme.md", "docs/readme.md"},
		{"dot_prefix", "./docs/readme.md", "docs/readme.md"},
		{"repeated_dot_segments", "./a/./b/./c", "a/b/c"},
		{"duplicate_slashes", "a//b///c", "a/b/c"},
		{"trailing_slash", "docs/", "docs"},
		{"bare_dot", ".", ""},
		{"empty", "", ""},
		{"absolute", "/var/log/syslog", "/var/log/syslog"},
		{"absolute_with_dot", "/var/./log", "/var/log"},
		{"case_preserved", "Docs/README.md", "Docs/README.md"},
		{"dotdot_untouched", "a/../b", "a/../b"},
		{"hidden_file", ".config", ".config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeIdentity(tt.raw); got != tt.want {
				t.Errorf("NormalizeIdentity(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdentityIdempotent(t *testing.T) {
	inputs := []string{"./a/b", "a//b/", "/x/./y", "plain.txt", "."}
	for _, raw := range inputs {
		once := NormalizeIdentity(raw)
		if twice := NormalizeIdentity(once); twice != once {
			t.Errorf("not idempotent for %q: %q -> %q", raw, once, twice)
		}
	}
}

func TestParentIdentity(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"a/b/c", "a/b"},
		{"a/b", "a"},
		{"a", ""},
		{"", ""},
		{"/var/log", "/var"},
		{"/var", ""},
	}

	for _, tt := range tests {
		if got := parentIdentity(tt.identity); got != tt.want {
			t.Errorf("parentIdentity(%q) = %q, want %q", tt.identity, got, tt.want)
		}
	}
}

func TestIdentityDepth(t *testing.T) {
	tests := []struct {
		identity string
		want     int
	}{
		{"", 0},
		{"a", 1},
		{"a/b", 2},
		{"a/b/c", 3},
		{"/var/log", 2},
	}

	for _, tt := range tests {
		if got := identityDepth(tt.identity); got != tt.want {
			t.Errorf("identityDepth(%q) = %d, want %d", tt.identity, got, tt.want)
		}
	}
}
