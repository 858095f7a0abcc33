package cmd

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"short unchanged", "abc", 10, "abc"},
		{"exact length unchanged", "abcdefghij", 10, "abcdefghij"},
		{"long gets ellipsis", "abcdefghijk", 10, "abcdefg..."},
		{"cut lands after a multibyte rune", "abcdef±ghijkl", 10, "abcdef±..."},
		{"all multibyte", strings.Repeat("é", 12), 10, strings.Repeat("é", 7) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.s, tt.n)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) = %q is not valid UTF-8", tt.s, tt.n, got)
			}
		})
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(nil); got != "-" {
		t.Errorf("orDash(nil) = %q, want -", got)
	}
	if got := orDash([]string{"metric_present", "scope_present"}); got != "metric_present, scope_present" {
		t.Errorf("orDash = %q", got)
	}
}
