package config

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"report", "report"},
		{"q1/report", "q1report"},
		{"..hidden", "hidden"},
		{" spaced name. ", "spaced name"},
		{"", "_bad_file_name_"},
		{"/..", "_bad_file_name_"},
		{"a\x00b", "ab"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanFileName_Long(t *testing.T) {
	got := CleanFileName(strings.Repeat("ж", 150))
	if len(got) > maxFileNameLen {
		t.Errorf("len = %d, want at most %d", len(got), maxFileNameLen)
	}
	if !utf8.ValidString(got) {
		t.Error("name was cut inside of a rune")
	}
}
