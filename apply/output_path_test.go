package apply

import (
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"name", []string{"name"}},
		{filepath.Join("a", "b", "c"), []string{"a", "b", "c"}},
		{filepath.Join("a", "b") + string(filepath.Separator), []string{"a", "b"}},
		{filepath.Join("a", "..", "b"), []string{"b"}},
	}
	for _, tt := range tests {
		if got := splitPath(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListingPath(t *testing.T) {
	if got, want := listingPath(filepath.Join("out", "r.styles.xml")), filepath.Join("out", "r.cells.txt"); got != want {
		t.Errorf("listingPath() = %q, want %q", got, want)
	}
}

func TestBuildOutputPath_BadTemplate(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Cfg.Styling.OutputNameTemplate = "{{ .Missing"

	s, err := LoadScript(strings.NewReader(sampleScript))
	if err != nil {
		t.Fatal(err)
	}
	wb, err := Build(s, env.Log)
	if err != nil {
		t.Fatal(err)
	}
	got := buildOutputPath(wb, filepath.Join("dir", "Book One.yaml"), "dst", env)
	if want := filepath.Join("dst", "dir", "book-one.styles.xml"); got != want {
		t.Errorf("buildOutputPath() = %q, want default %q", got, want)
	}
}
