package apply

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"xlstyle/config"
	"xlstyle/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create script: %v", err)
	}
	return path
}

func checkStyleSheet(t *testing.T, path string) {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		t.Fatalf("output %s is not readable: %v", path, err)
	}
	if root := doc.Root(); root == nil || root.Tag != "styleSheet" {
		t.Fatalf("output %s has unexpected root", path)
	}
}

func TestProcess_NonExistentPath(t *testing.T) {
	ctx, env := setupTestEnv(t)

	err := process(ctx, "/nonexistent/path/script.yaml", t.TempDir(), env.Log)
	if err == nil {
		t.Fatal("Expected error for non-existent path, got nil")
	}
	if !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("Expected error containing 'input source was not found', got: %v", err)
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, env := setupTestEnv(t)
	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	tmpDir := t.TempDir()
	if err := process(cancelCtx, tmpDir, tmpDir, env.Log); err != context.Canceled {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestProcess_SingleScript(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src := writeScript(t, t.TempDir(), "Report.yaml", sampleScript)
	dst := t.TempDir()

	if err := process(ctx, src, dst, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	out := filepath.Join(dst, "report.styles.xml")
	checkStyleSheet(t, out)
	if _, err := os.Stat(listingPath(out)); !os.IsNotExist(err) {
		t.Error("listing written without being requested")
	}

	// second run must not clobber existing output
	if err := process(ctx, src, dst, env.Log); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("process() error = %v, want already exists", err)
	}
	env.Overwrite = true
	if err := process(ctx, src, dst, env.Log); err != nil {
		t.Errorf("process() with overwrite error = %v", err)
	}
}

func TestProcess_InvalidScript(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src := writeScript(t, t.TempDir(), "bad.yaml", "sheets:\n  - name: A\n    ranges:\n      - range: A1\n        use: nope\n")
	dst := t.TempDir()

	err := process(ctx, src, dst, env.Log)
	if err == nil || !strings.Contains(err.Error(), "unknown style") {
		t.Fatalf("process() error = %v, want unknown style", err)
	}
	if entries, _ := os.ReadDir(dst); len(entries) != 0 {
		t.Errorf("destination has %d entries after failure", len(entries))
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, env := setupTestEnv(t)
	srcDir := t.TempDir()
	dst := t.TempDir()

	writeScript(t, srcDir, "a.yaml", sampleScript)
	writeScript(t, srcDir, filepath.Join("sub", "b.yml"), sampleScript)
	writeScript(t, srcDir, "readme.txt", "not a script")
	writeScript(t, srcDir, "broken.yaml", "sheets: [\n")

	// broken scripts are logged, the walk goes on
	if err := process(ctx, srcDir, dst, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	checkStyleSheet(t, filepath.Join(dst, "a.styles.xml"))
	checkStyleSheet(t, filepath.Join(dst, "sub", "b.styles.xml"))
}

func TestProcess_DirectoryWithTail(t *testing.T) {
	ctx, env := setupTestEnv(t)
	srcDir := t.TempDir()

	err := process(ctx, filepath.Join(srcDir, "missing.yaml"), t.TempDir(), env.Log)
	if err == nil || !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("process() error = %v, want input source was not found", err)
	}
}

func createZip(t *testing.T, path string, files map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProcess_Archive(t *testing.T) {
	ctx, env := setupTestEnv(t)
	arc := filepath.Join(t.TempDir(), "scripts.zip")
	createZip(t, arc, map[string]string{
		"q1/report.yaml":  sampleScript,
		"q2/report.yaml":  sampleScript,
		"q1/notes.txt":    "skip me",
		"q1/summary.yaml": "title: Summary\nsheets:\n  - name: S\n",
	})

	dst := t.TempDir()
	if err := process(ctx, filepath.Join(arc, "q1"), dst, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	checkStyleSheet(t, filepath.Join(dst, "q1", "report.styles.xml"))
	checkStyleSheet(t, filepath.Join(dst, "q1", "summary.styles.xml"))
	if _, err := os.Stat(filepath.Join(dst, "q2")); !os.IsNotExist(err) {
		t.Error("scripts outside of requested archive path were processed")
	}
}

func TestProcess_Listing(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Listing = true
	src := writeScript(t, t.TempDir(), "report.yaml", sampleScript)
	dst := t.TempDir()

	if err := process(ctx, src, dst, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dst, "report.cells.txt"))
	if err != nil {
		t.Fatalf("listing was not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 9 {
		t.Fatalf("listing has %d lines, want 9:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "'Data'!A1\t") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[8], "'Notes'!B2\t1\t") {
		t.Errorf("last line = %q", lines[8])
	}
}

func TestProcess_StaleListing(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Listing = true
	src := writeScript(t, t.TempDir(), "report.yaml", sampleScript)
	dst := t.TempDir()
	stale := writeScript(t, dst, "report.cells.txt", "old listing\n")

	if err := process(ctx, src, dst, env.Log); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("process() error = %v, want already exists", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "report.styles.xml")); !os.IsNotExist(err) {
		t.Error("style sheet written although listing could not be")
	}
	if data, err := os.ReadFile(stale); err != nil || string(data) != "old listing\n" {
		t.Errorf("existing listing changed: %q, %v", data, err)
	}

	env.Overwrite = true
	if err := process(ctx, src, dst, env.Log); err != nil {
		t.Fatalf("process() with overwrite error = %v", err)
	}
	checkStyleSheet(t, filepath.Join(dst, "report.styles.xml"))
}

func TestProcess_NameTemplate(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.Cfg.Styling.OutputNameTemplate = "{{ .Title | lower }}/{{ len .Sheets }}-{{ .SourceFile }}"
	src := writeScript(t, t.TempDir(), "report.yaml", sampleScript)
	dst := t.TempDir()

	if err := process(ctx, src, dst, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	checkStyleSheet(t, filepath.Join(dst, "quarterly-report", "2-report.styles.xml"))
}

func newApplyCommand() *cli.Command {
	return &cli.Command{
		Name: "apply",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "overwrite"},
			&cli.BoolFlag{Name: "listing"},
		},
		Action: Run,
	}
}

func TestRun(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	src := writeScript(t, t.TempDir(), "report.yaml", sampleScript)
	dst := t.TempDir()

	if err := newApplyCommand().Run(ctx, []string{"apply", "--listing", src, dst}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	checkStyleSheet(t, filepath.Join(dst, "report.styles.xml"))
	if _, err := os.Stat(filepath.Join(dst, "report.cells.txt")); err != nil {
		t.Errorf("listing flag ignored: %v", err)
	}

	if err := newApplyCommand().Run(ctx, []string{"apply"}); err == nil {
		t.Error("Run() without script succeeded")
	}
}
