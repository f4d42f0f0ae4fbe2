package mintpy

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildLayout(t *testing.T) {
	output := t.TempDir()

	hyp3Dir, err := BuildLayout(output, []string{"A", "B"}, testLogger())
	if err != nil {
		t.Fatalf("BuildLayout failed: %v", err)
	}

	if hyp3Dir != filepath.Join(output, "hyp3") {
		t.Errorf("hyp3 dir = %s, want %s", hyp3Dir, filepath.Join(output, "hyp3"))
	}

	for _, name := range []string{"A", "B"} {
		info, err := os.Stat(filepath.Join(hyp3Dir, name))
		if err != nil {
			t.Fatalf("expected directory %s: %v", name, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", name)
		}
	}
}

func TestBuildLayout_DestructiveAndIdempotent(t *testing.T) {
	output := t.TempDir()

	if _, err := BuildLayout(output, []string{"A"}, testLogger()); err != nil {
		t.Fatalf("first BuildLayout failed: %v", err)
	}

	// A leftover from a previous run must not survive the rebuild.
	leftover := filepath.Join(output, "hyp3", "A", "stale.tif")
	if err := os.WriteFile(leftover, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := BuildLayout(output, []string{"A"}, testLogger()); err != nil {
		t.Fatalf("second BuildLayout failed: %v", err)
	}

	if _, err := os.Stat(leftover); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed by rebuild", leftover)
	}

	entries, err := os.ReadDir(filepath.Join(output, "hyp3"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "A" {
		t.Errorf("hyp3 tree after rebuild = %v, want [A]", entries)
	}
}

func TestWriteTemplate(t *testing.T) {
	output := t.TempDir()

	templatePath, err := WriteTemplate(output, testLogger())
	if err != nil {
		t.Fatalf("WriteTemplate failed: %v", err)
	}

	if templatePath != filepath.Join(output, "mintpy", "template.txt") {
		t.Errorf("template path = %s", templatePath)
	}

	data, err := os.ReadFile(templatePath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	for _, key := range []string{
		"mintpy.load.processor",
		"mintpy.load.unwFile",
		"mintpy.load.corFile",
		"mintpy.load.demFile",
		"mintpy.load.incAngleFile",
	} {
		if !strings.Contains(content, key) {
			t.Errorf("template missing key %s:\n%s", key, content)
		}
	}

	wantGlob := filepath.Join(output, "hyp3", "*", "*unw_phase.tif")
	if !strings.Contains(content, wantGlob) {
		t.Errorf("template missing glob %s:\n%s", wantGlob, content)
	}
}

func TestWriteTemplate_RecreatesDirectory(t *testing.T) {
	output := t.TempDir()

	if _, err := WriteTemplate(output, testLogger()); err != nil {
		t.Fatalf("first WriteTemplate failed: %v", err)
	}

	stale := filepath.Join(output, "mintpy", "stale.cfg")
	if err := os.WriteFile(stale, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := WriteTemplate(output, testLogger()); err != nil {
		t.Fatalf("second WriteTemplate failed: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed by rebuild", stale)
	}
}
