package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var defaults = []byte(`
format: plain
line_numbers: false
count: false
`)

func TestLoadOptions_DefaultsOnly(t *testing.T) {
	opts, err := LoadOptions(defaults, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if opts.Format != FormatPlain || opts.WithLineNumbers() || opts.CountOnly() {
		t.Fatalf("defaults not loaded correctly: %+v", opts)
	}
}

func TestLoadOptions_OverlayFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "opts.yaml")
	os.WriteFile(f, []byte(`
format: TABLE
line_numbers: true
`), 0o644)
	opts, err := LoadOptions(defaults, f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if opts.Format != FormatTable {
		t.Fatalf("format not overridden: %q", opts.Format)
	}
	if !opts.WithLineNumbers() {
		t.Fatalf("line_numbers not overridden")
	}
	if opts.Count == nil || opts.CountOnly() {
		t.Fatalf("count lost from defaults: %+v", opts.Count)
	}
}

func TestLoadOptions_MissingFile(t *testing.T) {
	_, err := LoadOptions(defaults, filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestLoadOptions_BadYAML_ErrorMentionsFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "broken.yaml")
	os.WriteFile(f, []byte("format: [plain\n"), 0o644)
	_, err := LoadOptions(defaults, f)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("error should mention the file, got: %v", err)
	}
}

func TestLoadOptions_FormatMustBeScalar(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "opts.yaml")
	os.WriteFile(f, []byte("format:\n  name: table\n"), 0o644)
	if _, err := LoadOptions(defaults, f); err == nil {
		t.Fatalf("expected error for mapping format")
	}
}

func TestLoadOptions_BadDefaults(t *testing.T) {
	_, err := LoadOptions([]byte("format: [x"), "")
	if err == nil || !strings.HasPrefix(err.Error(), "defaults:") {
		t.Fatalf("expected defaults error, got %v", err)
	}
}

func TestMergeOptions_EmptyOverlayKeepsBase(t *testing.T) {
	yes := true
	base := Options{Format: FormatJSON, Count: &yes}
	got := MergeOptions(base, Options{})
	if got.Format != FormatJSON || !got.CountOnly() || got.LineNumbers != nil {
		t.Fatalf("unexpected merge: %+v", got)
	}
}
