package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/wavv"
)

func writeTestWav(t *testing.T, md *wavv.Metadata) string {
	t.Helper()

	w := wavv.FromSamples(wavv.Samples16{0, 0, 1, -1}, 44100, 2)
	w.SetMetadata(md)

	buf, err := w.ToBytes()
	if err != nil {
		t.Fatalf("encode test file: %v", err)
	}

	path := filepath.Join(t.TempDir(), "test.wav")
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	return path
}

func TestRunPrintsMetadata(t *testing.T) {
	path := writeTestWav(t, &wavv.Metadata{Artist: "Bill Evans", Title: "Peace Piece"})

	var out bytes.Buffer

	err := run([]string{path}, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Artist: Bill Evans") {
		t.Fatalf("artist missing from output:\n%s", got)
	}

	if !strings.Contains(got, "Title: Peace Piece") {
		t.Fatalf("title missing from output:\n%s", got)
	}
}

func TestRunNoMetadata(t *testing.T) {
	path := writeTestWav(t, nil)

	var out bytes.Buffer

	err := run([]string{path}, &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if !strings.Contains(out.String(), "No metadata present") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunMissingPath(t *testing.T) {
	err := run(nil, &bytes.Buffer{})
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("expected errMissingPath, got %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	err := run([]string{filepath.Join(t.TempDir(), "nope.wav")}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
