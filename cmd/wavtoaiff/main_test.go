package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/wavv"
)

func TestAiffPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wav extension", "/tmp/take.wav", "/tmp/take.aif"},
		{"uppercase extension", "/tmp/take.WAV", "/tmp/take.aif"},
		{"no extension", "/tmp/take", "/tmp/take.aif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aiffPath(tt.in); got != tt.want {
				t.Fatalf("aiffPath(%q)=%q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertWritesAiffFile(t *testing.T) {
	dir := t.TempDir()

	w := wavv.FromSamples(wavv.Samples16{0, 1, -1, 32767}, 44100, 2)

	buf, err := w.ToBytes()
	if err != nil {
		t.Fatalf("encode test file: %v", err)
	}

	inPath := filepath.Join(dir, "in.wav")
	if err := os.WriteFile(inPath, buf, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	outPath, err := convert(inPath)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	if outPath != filepath.Join(dir, "in.aif") {
		t.Fatalf("unexpected output path %q", outPath)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	if len(out) < 12 || !bytes.Equal(out[0:4], []byte("FORM")) || !bytes.Equal(out[8:12], []byte("AIFF")) {
		t.Fatalf("output is not an aiff file: % x", out[:min(len(out), 12)])
	}
}

func TestConvertMissingInput(t *testing.T) {
	_, err := convert(filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
}
