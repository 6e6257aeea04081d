// This tool converts a wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"

	"github.com/cwbudde/wavv"
)

var flagPath = flag.String("path", "", "The path to the wav file to convert to aiff")

func main() {
	flag.Parse()

	if *flagPath == "" {
		fmt.Println("You must set the -path flag")
		os.Exit(1)
	}

	outPath, err := convert(*flagPath)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)
}

func convert(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s - %w", path, err)
	}

	w, err := wavv.FromBytes(buf)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s - %w", path, err)
	}

	outPath := aiffPath(path)

	outFile, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s - %w", outPath, err)
	}
	defer outFile.Close()

	intBuf := w.IntBuffer()
	if w.Format.BitDepth == 8 {
		// aiff stores 8-bit samples signed
		for i := range intBuf.Data {
			intBuf.Data[i] -= 128
		}
	}

	encoder := aiff.NewEncoder(outFile,
		int(w.Format.SampleRate),
		int(w.Format.BitDepth),
		int(w.Format.NumChannels))

	if err := encoder.Write(intBuf); err != nil {
		return "", fmt.Errorf("failed to write audio buffer - %w", err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize %s - %w", outPath, err)
	}

	return outPath, nil
}

func aiffPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".aif"
}
