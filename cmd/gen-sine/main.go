// This tool generates a mono 16-bit sine wav file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"

	"github.com/cwbudde/wavv"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	const sampleRate = 48000

	numSamples := int(sampleRate * *length)
	buf := &audio.Float32Buffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:   make([]float32, numSamples),
	}

	for i := range buf.Data {
		buf.Data[i] = float32(math.Sin(float64(i) / sampleRate * *frequency * 2 * math.Pi))
	}

	w, err := wavv.FromFloat32Buffer(buf, 16)
	if err != nil {
		return err
	}

	out, err := w.ToBytes()
	if err != nil {
		return err
	}

	err = os.WriteFile(*output, out, 0o644)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	return nil
}
