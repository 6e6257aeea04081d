// This tool reads metadata from the passed wav file if available.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavv"
)

const missingPathMessage = "You must pass the pass the path of the file to decode"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	buf, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	w, err := wavv.FromBytes(buf)
	if err != nil {
		return err
	}

	md, err := w.Metadata()
	if err != nil {
		return err
	}

	if md == nil {
		fmt.Fprintln(out, "No metadata present")
	} else {
		fmt.Fprintf(out, "Artist: %s\n", md.Artist)
		fmt.Fprintf(out, "Title: %s\n", md.Title)
		fmt.Fprintf(out, "Comments: %s\n", md.Comments)
		fmt.Fprintf(out, "Copyright: %s\n", md.Copyright)
		fmt.Fprintf(out, "CreationDate: %s\n", md.CreationDate)
		fmt.Fprintf(out, "Engineer: %s\n", md.Engineer)
		fmt.Fprintf(out, "Technician: %s\n", md.Technician)
		fmt.Fprintf(out, "Genre: %s\n", md.Genre)
		fmt.Fprintf(out, "Keywords: %s\n", md.Keywords)
		fmt.Fprintf(out, "Medium: %s\n", md.Medium)
		fmt.Fprintf(out, "Product: %s\n", md.Product)
		fmt.Fprintf(out, "Subject: %s\n", md.Subject)
		fmt.Fprintf(out, "Software: %s\n", md.Software)
		fmt.Fprintf(out, "Source: %s\n", md.Source)
		fmt.Fprintf(out, "Location: %s\n", md.Location)
		fmt.Fprintf(out, "TrackNbr: %s\n", md.TrackNbr)
	}

	si, err := w.SamplerInfo()
	if err != nil {
		return err
	}

	if si != nil {
		fmt.Fprintln(out, "Sample Info:")
		fmt.Fprintf(out, "%+v\n", si)

		for i, l := range si.Loops {
			fmt.Fprintf(out, "\tloop [%d]:\t%+v\n", i, l)
		}
	}

	return nil
}
