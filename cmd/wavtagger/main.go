// This command line tool helps the user tag wav files by injecting metadata in
// the file in a safe way.
// All files are copied and stored in the wavtagger folder by the original files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cwbudde/wavv"
)

var (
	flagFileToTag   = flag.String("file", "", "Path to the wave file to tag")
	flagDirToTag    = flag.String("dir", "", "Directory containing all the wav files to tag")
	flagTitleRegexp = flag.String("regexp", "", `submatch regexp to use to set the title dynamically by extracting it from the filename (ignoring the extension), example: 'my_files_\d\d_(.*)'`)
	//
	flagTitle     = flag.String("title", "", "File's title")
	flagArtist    = flag.String("artist", "", "File's artist")
	flagComments  = flag.String("comments", "", "File's comments")
	flagCopyright = flag.String("copyright", "", "File's copyright")
	flagGenre     = flag.String("genre", "", "File's genre")
	// TODO: add other supported metadata types.
)

func main() {
	flag.Parse()

	if *flagFileToTag == "" && *flagDirToTag == "" {
		fmt.Println("You need to pass -file or -dir to indicate what file or folder content to tag.")
		os.Exit(1)
	}

	tags := &wavv.Metadata{
		Title:     *flagTitle,
		Artist:    *flagArtist,
		Comments:  *flagComments,
		Copyright: *flagCopyright,
		Genre:     *flagGenre,
	}

	var titleRe *regexp.Regexp

	if *flagTitleRegexp != "" {
		var err error

		titleRe, err = regexp.Compile(*flagTitleRegexp)
		if err != nil {
			fmt.Printf("Invalid -regexp value - %v\n", err)
			os.Exit(1)
		}
	}

	if *flagFileToTag != "" {
		err := tagFile(*flagFileToTag, tags, titleRe)
		if err != nil {
			fmt.Printf("Something went wrong when tagging %s - error: %v\n", *flagFileToTag, err)
			os.Exit(1)
		}
	}

	if *flagDirToTag != "" {
		fileInfos, _ := os.ReadDir(*flagDirToTag)
		for _, fi := range fileInfos {
			if strings.HasPrefix(
				strings.ToLower(filepath.Ext(fi.Name())),
				".wav") {
				filePath := filepath.Join(*flagDirToTag, fi.Name())

				err := tagFile(filePath, tags, titleRe)
				if err != nil {
					fmt.Printf("Something went wrong tagging %s - %v\n", filePath, err)
				}
			}
		}
	}
}

// tagFile merges the non-empty tag fields into the file's INFO metadata and
// writes the result to a wavtagger folder next to the original.
func tagFile(path string, tags *wavv.Metadata, titleRe *regexp.Regexp) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s - %w", path, err)
	}

	w, err := wavv.FromBytes(buf)
	if err != nil {
		return fmt.Errorf("failed to parse %s - %w", path, err)
	}

	md, err := w.Metadata()
	if err != nil {
		return fmt.Errorf("failed to read metadata of %s - %w", path, err)
	}

	if md == nil {
		md = &wavv.Metadata{}
	}

	if tags.Title != "" {
		md.Title = tags.Title
	}

	if tags.Artist != "" {
		md.Artist = tags.Artist
	}

	if tags.Comments != "" {
		md.Comments = tags.Comments
	}

	if tags.Copyright != "" {
		md.Copyright = tags.Copyright
	}

	if tags.Genre != "" {
		md.Genre = tags.Genre
	}

	if titleRe != nil {
		filename := filepath.Base(path)
		filename = filename[:len(filename)-len(filepath.Ext(path))]

		if matches := titleRe.FindStringSubmatch(filename); len(matches) > 1 {
			md.Title = matches[1]
		}
	}

	w.SetMetadata(md)

	out, err := w.ToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize %s - %w", path, err)
	}

	outputDir := filepath.Join(filepath.Dir(path), "wavtagger")
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	outPath := filepath.Join(outputDir, filepath.Base(path))
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("couldn't write %s %w", outPath, err)
	}

	return nil
}
