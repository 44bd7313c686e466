// Command archive-files packs files into a zip archive, one entry per file
// named by its base name.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	output := flag.String("o", defaultOutput, "Output zip file")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options] file...\n", os.Args[0])
		flag.PrintDefaults()
		return errNoFiles
	}

	stats, err := archiveFiles(*output, files, *verbose)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s: %d files, %d bytes\n", *output, stats.files, stats.bytes)
	return nil
}
