// Command clovy is the thin CLI front end for the container codec: it
// opens a file, decodes it, and reports what it found. It carries no
// domain logic of its own.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ryi3r/Clovy"
)

func main() {
	if len(os.Args) != 3 || os.Args[1] != "decode" {
		fmt.Fprintln(os.Stderr, "usage: clovy decode <path>")
		os.Exit(2)
	}
	if err := decode(os.Args[2]); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

func decode(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := clovy.NewReader(f)
	dir, err := clovy.Decode(r)
	if err != nil {
		return err
	}

	for _, chunk := range dir.Chunks {
		log.Printf("chunk %s: %d bytes [%d:%d]", chunk.Name, chunk.Length, chunk.StartOffset, chunk.EndOffset)
	}
	log.Printf("version: %d.%d.%d.%d (format_id=%d)",
		r.Version.Major, r.Version.Minor, r.Version.Release, r.Version.Build, r.Version.FormatID)
	return nil
}
