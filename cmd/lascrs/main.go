package main

import (
	"fmt"
	"os"

	"github.com/pspoerri/lascrs/crs"
	"github.com/pspoerri/lascrs/lasfile"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: lascrs <file.las> [more.las ...]\n\n")
		fmt.Fprintf(os.Stderr, "Print the CRS (EPSG codes) declared in LAS file headers.\n")
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range os.Args[1:] {
		if err := report(path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func report(path string) error {
	h, err := lasfile.Open(path)
	if err != nil {
		return err
	}

	c, err := crs.Extract(h)
	if err != nil {
		return err
	}
	if c == nil {
		fmt.Printf("%s: no CRS record\n", path)
		return nil
	}

	line := fmt.Sprintf("%s: %s", path, c)
	if name := crs.Name(c.Horizontal()); name != "" {
		line += fmt.Sprintf(" (%s)", name)
	}
	if v, ok := c.Vertical(); ok {
		if name := crs.Name(v); name != "" {
			line += fmt.Sprintf(", vertical %s", name)
		}
	}
	fmt.Println(line)
	return nil
}
