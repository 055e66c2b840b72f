package main

import (
	"fmt"
	"io"
	"os"

	"github.com/noto-news/noto"
)

// Run executes the compress command.
func (c *CompressCmd) Run(deps *Dependencies) error {
	content, err := readInput(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	if len(content) == 0 {
		return noto.Errorf(noto.EINVALID, "no input content")
	}

	compressed := deps.Compressor.ExtractKeyFacts(string(content), c.Category, c.MaxChars)

	fmt.Fprintf(deps.Stderr, "%d chars -> %d chars\n", len(content), len(compressed))
	fmt.Fprintln(deps.Stdout, compressed)
	return nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
