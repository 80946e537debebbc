package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// readItems reads newline-delimited items from r. Each line is one opaque
// item; empty lines are skipped. Lines are treated as raw bytes.
func readItems(r io.Reader) ([][]byte, error) {
	var items [][]byte

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		item := make([]byte, len(line))
		copy(item, line)
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}

// itemSource opens the items file named by args[idx], or stdin when no file
// argument is present.
func itemSource(args []string, idx int) (io.ReadCloser, error) {
	if len(args) <= idx {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[idx])
	if err != nil {
		return nil, fmt.Errorf("opening items file: %w", err)
	}
	return f, nil
}
