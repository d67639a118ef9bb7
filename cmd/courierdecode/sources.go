package main

import (
	"fmt"
	"io"
	"os"
	"time"
)

var timeNow = time.Now

// sourceHandle pairs a readable input with a name used in diagnostics.
type sourceHandle struct {
	name   string
	reader io.Reader
}

// openSources resolves the decode command's positional arguments into
// readable sources. With no arguments it falls back to stdin; otherwise
// each argument is treated as a file path or glob pattern via
// discoverFiles.
func openSources(patterns []string) ([]sourceHandle, func(), error) {
	if len(patterns) == 0 {
		return []sourceHandle{{name: "stdin", reader: os.Stdin}}, func() {}, nil
	}

	files, err := discoverFiles(patterns)
	if err != nil {
		return nil, nil, fmt.Errorf("discover files: %w", err)
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no files matched: %v", patterns)
	}

	var sources []sourceHandle
	var opened []*os.File
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			for _, o := range opened {
				o.Close()
			}
			return nil, nil, fmt.Errorf("open %s: %w", path, err)
		}
		opened = append(opened, f)
		sources = append(sources, sourceHandle{name: path, reader: f})
	}

	closeAll := func() {
		for _, o := range opened {
			o.Close()
		}
	}
	return sources, closeAll, nil
}
