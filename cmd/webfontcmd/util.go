package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/tdewolff/prompt"
)

func formatBytes(size uint64) string {
	if size < 10 {
		return fmt.Sprintf("%d B", size)
	}

	units := []string{"B", "kB", "MB", "GB", "TB", "PB", "EB"}
	scale := int(math.Floor((math.Log10(float64(size)) + math.Log10(2.0)) / 3.0))
	value := float64(size) / math.Pow10(scale*3.0)
	format := "%.0f %s"
	if value < 10.0 {
		format = "%.1f %s"
	}
	return fmt.Sprintf(format, value, units[scale])
}

// resolveFontPath returns the path itself when it exists, and otherwise tries
// to locate the name among the installed system fonts.
func resolveFontPath(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if found, err := findfont.Find(filepath.Base(path)); err == nil {
		return found
	}
	return path
}

// openOutput opens an output file for writing, asking before overwriting an
// existing file unless force is set. With appendMode the file is appended to
// instead.
func openOutput(filename string, appendMode, force bool) (io.WriteCloser, error) {
	if appendMode {
		return os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	}
	if _, err := os.Stat(filename); err == nil {
		if !force && !prompt.YesNo(fmt.Sprintf("%s already exists, overwrite?", filename), false) {
			return nil, fmt.Errorf("file already exists: %v", filename)
		}
	}
	return os.Create(filename)
}
