package webfont

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Accumulator collects the metrics records of one directory run in processing
// order and tracks which base family names were already measured. It is scoped
// to a single directory and is not safe for concurrent use; files are
// processed one at a time.
type Accumulator struct {
	seen    map[string]bool
	records []Metrics
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{seen: map[string]bool{}}
}

// Seen reports whether a base family name was measured before.
func (acc *Accumulator) Seen(base string) bool {
	return acc.seen[base]
}

// Add appends the metrics for a base family name. It returns false and
// discards the record when the family was measured before; the first regular
// variant encountered wins.
func (acc *Accumulator) Add(base string, m Metrics) bool {
	if acc.seen[base] {
		return false
	}
	acc.seen[base] = true
	acc.records = append(acc.records, m)
	return true
}

// Records returns the collected records in processing order.
func (acc *Accumulator) Records() []Metrics {
	return acc.records
}

// Batch measures the regular variant of each font family found in a directory.
// Per-file failures are logged to Warning and skipped; they never abort the
// run.
type Batch struct {
	Warning *log.Logger

	open func(path string) (Resource, error)
}

// NewBatch returns a batch processor. A nil warning logger discards warnings.
func NewBatch(warning *log.Logger) *Batch {
	if warning == nil {
		warning = log.New(io.Discard, "", 0)
	}
	return &Batch{
		Warning: warning,
		open:    openResource,
	}
}

func openResource(path string) (Resource, error) {
	sfnt, err := LoadFont(path, 0)
	if err != nil {
		return nil, err
	}
	return NewResource(sfnt), nil
}

// ProcessDir scans a directory for TTF and OTF files in lexical order and
// measures the first regular variant of each font family. Bold, italic and
// other styled variants are skipped so that family metrics are never derived
// from a non-regular weight.
func (b *Batch) ProcessDir(dir string) ([]Metrics, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	acc := NewAccumulator()
	for _, entry := range entries {
		if entry.IsDir() || !isFontFile(entry.Name()) {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !IsRegular(stem) {
			continue
		}
		base := BaseName(stem)
		if acc.Seen(base) {
			continue
		}

		res, err := b.open(filepath.Join(dir, entry.Name()))
		if err != nil {
			b.Warning.Printf("%s: %v", entry.Name(), err)
			continue
		}
		acc.Add(base, Measure(res, FamilyName(res, stem)))
	}
	return acc.Records(), nil
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}
