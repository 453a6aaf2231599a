package webfont

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func TestAccumulatorDedup(t *testing.T) {
	acc := NewAccumulator()
	test.T(t, acc.Add("Roboto", Metrics{FontFamily: "Roboto"}), true)
	test.T(t, acc.Seen("Roboto"), true)
	test.T(t, acc.Add("Roboto", Metrics{FontFamily: "Roboto Light"}), false)
	test.T(t, acc.Add("Lato", Metrics{FontFamily: "Lato"}), true)

	records := acc.Records()
	test.T(t, len(records), 2)
	test.String(t, records[0].FontFamily, "Roboto")
	test.String(t, records[1].FontFamily, "Lato")
}

func TestProcessDir(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"Broken-Regular.ttf",
		"Novel.otf",
		"Roboto-Light.ttf",
		"Roboto-Regular.ttf",
		"Roboto.ttf",
		"notes.txt",
	}
	for _, name := range files {
		test.Error(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	b := NewBatch(nil)
	b.open = func(path string) (Resource, error) {
		stem := filepath.Base(path)
		stem = stem[:len(stem)-len(filepath.Ext(stem))]
		if stem == "Broken-Regular" {
			return nil, fmt.Errorf("invalid font data")
		}
		f := newTestFont()
		f.ascent = 800
		f.descent = -200
		f.names[nameFontFamily] = []NameEntry{{platformWindows, utf16BE(BaseName(stem))}}
		return f, nil
	}

	records, err := b.ProcessDir(dir)
	test.Error(t, err)

	// Roboto-Light is not a regular variant, Roboto.ttf is a duplicate of
	// the Roboto base family, Broken-Regular fails to parse, and notes.txt
	// is no font file: two families remain
	test.T(t, len(records), 2)
	test.String(t, records[0].FontFamily, "Novel")
	test.String(t, records[1].FontFamily, "Roboto")
}

func TestProcessDirMissing(t *testing.T) {
	_, err := NewBatch(nil).ProcessDir(filepath.Join(t.TempDir(), "nope"))
	test.That(t, err != nil, "missing directory must error")
}
