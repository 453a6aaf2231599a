package webfont

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/font"
)

// PrepOptions control the subsetting step of the web delivery pipeline. Empty
// Chars and UnicodeRange keep the full glyph set.
type PrepOptions struct {
	Chars        string
	UnicodeRange string
	Features     []string
}

// WOFF2Path returns the web delivery path for a font file: the filename stem
// with a .woff2 extension, placed in outDir or next to the input when outDir
// is empty.
func WOFF2Path(path, outDir string) string {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	return filepath.Join(outDir, stem+".woff2")
}

// PrepFile subsets a font file to the configured character set, compresses it
// to WOFF2, and writes it to outPath. It returns the input and output sizes.
func (b *Batch) PrepFile(path, outPath string, opts PrepOptions) (int, int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	n := len(raw)

	sfntBytes, err := font.ToSFNT(raw)
	if err != nil {
		return 0, 0, err
	}
	sfnt, err := font.ParseSFNT(sfntBytes, 0)
	if err != nil {
		return 0, 0, err
	}

	if opts.Chars != "" || opts.UnicodeRange != "" {
		ranges, err := ParseUnicodeRanges(opts.UnicodeRange)
		if err != nil {
			return 0, 0, err
		}
		glyphIDs := GlyphSet(sfnt, opts.Chars, ranges, b.Warning)
		if sfnt, err = Subset(sfnt, glyphIDs, opts.Features); err != nil {
			return 0, 0, err
		}
	}

	out, err := sfnt.WriteWOFF2()
	if err != nil {
		return 0, 0, err
	}
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return 0, 0, err
	}
	return n, len(out), nil
}
