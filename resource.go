package webfont

import (
	"fmt"
	"os"

	"github.com/tdewolff/font"
)

// ErrBadUnitsPerEm is returned for fonts whose head table declares a zero
// design grid, which would make every normalized metric undefined.
var ErrBadUnitsPerEm = fmt.Errorf("unitsPerEm must be positive")

// LoadFont reads a font file, converts WOFF/WOFF2/EOT containers to SFNT, and
// parses it. The index selects a font from a TTC/OTC collection.
func LoadFont(path string, index int) (*font.SFNT, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if b, err = font.ToSFNT(b); err != nil {
		return nil, err
	}
	sfnt, err := font.ParseSFNT(b, index)
	if err != nil {
		return nil, err
	}
	if sfnt.Head.UnitsPerEm == 0 {
		return nil, ErrBadUnitsPerEm
	}
	return sfnt, nil
}

// sfntResource adapts a parsed SFNT to the Resource view used for name
// resolution and metric extraction.
type sfntResource struct {
	sfnt *font.SFNT
}

// NewResource returns the Resource view of a parsed SFNT. The SFNT must not be
// modified for the duration of the extraction.
func NewResource(sfnt *font.SFNT) Resource {
	return sfntResource{sfnt}
}

func (res sfntResource) UnitsPerEm() uint16 {
	return res.sfnt.Head.UnitsPerEm
}

func (res sfntResource) Names(nameID uint16) []NameEntry {
	var entries []NameEntry
	for _, record := range res.sfnt.Name.NameRecord {
		if uint16(record.Name) == nameID {
			entries = append(entries, NameEntry{
				PlatformID: uint16(record.Platform),
				Value:      record.Value,
			})
		}
	}
	return entries
}

func (res sfntResource) GlyphIndex(r rune) uint16 {
	return res.sfnt.GlyphIndex(r)
}

func (res sfntResource) GlyphTop(glyphID uint16) (int16, bool) {
	_, _, _, yMax := res.sfnt.GlyphBounds(glyphID)
	return yMax, true
}

func (res sfntResource) LeftSideBearing(glyphID uint16) (int16, bool) {
	if res.sfnt.Hmtx == nil || res.sfnt.NumGlyphs() <= glyphID {
		return 0, false
	}
	return res.sfnt.Hmtx.LeftSideBearing(glyphID), true
}

func (res sfntResource) CapHeight() int16 {
	if res.sfnt.OS2 == nil {
		return 0
	}
	return res.sfnt.OS2.SCapHeight
}

func (res sfntResource) XHeight() int16 {
	if res.sfnt.OS2 == nil {
		return 0
	}
	return res.sfnt.OS2.SxHeight
}

func (res sfntResource) AvgCharWidth() int16 {
	if res.sfnt.OS2 == nil {
		return 0
	}
	return res.sfnt.OS2.XAvgCharWidth
}

func (res sfntResource) Ascent() int16 {
	return res.sfnt.Hhea.Ascender
}

func (res sfntResource) Descent() int16 {
	return res.sfnt.Hhea.Descender
}
