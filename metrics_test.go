package webfont

import (
	"testing"

	"github.com/tdewolff/test"
)

// testFont is an in-memory Resource for tests.
type testFont struct {
	upem      uint16
	names     map[uint16][]NameEntry
	glyphs    map[rune]uint16
	tops      map[uint16]int16
	lsbs      map[uint16]int16
	capHeight int16
	xHeight   int16
	avgWidth  int16
	ascent    int16
	descent   int16
}

func newTestFont() *testFont {
	return &testFont{
		upem:   1000,
		names:  map[uint16][]NameEntry{},
		glyphs: map[rune]uint16{},
		tops:   map[uint16]int16{},
		lsbs:   map[uint16]int16{},
	}
}

func (f *testFont) UnitsPerEm() uint16 {
	return f.upem
}

func (f *testFont) Names(nameID uint16) []NameEntry {
	return f.names[nameID]
}

func (f *testFont) GlyphIndex(r rune) uint16 {
	return f.glyphs[r]
}

func (f *testFont) GlyphTop(glyphID uint16) (int16, bool) {
	top, ok := f.tops[glyphID]
	return top, ok
}

func (f *testFont) LeftSideBearing(glyphID uint16) (int16, bool) {
	lsb, ok := f.lsbs[glyphID]
	return lsb, ok
}

func (f *testFont) CapHeight() int16 {
	return f.capHeight
}

func (f *testFont) XHeight() int16 {
	return f.xHeight
}

func (f *testFont) AvgCharWidth() int16 {
	return f.avgWidth
}

func (f *testFont) Ascent() int16 {
	return f.ascent
}

func (f *testFont) Descent() int16 {
	return f.descent
}

func TestMeasure(t *testing.T) {
	f := newTestFont()
	f.capHeight = 700
	f.xHeight = 500
	f.avgWidth = 497
	f.ascent = 800
	f.descent = -200
	f.glyphs['d'] = 7
	f.tops[7] = 740
	f.glyphs['H'] = 8
	f.lsbs[8] = 120
	f.glyphs['I'] = 9
	f.lsbs[9] = 40

	m := Measure(f, "Roboto")
	test.String(t, m.FontFamily, "Roboto")
	test.Float(t, m.CapHeight, 0.7)
	test.Float(t, m.XHeight, 0.5)
	test.Float(t, m.DHeight, 0.74)
	test.Float(t, m.ChWidth, 0.497)
	test.Float(t, m.LineGap, 1.2)
	test.Float(t, m.Ascender, 0.8)
	test.Float(t, m.Descender, 0.2)
	test.Float(t, m.LSBAdjust, 0.08)
}

func TestMeasureVerticalReconciliation(t *testing.T) {
	tests := []struct {
		upem            uint16
		ascent, descent int16
		ascender        float64
	}{
		{1000, 800, -200, 0.8},
		{2048, 1900, -500, 0.841796875}, // excess 176 split off the ascent
		{1000, 1000, -300, 0.85},
		{1000, 750, -250, 0.75},
	}
	for _, tt := range tests {
		f := newTestFont()
		f.upem = tt.upem
		f.ascent = tt.ascent
		f.descent = tt.descent

		m := Measure(f, "X")
		test.Float(t, m.Ascender, tt.ascender)
		test.Float(t, m.Descender, 1.0-tt.ascender)
		if sum := m.Ascender + m.Descender; sum < 1.0-1e-9 || 1.0+1e-9 < sum {
			test.Fail(t, "ascender and descender must sum to one em:", sum)
		}
	}
}

func TestMeasureGlyphFallback(t *testing.T) {
	// no explicit OS/2 heights, fall back to the H and x outlines
	f := newTestFont()
	f.upem = 2000
	f.glyphs['H'] = 3
	f.tops[3] = 1400
	f.glyphs['x'] = 4
	f.tops[4] = 1000

	m := Measure(f, "X")
	test.Float(t, m.CapHeight, 0.7)
	test.Float(t, m.XHeight, 0.5)
	test.Float(t, m.DHeight, 0.0)
}

func TestMeasureExplicitFieldsWin(t *testing.T) {
	// declared OS/2 heights beat the outline measurements, but dHeight is
	// always measured from the d outline
	f := newTestFont()
	f.capHeight = 700
	f.xHeight = 520
	f.glyphs['H'] = 3
	f.tops[3] = 710
	f.glyphs['x'] = 4
	f.tops[4] = 530
	f.glyphs['d'] = 5
	f.tops[5] = 745

	m := Measure(f, "X")
	test.Float(t, m.CapHeight, 0.7)
	test.Float(t, m.XHeight, 0.52)
	test.Float(t, m.DHeight, 0.745)
}

func TestMeasureMissingData(t *testing.T) {
	// an empty font yields zero contributions, never an error
	f := newTestFont()
	f.ascent = 800
	f.descent = -200

	m := Measure(f, "X")
	test.Float(t, m.CapHeight, 0.0)
	test.Float(t, m.XHeight, 0.0)
	test.Float(t, m.DHeight, 0.0)
	test.Float(t, m.ChWidth, 0.0)
	test.Float(t, m.LSBAdjust, 0.0)
	test.Float(t, m.Ascender, 0.8)
	test.Float(t, m.Descender, 0.2)
}

func TestMeasureSkipsUnmappedLSBLetters(t *testing.T) {
	// only B maps to a glyph, K maps but has no horizontal metrics
	f := newTestFont()
	f.glyphs['B'] = 2
	f.lsbs[2] = 90
	f.glyphs['K'] = 3

	m := Measure(f, "X")
	test.Float(t, m.LSBAdjust, 0.09)
}
