package webfont

import (
	"math"
)

// LineGap is the fixed line gap emitted for every font family. It is a layout
// constant, not derived from the font.
const LineGap = 1.2

// lsbLetters are the capitals sampled for the average left side bearing.
// Letters missing from the cmap or hmtx are skipped.
var lsbLetters = []rune{'B', 'D', 'E', 'F', 'H', 'I', 'K', 'L', 'P', 'R'}

// NameEntry is a single name table record value together with the platform ID
// needed to pick a decoder for it.
type NameEntry struct {
	PlatformID uint16
	Value      []byte
}

// Resource is the read-only view of a parsed font needed to resolve its family
// name and derive layout metrics. It is implemented by the SFNT adapter in this
// package, see NewResource.
type Resource interface {
	// UnitsPerEm returns the design grid resolution, the divisor for all
	// em-relative values.
	UnitsPerEm() uint16

	// Names returns all name table entries for the given name ID in table
	// order.
	Names(nameID uint16) []NameEntry

	// GlyphIndex returns the glyph ID for a rune, or 0 when unmapped.
	GlyphIndex(r rune) uint16

	// GlyphTop returns the Y-maximum of the glyph's outline bounding box.
	GlyphTop(glyphID uint16) (int16, bool)

	// LeftSideBearing returns the glyph's left side bearing.
	LeftSideBearing(glyphID uint16) (int16, bool)

	// CapHeight and XHeight return the explicit OS/2 fields, zero when the
	// font does not declare them.
	CapHeight() int16
	XHeight() int16

	// AvgCharWidth returns the declared average character advance.
	AvgCharWidth() int16

	// Ascent and Descent return the horizontal header extents in design
	// units. Descent is conventionally negative.
	Ascent() int16
	Descent() int16
}

// Metrics is the normalized, font-size independent metrics record for one font
// family. All fields except FontFamily and LineGap are em-relative, and
// Ascender+Descender sum to exactly 1 by construction.
type Metrics struct {
	FontFamily string
	CapHeight  float64
	XHeight    float64
	DHeight    float64
	ChWidth    float64
	LineGap    float64
	Ascender   float64
	Descender  float64
	LSBAdjust  float64
}

// rawMetrics are the design-unit measurements gathered from a font before
// normalization.
type rawMetrics struct {
	unitsPerEm   uint16
	capHeight    int16
	xHeight      int16
	dHeight      int16
	avgCharWidth int16
	ascent       int16
	descent      int16
	lsbs         []int16
}

func extractRaw(res Resource) rawMetrics {
	raw := rawMetrics{unitsPerEm: res.UnitsPerEm()}

	// prefer the explicit OS/2 fields, otherwise measure the glyph outline
	if capHeight := res.CapHeight(); 0 < capHeight {
		raw.capHeight = capHeight
	} else if top, ok := glyphTop(res, 'H'); ok {
		raw.capHeight = top
	}
	if xHeight := res.XHeight(); 0 < xHeight {
		raw.xHeight = xHeight
	} else if top, ok := glyphTop(res, 'x'); ok {
		raw.xHeight = top
	}
	// no explicit field exists for the ascending lowercase height
	if top, ok := glyphTop(res, 'd'); ok {
		raw.dHeight = top
	}

	raw.avgCharWidth = res.AvgCharWidth()
	raw.ascent = res.Ascent()
	raw.descent = res.Descent()

	for _, r := range lsbLetters {
		glyphID := res.GlyphIndex(r)
		if glyphID == 0 {
			continue
		}
		if lsb, ok := res.LeftSideBearing(glyphID); ok {
			raw.lsbs = append(raw.lsbs, lsb)
		}
	}
	return raw
}

func glyphTop(res Resource, r rune) (int16, bool) {
	glyphID := res.GlyphIndex(r)
	if glyphID == 0 {
		return 0, false
	}
	return res.GlyphTop(glyphID)
}

// Measure derives the normalized metrics record for a font. The family name is
// resolved separately, see FamilyName. Missing glyphs or fields contribute zero
// values; only a structurally broken font fails, and that is caught at load
// time.
func Measure(res Resource, family string) Metrics {
	raw := extractRaw(res)
	upem := float64(raw.unitsPerEm)

	// Fonts commonly declare ascent/descent that sum to more than one em.
	// Split the overshoot evenly between top and bottom, and derive the
	// descender as the complement of the ascender so that both always sum
	// to exactly one em. The raw descent value is never used directly.
	ascent := float64(raw.ascent)
	descent := math.Abs(float64(raw.descent))
	excess := (ascent + descent - upem) / 2.0
	ascender := (ascent - excess) / upem

	lsbAdjust := 0.0
	if 0 < len(raw.lsbs) {
		sum := 0.0
		for _, lsb := range raw.lsbs {
			sum += float64(lsb)
		}
		lsbAdjust = sum / float64(len(raw.lsbs)) / upem
	}

	return Metrics{
		FontFamily: family,
		CapHeight:  float64(raw.capHeight) / upem,
		XHeight:    float64(raw.xHeight) / upem,
		DHeight:    float64(raw.dHeight) / upem,
		ChWidth:    float64(raw.avgCharWidth) / upem,
		LineGap:    LineGap,
		Ascender:   ascender,
		Descender:  1.0 - ascender,
		LSBAdjust:  lsbAdjust,
	}
}
