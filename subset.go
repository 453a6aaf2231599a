package webfont

import (
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/tdewolff/font"
)

// ParseUnicodeRanges parses a comma-separated list of U+XXXX and U+XXXX-YYYY
// tokens as used by CSS unicode-range descriptors. The tokens are passed
// through verbatim from configuration; only their hexadecimal bounds are
// interpreted here.
func ParseUnicodeRanges(s string) ([][2]rune, error) {
	var ranges [][2]rune
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, "U+") || strings.HasPrefix(token, "u+") {
			token = token[2:]
		}
		first, last := token, token
		if dash := strings.IndexByte(token, '-'); dash != -1 {
			first, last = token[:dash], token[dash+1:]
		}
		lo, err := strconv.ParseInt(first, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid unicode codepoint: %v", err)
		}
		hi, err := strconv.ParseInt(last, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid unicode codepoint: %v", err)
		}
		if hi < lo || lo < 0 {
			return nil, fmt.Errorf("invalid unicode range: U+%04X-U+%04X", lo, hi)
		}
		ranges = append(ranges, [2]rune{rune(lo), rune(hi)})
	}
	return ranges, nil
}

// GlyphSet builds the sorted list of glyph IDs to keep when subsetting,
// starting from .notdef. Literal characters and unicode ranges that have no
// glyph in the font are logged and skipped.
func GlyphSet(sfnt *font.SFNT, chars string, ranges [][2]rune, warning *log.Logger) []uint16 {
	if warning == nil {
		warning = log.New(io.Discard, "", 0)
	}

	glyphMap := map[uint16]bool{}
	glyphMap[0] = true

	for _, r := range chars {
		glyphID := sfnt.GlyphIndex(r)
		if glyphID == 0 {
			warning.Println("glyph not found:", string(r))
		} else {
			glyphMap[glyphID] = true
		}
	}
	for _, ran := range ranges {
		for r := ran[0]; r <= ran[1]; r++ {
			if glyphID := sfnt.GlyphIndex(r); glyphID != 0 {
				glyphMap[glyphID] = true
			}
		}
	}

	// convert to sorted list, prevents duplicates
	glyphIDs := make([]uint16, 0, len(glyphMap))
	for glyphID := range glyphMap {
		glyphIDs = append(glyphIDs, glyphID)
	}
	sort.Slice(glyphIDs, func(i, j int) bool { return glyphIDs[i] < glyphIDs[j] })
	return glyphIDs
}

// Subset trims a font to the given glyph IDs. Feature tags are passed through
// to the subsetting engine: when any are requested the layout tables carrying
// them are retained, otherwise only the minimal table set survives.
func Subset(sfnt *font.SFNT, glyphIDs []uint16, features []string) (*font.SFNT, error) {
	tables := font.KeepMinTables
	if 0 < len(features) {
		tables = font.KeepAllTables
	}
	return sfnt.Subset(glyphIDs, font.SubsetOptions{Tables: tables})
}
