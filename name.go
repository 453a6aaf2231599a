package webfont

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// name table name IDs and platform IDs, see the OpenType spec
const (
	nameFontFamily      uint16 = 1
	namePreferredFamily uint16 = 16

	platformUnicode   uint16 = 0
	platformMacintosh uint16 = 1
	platformWindows   uint16 = 3
)

// styleTokens are the weight/style tokens recognized in font names, ordered
// longest first so that compound tokens are removed before their suffixes
// (ExtraBold before Bold). Regular is listed separately as it marks the
// variant we measure.
var styleTokens = []string{
	"ExtraLight",
	"Condensed",
	"ExtraBold",
	"SemiBold",
	"Oblique",
	"Italic",
	"Medium",
	"Black",
	"Light",
	"Bold",
	"Thin",
}

// FamilyName resolves the canonical display name of a font family. It prefers
// the typographic (preferred) family name, then the regular family name, and
// finally falls back to the given filename stem with style tokens stripped.
// It never fails.
func FamilyName(res Resource, fallback string) string {
	if family := resolveFamily(res); family != "" {
		return family
	}
	return stripStyleWords(fallback)
}

// resolveFamily returns the first decodable preferred family or family name
// record, or an empty string when the font declares neither.
func resolveFamily(res Resource) string {
	for _, nameID := range []uint16{namePreferredFamily, nameFontFamily} {
		for _, entry := range res.Names(nameID) {
			if s, ok := decodeNameEntry(entry); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// decodeNameEntry decodes a name record value, preferring UTF-16 for Unicode
// and Windows platform records, then valid UTF-8, then Latin-1. Records that
// survive none of these are discarded.
func decodeNameEntry(entry NameEntry) (string, bool) {
	if entry.PlatformID == platformUnicode || entry.PlatformID == platformWindows {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		if s, _, err := transform.String(decoder, string(entry.Value)); err == nil {
			return s, true
		}
	}
	if utf8.Valid(entry.Value) {
		return string(entry.Value), true
	}
	decoder := charmap.ISO8859_1.NewDecoder()
	if s, _, err := transform.String(decoder, string(entry.Value)); err == nil {
		return s, true
	}
	return "", false
}

// IsRegular classifies a font file name as the regular variant. A name
// containing Regular always is, and a name containing no style token at all is
// treated as regular too, so unlabeled files are measured rather than skipped.
func IsRegular(name string) bool {
	if strings.Contains(name, "Regular") {
		return true
	}
	for _, token := range styleTokens {
		if strings.Contains(name, token) {
			return false
		}
	}
	return true
}

// BaseName computes the family base name of a font file name by removing every
// style token, including Regular, and trimming separator characters from both
// ends. Files of the same family in different weights map to the same base
// name.
func BaseName(name string) string {
	name = strings.ReplaceAll(name, "Regular", "")
	for _, token := range styleTokens {
		name = strings.ReplaceAll(name, token, "")
	}
	return strings.Trim(name, "-_ ")
}

// stripStyleWords removes style tokens from a name when they stand alone as a
// word, bounded by separators or the string ends, and trims the result. Unlike
// BaseName it leaves tokens embedded in longer words intact.
func stripStyleWords(name string) string {
	name = removeWord(name, "Regular")
	for _, token := range styleTokens {
		name = removeWord(name, token)
	}
	return strings.Trim(name, "-_ ")
}

func removeWord(s, word string) string {
	for i := 0; ; {
		j := strings.Index(s[i:], word)
		if j == -1 {
			return s
		}
		j += i
		k := j + len(word)
		if (j == 0 || isSeparator(s[j-1])) && (k == len(s) || isSeparator(s[k])) {
			s = s[:j] + s[k:]
			i = j
		} else {
			i = j + 1
		}
	}
}

func isSeparator(c byte) bool {
	return c == '-' || c == '_' || c == ' '
}
