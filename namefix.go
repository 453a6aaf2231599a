package webfont

import (
	"fmt"

	"github.com/tdewolff/font"
	"github.com/tdewolff/parse/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FixFamilyNames rewrites the family (ID 1) and preferred family (ID 16) name
// records of a font to a single canonical name so that all weights of a family
// group together. Without an override the name is resolved from the font
// itself and cleaned of weight tokens. Records whose platform encoding cannot
// represent the name are left unchanged. It returns the rewritten font file
// and the name applied; a font declaring no family name at all is returned
// unmodified with an empty name.
func FixFamilyNames(b []byte, override string) ([]byte, string, error) {
	sfntBytes, err := font.ToSFNT(b)
	if err != nil {
		return nil, "", err
	}
	sfnt, err := font.ParseSFNT(sfntBytes, 0)
	if err != nil {
		return nil, "", err
	}

	family := override
	if family == "" {
		family = stripStyleWords(resolveFamily(NewResource(sfnt)))
	}
	if family == "" {
		return b, "", nil
	}

	table, err := parseNameTable(sfnt.Tables["name"])
	if err != nil {
		return nil, "", err
	}
	table.setFamily(family)
	sfnt.Tables["name"] = table.bytes()
	return sfnt.Write(), family, nil
}

// nameRecord is one name table record with its value resolved from string
// storage.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	value      []byte
}

// nameTable is a decoded name table that can be modified and serialized back.
type nameTable struct {
	records  []nameRecord
	langTags [][]byte
}

// parseNameTable decodes a name table binary, formats 0 and 1.
func parseNameTable(b []byte) (*nameTable, error) {
	if len(b) < 6 {
		return nil, fmt.Errorf("name: bad table")
	}
	r := parse.NewBinaryReaderBytes(b)
	version := r.ReadUint16()
	if version != 0 && version != 1 {
		return nil, fmt.Errorf("name: bad version")
	}
	count := uint32(r.ReadUint16())
	storageOffset := uint32(r.ReadUint16())
	if uint32(len(b)) < 6+12*count || uint32(len(b)) < storageOffset {
		return nil, fmt.Errorf("name: bad table")
	}

	t := &nameTable{records: make([]nameRecord, count)}
	for i := range t.records {
		record := &t.records[i]
		record.platformID = r.ReadUint16()
		record.encodingID = r.ReadUint16()
		record.languageID = r.ReadUint16()
		record.nameID = r.ReadUint16()
		length := uint32(r.ReadUint16())
		offset := uint32(r.ReadUint16())
		if uint32(len(b))-storageOffset < offset || uint32(len(b))-storageOffset-offset < length {
			return nil, fmt.Errorf("name: bad table")
		}
		record.value = b[storageOffset+offset : storageOffset+offset+length]
	}
	if version == 1 {
		if uint32(len(b)) < 6+12*count+2 {
			return nil, fmt.Errorf("name: bad table")
		}
		langTagCount := uint32(r.ReadUint16())
		if uint32(len(b)) < 6+12*count+2+4*langTagCount {
			return nil, fmt.Errorf("name: bad table")
		}
		for i := uint32(0); i < langTagCount; i++ {
			length := uint32(r.ReadUint16())
			offset := uint32(r.ReadUint16())
			if uint32(len(b))-storageOffset < offset || uint32(len(b))-storageOffset-offset < length {
				return nil, fmt.Errorf("name: bad table")
			}
			t.langTags = append(t.langTags, b[storageOffset+offset:storageOffset+offset+length])
		}
	}
	return t, nil
}

// setFamily rewrites every family and preferred family record to the given
// name. Records whose platform encoding cannot represent it keep their value.
func (t *nameTable) setFamily(family string) {
	for i := range t.records {
		record := &t.records[i]
		if record.nameID != nameFontFamily && record.nameID != namePreferredFamily {
			continue
		}
		if value, ok := encodeName(family, record.platformID); ok {
			record.value = value
		}
	}
}

// bytes serializes the name table. String storage is written in record order
// without deduplication, directly after the record and langtag entries.
func (t *nameTable) bytes() []byte {
	version := uint16(0)
	storageOffset := 6 + 12*len(t.records)
	if 0 < len(t.langTags) {
		version = 1
		storageOffset += 2 + 4*len(t.langTags)
	}

	w := parse.NewBinaryWriter([]byte{})
	w.WriteUint16(version)
	w.WriteUint16(uint16(len(t.records)))
	w.WriteUint16(uint16(storageOffset))

	storage := []byte{}
	for _, record := range t.records {
		w.WriteUint16(record.platformID)
		w.WriteUint16(record.encodingID)
		w.WriteUint16(record.languageID)
		w.WriteUint16(record.nameID)
		w.WriteUint16(uint16(len(record.value)))
		w.WriteUint16(uint16(len(storage)))
		storage = append(storage, record.value...)
	}
	if version == 1 {
		w.WriteUint16(uint16(len(t.langTags)))
		for _, langTag := range t.langTags {
			w.WriteUint16(uint16(len(langTag)))
			w.WriteUint16(uint16(len(storage)))
			storage = append(storage, langTag...)
		}
	}
	w.WriteBytes(storage)
	return w.Bytes()
}

// encodeName encodes a name in the byte encoding conventional for the record's
// platform.
func encodeName(s string, platformID uint16) ([]byte, bool) {
	var encoder *encoding.Encoder
	switch platformID {
	case platformUnicode, platformWindows:
		encoder = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	case platformMacintosh:
		encoder = charmap.Macintosh.NewEncoder()
	default:
		encoder = charmap.ISO8859_1.NewEncoder()
	}
	b, _, err := transform.Bytes(encoder, []byte(s))
	if err != nil {
		return nil, false
	}
	return b, true
}
