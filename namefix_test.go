package webfont

import (
	"encoding/binary"
	"testing"

	"github.com/tdewolff/test"
)

func testNameTable() *nameTable {
	return &nameTable{
		records: []nameRecord{
			{platformMacintosh, 0, 0, nameFontFamily, []byte("Old Font")},
			{platformWindows, 1, 0x0409, nameFontFamily, utf16BE("Old Font")},
			{platformWindows, 1, 0x0409, 2, utf16BE("Bold")},
			{platformWindows, 1, 0x0409, namePreferredFamily, utf16BE("Old Font")},
		},
		langTags: [][]byte{utf16BE("en-US")},
	}
}

func TestNameTableRoundTrip(t *testing.T) {
	t0 := testNameTable()
	b := t0.bytes()

	// version 1 header with the langtag section between the records and
	// string storage
	test.T(t, binary.BigEndian.Uint16(b[0:]), uint16(1))
	test.T(t, binary.BigEndian.Uint16(b[2:]), uint16(4))
	test.T(t, binary.BigEndian.Uint16(b[4:]), uint16(6+12*4+2+4*1))

	t1, err := parseNameTable(b)
	test.Error(t, err)
	test.T(t, len(t1.records), len(t0.records))
	for i, record := range t1.records {
		test.T(t, record.platformID, t0.records[i].platformID)
		test.T(t, record.encodingID, t0.records[i].encodingID)
		test.T(t, record.languageID, t0.records[i].languageID)
		test.T(t, record.nameID, t0.records[i].nameID)
		test.Bytes(t, record.value, t0.records[i].value)
	}
	test.T(t, len(t1.langTags), 1)
	test.Bytes(t, t1.langTags[0], utf16BE("en-US"))
}

func TestNameTableRoundTripNoLangTags(t *testing.T) {
	t0 := testNameTable()
	t0.langTags = nil
	b := t0.bytes()

	// format 0, storage directly after the records
	test.T(t, binary.BigEndian.Uint16(b[0:]), uint16(0))
	test.T(t, binary.BigEndian.Uint16(b[4:]), uint16(6+12*4))

	t1, err := parseNameTable(b)
	test.Error(t, err)
	test.T(t, len(t1.records), 4)
	test.T(t, len(t1.langTags), 0)
	test.Bytes(t, t1.records[3].value, utf16BE("Old Font"))
}

func TestSetFamily(t *testing.T) {
	nt := testNameTable()
	nt.setFamily("New Font")

	test.Bytes(t, nt.records[0].value, []byte("New Font"))
	test.Bytes(t, nt.records[1].value, utf16BE("New Font"))
	test.Bytes(t, nt.records[3].value, utf16BE("New Font"))
	// the subfamily record is untouched
	test.T(t, nt.records[2].nameID, uint16(2))
	test.Bytes(t, nt.records[2].value, utf16BE("Bold"))
}

func TestSetFamilyUnrepresentable(t *testing.T) {
	// the Macintosh record cannot hold the name and keeps its old value,
	// the Unicode records are rewritten
	nt := testNameTable()
	nt.setFamily("日本")

	test.Bytes(t, nt.records[0].value, []byte("Old Font"))
	test.Bytes(t, nt.records[1].value, utf16BE("日本"))
	test.Bytes(t, nt.records[3].value, utf16BE("日本"))
}

func TestSetFamilyRoundTrip(t *testing.T) {
	// rewrite, serialize and re-parse: the new family survives the binary
	// round trip with the record order intact
	nt := testNameTable()
	nt.setFamily("New Font")

	parsed, err := parseNameTable(nt.bytes())
	test.Error(t, err)
	test.Bytes(t, parsed.records[0].value, []byte("New Font"))
	test.Bytes(t, parsed.records[1].value, utf16BE("New Font"))
	test.Bytes(t, parsed.records[2].value, utf16BE("Bold"))
	test.Bytes(t, parsed.records[3].value, utf16BE("New Font"))
}

func TestParseNameTableBad(t *testing.T) {
	bads := [][]byte{
		{},
		{0x00},
		{0x00, 0x02, 0x00, 0x00, 0x00, 0x06}, // bad version
		{0x00, 0x00, 0x00, 0x01, 0x00, 0x06}, // record entries missing
		// one record whose value points past the end of the table
		{0x00, 0x00, 0x00, 0x01, 0x00, 0x12,
			0x00, 0x03, 0x00, 0x01, 0x04, 0x09, 0x00, 0x01, 0x00, 0xFF, 0x00, 0x00},
	}
	for _, b := range bads {
		_, err := parseNameTable(b)
		test.That(t, err != nil, "must error:", b)
	}
}

func TestEncodeName(t *testing.T) {
	b, ok := encodeName("AB", platformWindows)
	test.T(t, ok, true)
	test.Bytes(t, b, []byte{0x00, 'A', 0x00, 'B'})

	b, ok = encodeName("AB", platformUnicode)
	test.T(t, ok, true)
	test.Bytes(t, b, []byte{0x00, 'A', 0x00, 'B'})

	b, ok = encodeName("Cafe", platformMacintosh)
	test.T(t, ok, true)
	test.Bytes(t, b, []byte("Cafe"))
}

func TestEncodeNameUnrepresentable(t *testing.T) {
	// platforms without a Unicode encoding cannot hold this name; the
	// record is then left unchanged
	_, ok := encodeName("日本", platformMacintosh)
	test.T(t, ok, false)

	b, ok := encodeName("日本", platformWindows)
	test.T(t, ok, true)
	test.Bytes(t, b, []byte{0x65, 0xE5, 0x67, 0x2C})
}
