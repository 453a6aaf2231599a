package webfont

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format selects the textual encoding of a metrics record.
type Format int

// see Format
const (
	FormatJS Format = iota
	FormatJSON
	FormatCSS
	FormatSCSS
)

// ParseFormat parses a format name as used in configuration files and on the
// command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "js":
		return FormatJS, nil
	case "json":
		return FormatJSON, nil
	case "css":
		return FormatCSS, nil
	case "scss":
		return FormatSCSS, nil
	}
	return 0, fmt.Errorf("unsupported format: %v", s)
}

// Ext returns the file extension for aggregate output files of this format.
func (f Format) Ext() string {
	switch f {
	case FormatJS:
		return ".js"
	case FormatJSON:
		return ".json"
	case FormatCSS:
		return ".css"
	case FormatSCSS:
		return ".scss"
	}
	return ""
}

type metricsField struct {
	key   string
	value float64
}

// fields returns the numeric fields in their fixed output order. All four
// encodings share this list so the field set cannot drift between them.
func (m Metrics) fields() []metricsField {
	return []metricsField{
		{"cap-height", m.CapHeight},
		{"x-height", m.XHeight},
		{"d-height", m.DHeight},
		{"ch-width", m.ChWidth},
		{"line-gap", m.LineGap},
		{"ascender", m.Ascender},
		{"descender", m.Descender},
		{"lsb-adjust", m.LSBAdjust},
	}
}

// Render serializes the record. Numeric fields are rounded to three decimals
// here and nowhere earlier. The JS and SCSS encodings end in a trailing comma
// and semicolon respectively so that entries of multiple families can be
// appended to a single aggregate file; the CSS encoding emits only a
// @font-face rule with a constructed woff2 source URL.
func (m Metrics) Render(f Format) string {
	sb := &strings.Builder{}
	switch f {
	case FormatJS:
		fmt.Fprintf(sb, "'%s': {\n", escapeQuotes(m.FontFamily))
		fmt.Fprintf(sb, "\tfontFamily: '%s',\n", escapeQuotes(m.FontFamily))
		for _, field := range m.fields() {
			fmt.Fprintf(sb, "\t%s: %.3f,\n", camelCase(field.key), field.value)
		}
		sb.WriteString("},\n")
	case FormatJSON:
		sb.WriteString("{\n")
		fmt.Fprintf(sb, "\t\"font-family\": %s,\n", strconv.Quote(m.FontFamily))
		fields := m.fields()
		for i, field := range fields {
			sep := ","
			if i == len(fields)-1 {
				sep = ""
			}
			fmt.Fprintf(sb, "\t\"%s\": %.3f%s\n", field.key, field.value, sep)
		}
		sb.WriteString("}\n")
	case FormatCSS:
		// the URL keeps spaces of multi-word family names as-is
		sb.WriteString("@font-face {\n")
		fmt.Fprintf(sb, "\tfont-family: '%s';\n", escapeQuotes(m.FontFamily))
		fmt.Fprintf(sb, "\tsrc: url('%s.woff2') format('woff2');\n", escapeQuotes(strings.ToLower(m.FontFamily)))
		sb.WriteString("}\n")
	case FormatSCSS:
		fmt.Fprintf(sb, "$metrics-%s: (\n", scssName(m.FontFamily))
		fmt.Fprintf(sb, "\tfont-family: '%s',\n", escapeQuotes(m.FontFamily))
		fields := m.fields()
		for i, field := range fields {
			sep := ","
			if i == len(fields)-1 {
				sep = ""
			}
			fmt.Fprintf(sb, "\t%s: %.3f%s\n", field.key, field.value, sep)
		}
		sb.WriteString(");\n")
	}
	return sb.String()
}

// WriteRecords renders all records in order and writes them to w.
func WriteRecords(w io.Writer, f Format, records []Metrics) error {
	for _, m := range records {
		if _, err := io.WriteString(w, m.Render(f)); err != nil {
			return err
		}
	}
	return nil
}

// camelCase converts a kebab-case key to the camelCase form used by the JS
// encoding.
func camelCase(key string) string {
	parts := strings.Split(key, "-")
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

// escapeQuotes escapes backslashes and single quotes for the single-quoted
// strings of the JS, CSS and SCSS encodings.
func escapeQuotes(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// scssName converts a family name to a variable-safe SCSS identifier suffix:
// lowercased, with anything outside letters and digits mapped to a hyphen.
func scssName(family string) string {
	sb := &strings.Builder{}
	for _, r := range strings.ToLower(family) {
		if 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
