// Package bom locates and extracts material lists and project metadata
// from arbitrarily-formatted BOM spreadsheets.
package bom

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes and drops combining marks, so "Descripción"
// normalizes the same as "Descripcion".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeHeader canonicalizes a header cell for keyword matching:
// trimmed, lowercased, diacritics stripped, internal whitespace
// collapsed to single spaces. Empty input yields "".
func NormalizeHeader(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

// ParseNumeric parses a cell value as a number, tolerating currency
// symbols and both thousands/decimal separator conventions. Whichever
// of the last '.' or ',' occurs later is treated as the decimal
// separator and the other class is stripped, so "1,234.56" and
// "1.234,56" both parse to 1234.56. Returns false for empty or
// unparseable input.
func ParseNumeric(raw string) (float64, bool) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '$' || r == '€' || r == 'R' {
			return -1
		}
		return r
	}, raw)
	if s == "" {
		return 0, false
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	if lastComma > lastDot {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if lastDot > lastComma {
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
