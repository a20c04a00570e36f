package crs

import (
	"strings"
	"unicode/utf8"
)

// Markers opening the vertical-CRS clause, in match priority order:
// VERTCRS and VERTICALCRS for WKT2, VERT_CS for WKT1.
var verticalMarkers = []string{"VERTCRS", "VERTICALCRS", "VERT_CS"}

// ParseWKT extracts EPSG codes from a WKT CRS record.
//
// This is not a WKT grammar parser. EPSG codes reliably appear as the
// final numeric literal of a WKT identifier clause, e.g.
// AUTHORITY["EPSG","2992"], so the text is split at the vertical-CRS
// marker (if any) and the trailing integer of each piece is taken as the
// code. A horizontal code outside the plausible range fails with a
// *BadHorizontalError carrying the parsed value; an implausible vertical
// code is silently dropped.
func ParseWKT(data []byte) (EPSG, error) {
	text := strings.ToValidUTF8(string(data), string(utf8.RuneError))

	horizontal := text
	vertical := ""
	hasVertical := false
	for _, marker := range verticalMarkers {
		if i := strings.Index(text, marker); i >= 0 {
			horizontal, vertical = text[:i], text[i:]
			hasVertical = true
			break
		}
	}

	h := trailingCode(horizontal)
	var v uint16
	if hasVertical {
		v = trailingCode(vertical)
	}
	return checkParsed(NewUncheckedWithVertical(h, v))
}

// trailingCode scans at most 10 bytes from the end of s, after trimming
// trailing whitespace, and accumulates consecutive ASCII digits into a
// code, last digit being the ones place. The scan stops at the first
// non-digit once a digit has been seen. No digits yields 0.
func trailingCode(s string) uint16 {
	s = strings.TrimRight(s, " \t\r\n")

	var code uint16
	pow := uint16(1)
	started := false
	for i := 0; i < len(s) && i < 10; i++ {
		b := s[len(s)-1-i]
		if b >= '0' && b <= '9' {
			started = true
			code += uint16(b-'0') * pow
			pow *= 10
		} else if started {
			break
		}
	}
	return code
}
