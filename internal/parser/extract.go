package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Spreadsheet serial day 0 is 1899-12-30; day 25569 is the Unix epoch.
const serialEpochDays = 25569

var hrefPattern = regexp.MustCompile(`href=["']([^"']+)["']`)

// cleanNumeric strips all whitespace and turns a decimal comma into a
// decimal point.
func cleanNumeric(raw string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	return strings.ReplaceAll(clean, ",", ".")
}

// Number coerces a cell value into a number. Unparsable or empty input
// yields 0; extraction never fails.
func Number(raw string) float64 {
	v, err := strconv.ParseFloat(cleanNumeric(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// Percentage coerces a cell value onto the 0-100 percent scale. A literal
// "%" sign is stripped before parsing. Values already greater than 1 are
// assumed to already be on the 0-100 scale; values <= 1 are assumed to be a
// fraction and are multiplied by 100. The comparison is strict > 1, so an
// input of exactly 1 is treated as a fraction.
func Percentage(raw string) float64 {
	clean := strings.ReplaceAll(cleanNumeric(raw), "%", "")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	if v > 1 {
		return v
	}
	return v * 100
}

// Date coerces a cell value into an ISO date string. A numeric cell is a
// spreadsheet serial date and is converted with integer day truncation to
// YYYY-MM-DD in UTC; any other string passes through unchanged.
func Date(raw string) string {
	serial, err := strconv.ParseFloat(cleanNumeric(raw), 64)
	if err != nil {
		return raw
	}
	days := int64(serial)
	return time.Unix((days-serialEpochDays)*86400, 0).UTC().Format("2006-01-02")
}

// URLFromRichText pulls the href attribute out of an HTML anchor fragment.
// A cell without an anchor is treated as a literal URL. Empty input yields
// an empty string.
func URLFromRichText(raw string) string {
	if m := hrefPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return strings.TrimSpace(raw)
}
