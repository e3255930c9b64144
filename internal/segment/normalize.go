package segment

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	minLineChars = 3

	// Lines whose share of symbol characters exceeds this are dropped.
	maxSymbolDensity = 0.4
)

var (
	pageMarkerRe = regexp.MustCompile(`^\[PAGE_(\d+)\]`)
	issnRe       = regexp.MustCompile(`^\d{4}-\d{4}`)
	numericRe    = regexp.MustCompile(`^[\d\s\-().,/+]+$`)
)

// PageBreak records where a [PAGE_n] marker appeared.
type PageBreak struct {
	Page   int // page number from the marker
	Number int // physical line number of the marker
	Before int // index into Normalized.Lines of the first line after the marker
}

// Normalized is the output of the line normalizer.
type Normalized struct {
	Lines      []Line
	PageBreaks []PageBreak
	RawLines   int
}

// Normalize splits raw text into lines, records page markers and drops
// noise. It never mutates its input and always yields the same result for
// the same text.
func Normalize(text string) Normalized {
	raw := strings.Split(text, "\n")
	out := Normalized{RawLines: len(raw)}

	for i, line := range raw {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "[PAGE_") {
			if m := pageMarkerRe.FindStringSubmatch(line); m != nil {
				page, _ := strconv.Atoi(m[1])
				out.PageBreaks = append(out.PageBreaks, PageBreak{
					Page:   page,
					Number: i,
					Before: len(out.Lines),
				})
			}
			continue
		}

		if runeLen(line) < minLineChars || isNoise(line) {
			continue
		}
		out.Lines = append(out.Lines, newLine(line, i))
	}
	return out
}

// isNoise matches metadata lines: emails, URLs, DOIs, ISSNs, bare
// reference or phone numbers, and symbol-heavy debris.
func isNoise(line string) bool {
	switch {
	case strings.Contains(line, "@") && strings.Contains(line, "."):
		return true
	case strings.HasPrefix(line, "http"), strings.HasPrefix(line, "www."), strings.HasPrefix(line, "doi:"):
		return true
	case issnRe.MatchString(line), numericRe.MatchString(line):
		return true
	}

	symbols, total := 0, 0
	for _, r := range line {
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			symbols++
		}
	}
	return float64(symbols) > float64(total)*maxSymbolDensity
}
