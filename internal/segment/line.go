package segment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line is one normalized physical line and its cached surface features.
type Line struct {
	Text              string
	Number            int // physical line number in the raw text, zero-based
	Length            int // characters (runes)
	Words             int
	IsAllUpper        bool
	IsTitleCase       bool
	StartsWithCapital bool
	HasDigit          bool
}

func newLine(text string, number int) Line {
	first, _ := utf8.DecodeRuneInString(text)
	return Line{
		Text:              text,
		Number:            number,
		Length:            utf8.RuneCountInString(text),
		Words:             len(strings.Fields(text)),
		IsAllUpper:        isAllUpper(text),
		IsTitleCase:       isTitleCase(text),
		StartsWithCapital: unicode.IsUpper(first),
		HasDigit:          strings.IndexFunc(text, unicode.IsDigit) >= 0,
	}
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// isAllUpper reports whether s has at least one cased letter and no
// lowercase ones. Digits and punctuation are ignored.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if isCased(r) {
			cased = true
		}
	}
	return cased
}

// isTitleCase reports whether every run of letters in s starts with an
// uppercase letter followed only by lowercase ones. "Chapter 1" and
// "Related Work" qualify; "The quick fox" and "NASA Report" do not.
func isTitleCase(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// titleCase uppercases the first letter of every run of letters and
// lowercases the rest: "LINEAR ALGEBRA" becomes "Linear Algebra".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		if isCased(r) {
			if prevCased {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevCased = true
		} else {
			prevCased = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// joinText joins the text of lines with single spaces.
func joinText(lines []Line) string {
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(l.Text)
	}
	return b.String()
}
