package segment

import (
	"regexp"
	"strings"

	"github.com/Samrudhp/EduSummaryV2/internal/outline"
)

// Rule is one entry of the heading table. Match returns the cleaned title
// when the line has the rule's shape.
type Rule struct {
	Type  outline.HeadingType
	Score int
	Match func(l Line) (title string, ok bool)
}

// MinCandidateScore is the lowest score kept as a heading candidate.
const MinCandidateScore = 5

type academicName struct {
	re    *regexp.Regexp
	label string
}

var academicNames = []academicName{
	{regexp.MustCompile(`^abstract$`), "Abstract"},
	{regexp.MustCompile(`^introduction$`), "Introduction"},
	{regexp.MustCompile(`^(related work|literature review|background)$`), "Related Work"},
	{regexp.MustCompile(`^(methodology|methods?)$`), "Methodology"},
	{regexp.MustCompile(`^(experiments?|experimental setup)$`), "Experiments"},
	{regexp.MustCompile(`^(results?|findings?)$`), "Results"},
	{regexp.MustCompile(`^(discussion|analysis)$`), "Discussion"},
	{regexp.MustCompile(`^conclusions?$`), "Conclusion"},
	{regexp.MustCompile(`^(references?|bibliography)$`), "References"},
	{regexp.MustCompile(`^acknowledge?ments?$`), "Acknowledgements"},
	{regexp.MustCompile(`^(appendix|appendices)$`), "Appendix"},
}

var (
	numberedRe       = regexp.MustCompile(`(?i)^(chapter|section|part|unit|module|lesson|article)\s+\d+`)
	numberedPrefixRe = regexp.MustCompile(`(?i)^(chapter|section|part|unit|module|lesson|article)\s+`)
	dottedRe         = regexp.MustCompile(`^\d+(\.\d+)?\.?\s+[A-Z][a-zA-Z\s]{2,}$`)
	dottedPrefixRe   = regexp.MustCompile(`^\d+(\.\d+)?\.?\s+`)
)

// rules is the heading table in priority order. The first match wins.
var rules = [...]Rule{
	{Type: outline.TypeAcademic, Score: 10, Match: matchAcademic},
	{Type: outline.TypeNumbered, Score: 9, Match: matchNumbered},
	{Type: outline.TypeDotted, Score: 8, Match: matchDotted},
	{Type: outline.TypeAllCaps, Score: 7, Match: matchAllCaps},
	{Type: outline.TypeTitleCase, Score: 6, Match: matchTitleCase},
	{Type: outline.TypeShortCapitalized, Score: 5, Match: matchShortCapitalized},
}

// Rules returns a copy of the heading table in priority order.
func Rules() []Rule {
	out := rules
	return out[:]
}

func matchAcademic(l Line) (string, bool) {
	lower := strings.ToLower(l.Text)
	for _, a := range academicNames {
		if a.re.MatchString(lower) {
			return a.label, true
		}
	}
	return "", false
}

func matchNumbered(l Line) (string, bool) {
	if !numberedRe.MatchString(l.Text) {
		return "", false
	}
	rest := strings.TrimSpace(numberedPrefixRe.ReplaceAllString(l.Text, ""))
	keyword := titleCase(strings.Fields(l.Text)[0])
	return keyword + " " + rest, true
}

func matchDotted(l Line) (string, bool) {
	if !dottedRe.MatchString(l.Text) {
		return "", false
	}
	return dottedPrefixRe.ReplaceAllString(l.Text, ""), true
}

func matchAllCaps(l Line) (string, bool) {
	if l.IsAllUpper && l.Words >= 2 && l.Length >= 8 && l.Length <= 60 && !l.HasDigit {
		return titleCase(l.Text), true
	}
	return "", false
}

func matchTitleCase(l Line) (string, bool) {
	if l.IsTitleCase && l.Words >= 2 && l.Length >= 10 && l.Length <= 80 &&
		!strings.ContainsAny(lastChar(l.Text), ".,;:?!") {
		return l.Text, true
	}
	return "", false
}

func matchShortCapitalized(l Line) (string, bool) {
	if l.StartsWithCapital && l.Words >= 2 && l.Words <= 8 && l.Length >= 15 && l.Length <= 70 &&
		!strings.ContainsAny(lastChar(l.Text), ".,") {
		return l.Text, true
	}
	return "", false
}

func lastChar(s string) string {
	if s == "" {
		return ""
	}
	return s[len(s)-1:]
}
