package segment

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Samrudhp/EduSummaryV2/internal/outline"
)

const (
	MinFallbackSections = 3
	MaxFallbackSections = 8
	CharsPerSection     = 2000

	// MinFallbackChars is the content a fallback group needs to be emitted.
	MinFallbackChars = 150

	fallbackConfidence = 5
	maxFallbackTitle   = 80
	minFallbackTitle   = 10

	paraMaxLines   = 3
	paraShortLine  = 40
	paraBreakChars = 200
)

var leadingNumberRe = regexp.MustCompile(`^\d+\s+`)

// FallbackResult describes a fallback segmentation.
type FallbackResult struct {
	Sections   []outline.Section
	Target     int // clamp(total/CharsPerSection, Min, Max)
	Paragraphs int
}

// Fallback divides lines into evenly sized groups of heuristic paragraphs
// without relying on headings.
func Fallback(lines []Line) FallbackResult {
	total := runeLen(joinText(lines))
	res := FallbackResult{Target: min(MaxFallbackSections, max(MinFallbackSections, total/CharsPerSection))}

	paras := paragraphs(lines)
	res.Paragraphs = len(paras)
	if len(paras) == 0 {
		return res
	}

	per := max(1, len(paras)/res.Target)
	for i := range res.Target {
		start := i * per
		if start >= len(paras) {
			break
		}
		end := start + per
		if i == res.Target-1 {
			end = len(paras)
		}

		content := strings.Join(paras[start:end], " ")
		if runeLen(content) <= MinFallbackChars {
			continue
		}
		res.Sections = append(res.Sections, fallbackSection(len(res.Sections), i+1, content))
	}

	// Small trailing groups can all fall under the threshold even when the
	// document as a whole does not.
	if len(res.Sections) == 0 && total > MinFallbackChars {
		res.Sections = append(res.Sections, fallbackSection(0, 1, strings.Join(paras, " ")))
	}
	return res
}

// paragraphs groups lines: a new paragraph starts when the running one has
// more than paraMaxLines lines and the current line is short, or when it
// already exceeds paraBreakChars and the current line starts uppercase.
func paragraphs(lines []Line) []string {
	var out []string
	var cur []string
	curLen := 0

	for _, l := range lines {
		if len(cur) > 0 {
			first, _ := utf8.DecodeRuneInString(l.Text)
			if (len(cur) > paraMaxLines && l.Length < paraShortLine) ||
				(curLen > paraBreakChars && unicode.IsUpper(first)) {
				out = append(out, strings.Join(cur, " "))
				cur, curLen = nil, 0
			}
		}
		if len(cur) > 0 {
			curLen++
		}
		cur = append(cur, l.Text)
		curLen += l.Length
	}
	if len(cur) > 0 {
		out = append(out, strings.Join(cur, " "))
	}
	return out
}

func fallbackSection(n, group int, content string) outline.Section {
	first, _, _ := strings.Cut(content, ".")
	title := strings.TrimSpace(truncate(first, maxFallbackTitle))
	title = leadingNumberRe.ReplaceAllString(title, "")
	if runeLen(title) < minFallbackTitle {
		title = fmt.Sprintf("Section %d", group)
	}

	return outline.Section{
		ID:         outline.SectionID(n),
		Title:      title,
		Preview:    preview(content),
		Content:    content,
		Type:       outline.TypeContentBased,
		Confidence: fallbackConfidence,
	}
}
