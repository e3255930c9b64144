package segment

import "github.com/Samrudhp/EduSummaryV2/internal/outline"

// Candidate is a line provisionally classified as a heading.
type Candidate struct {
	LineIndex int // index into the normalized line sequence
	Title     string
	Type      outline.HeadingType
	Score     int
	Line      Line
}

// Classify runs the heading table against one line.
func Classify(l Line) (Candidate, bool) {
	for _, r := range rules {
		title, ok := r.Match(l)
		if !ok {
			continue
		}
		if r.Score < MinCandidateScore {
			return Candidate{}, false
		}
		return Candidate{Title: title, Type: r.Type, Score: r.Score, Line: l}, true
	}
	return Candidate{}, false
}

// Score returns every heading candidate in lines, in line order.
func Score(lines []Line) []Candidate {
	var out []Candidate
	for i, l := range lines {
		c, ok := Classify(l)
		if !ok {
			continue
		}
		c.LineIndex = i
		out = append(out, c)
	}
	return out
}
