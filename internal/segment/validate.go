package segment

const (
	// MergeDistance is how many lines apart two candidates must be to
	// both survive, unless real content separates them.
	MergeDistance = 3

	// ExemptScore and above skip the body-text check.
	ExemptScore = 9

	bodyLookahead = 4
	bodyMinChars  = 50
)

// Validation is the validator's output plus its drop counts.
type Validation struct {
	Headings []Candidate
	Merged   int // candidates collapsed into a neighbour
	NoBody   int // candidates rejected for lack of body text
}

// Validate deduplicates crowded candidates and keeps those that are
// followed by body text. candidates must be sorted by LineIndex.
//
// Two candidates are crowded when fewer than MergeDistance lines apart and
// the lines between them carry no more than MinSectionChars of text; the
// higher score wins and ties keep the earlier one.
func Validate(candidates []Candidate, lines []Line) Validation {
	var v Validation
	for _, c := range candidates {
		if n := len(v.Headings); n > 0 && crowded(v.Headings[n-1], c, lines) {
			if c.Score > v.Headings[n-1].Score {
				v.Headings[n-1] = c
			}
			v.Merged++
			continue
		}
		if c.Score >= ExemptScore || hasBodyAfter(c.LineIndex, lines) {
			v.Headings = append(v.Headings, c)
			continue
		}
		v.NoBody++
	}
	return v
}

func crowded(prev, c Candidate, lines []Line) bool {
	if c.LineIndex-prev.LineIndex >= MergeDistance {
		return false
	}
	return runeLen(joinText(lines[prev.LineIndex+1:c.LineIndex])) <= MinSectionChars
}

func hasBodyAfter(idx int, lines []Line) bool {
	end := min(idx+1+bodyLookahead, len(lines))
	for _, l := range lines[idx+1 : end] {
		if l.Length > bodyMinChars && !l.IsAllUpper {
			return true
		}
	}
	return false
}
