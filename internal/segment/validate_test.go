package segment

import (
	"strings"
	"testing"
)

const bodyLine = "Enzymes are proteins that speed up chemical reactions in living organisms without being consumed."

func linesOf(texts ...string) []Line {
	out := make([]Line, len(texts))
	for i, s := range texts {
		out[i] = newLine(s, i)
	}
	return out
}

func TestValidate_ProximityKeepsHigherScore(t *testing.T) {
	lines := linesOf(
		"Key Concepts Overview", // title case, 6
		"short note",
		"CORE DEFINITIONS HERE", // all caps, 7
		bodyLine,
		bodyLine,
	)
	cands := Score(lines)
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}

	v := Validate(cands, lines)
	if len(v.Headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(v.Headings))
	}
	if v.Headings[0].LineIndex != 2 || v.Headings[0].Score != 7 {
		t.Errorf("expected the score-7 heading at line 2, got %+v", v.Headings[0])
	}
	if v.Merged != 1 {
		t.Errorf("expected 1 merged, got %d", v.Merged)
	}
}

func TestValidate_ProximityTieKeepsEarlier(t *testing.T) {
	lines := linesOf(
		"Key Concepts Overview",
		"short note",
		"Cell Structure And Function",
		bodyLine,
	)
	v := Validate(Score(lines), lines)
	if len(v.Headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(v.Headings))
	}
	if v.Headings[0].LineIndex != 0 {
		t.Errorf("expected earlier heading to win the tie, got line %d", v.Headings[0].LineIndex)
	}
}

func TestValidate_ContentBetweenPreventsMerge(t *testing.T) {
	long := strings.Repeat("x", 120)
	lines := linesOf("Chapter 1", long, "Chapter 2", long)
	v := Validate(Score(lines), lines)
	if len(v.Headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(v.Headings))
	}
	if v.Merged != 0 {
		t.Errorf("expected no merges, got %d", v.Merged)
	}
}

func TestValidate_DistantCandidatesKept(t *testing.T) {
	lines := linesOf(
		"Key Concepts Overview",
		bodyLine,
		"tiny",
		"Cell Structure And Function",
		bodyLine,
	)
	v := Validate(Score(lines), lines)
	if len(v.Headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(v.Headings))
	}
}

func TestValidate_RequiresBodyText(t *testing.T) {
	lines := linesOf(
		"Key Concepts Overview",
		"short line one",
		"short line two",
		"SHOUTING LINE THAT IS LONG ENOUGH TO COUNT AS BODY TEXT IF IT WERE NOT UPPER",
		"short line three",
		bodyLine, // fifth line after the heading, outside the lookahead
	)
	v := Validate(Score(lines), lines)
	if len(v.Headings) != 0 {
		t.Fatalf("expected 0 headings, got %+v", v.Headings)
	}
	if v.NoBody != 1 {
		t.Errorf("expected 1 no-body rejection, got %d", v.NoBody)
	}
}

func TestValidate_HighScoresExemptFromBodyCheck(t *testing.T) {
	lines := linesOf("Chapter 4", "short line one", "short line two", "Abstract", "short line three")
	v := Validate(Score(lines), lines)
	if len(v.Headings) != 2 {
		t.Fatalf("expected 2 headings, got %d", len(v.Headings))
	}
	if v.Headings[0].Title != "Chapter 4" || v.Headings[1].Title != "Abstract" {
		t.Errorf("unexpected headings %q, %q", v.Headings[0].Title, v.Headings[1].Title)
	}
}

func TestValidate_Empty(t *testing.T) {
	v := Validate(nil, nil)
	if len(v.Headings) != 0 || v.Merged != 0 || v.NoBody != 0 {
		t.Errorf("expected zero validation, got %+v", v)
	}
}
