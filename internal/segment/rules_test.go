package segment

import (
	"testing"

	"github.com/Samrudhp/EduSummaryV2/internal/outline"
)

func TestRules_Priority(t *testing.T) {
	rs := Rules()
	if len(rs) != 6 {
		t.Fatalf("expected 6 rules, got %d", len(rs))
	}
	for i := 1; i < len(rs); i++ {
		if rs[i].Score >= rs[i-1].Score {
			t.Errorf("rule %d (%s) does not score below rule %d (%s)", i, rs[i].Type, i-1, rs[i-1].Type)
		}
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	rs := Rules()
	rs[0].Score = 0
	rs[0].Match = func(Line) (string, bool) { return "", false }

	c, ok := Classify(newLine("Abstract", 0))
	if !ok || c.Score != 10 {
		t.Errorf("mutating Rules() result changed classification: %+v ok=%v", c, ok)
	}
}

func TestRule_Academic(t *testing.T) {
	tests := map[string]string{
		"Abstract":           "Abstract",
		"INTRODUCTION":       "Introduction",
		"Literature Review":  "Related Work",
		"background":         "Related Work",
		"Methods":            "Methodology",
		"Experimental Setup": "Experiments",
		"Findings":           "Results",
		"Analysis":           "Discussion",
		"Conclusions":        "Conclusion",
		"Bibliography":       "References",
		"ACKNOWLEDGMENTS":    "Acknowledgements",
		"Acknowledgements":   "Acknowledgements",
		"Appendices":         "Appendix",
	}
	for in, want := range tests {
		title, ok := matchAcademic(newLine(in, 0))
		if !ok {
			t.Errorf("%q: expected academic match", in)
			continue
		}
		if title != want {
			t.Errorf("%q: expected title %q, got %q", in, want, title)
		}
	}

	if _, ok := matchAcademic(newLine("Introduction to Graphs", 0)); ok {
		t.Error("expected no academic match for a longer line")
	}
}

func TestRule_Numbered(t *testing.T) {
	tests := map[string]string{
		"Chapter 1":              "Chapter 1",
		"CHAPTER 3 Cell Biology": "Chapter 3 Cell Biology",
		"lesson 12":              "Lesson 12",
		"Unit 4: Waves":          "Unit 4: Waves",
		"Part  2":                "Part 2",
	}
	for in, want := range tests {
		title, ok := matchNumbered(newLine(in, 0))
		if !ok {
			t.Errorf("%q: expected numbered match", in)
			continue
		}
		if title != want {
			t.Errorf("%q: expected title %q, got %q", in, want, title)
		}
	}

	for _, in := range []string{"Chapter One", "Chapters 1-3 cover basics", "The chapter 2"} {
		if _, ok := matchNumbered(newLine(in, 0)); ok {
			t.Errorf("%q: expected no numbered match", in)
		}
	}
}

func TestRule_Dotted(t *testing.T) {
	tests := map[string]string{
		"2.3 Experimental Design":   "Experimental Design",
		"1. Introduction to Graphs": "Introduction to Graphs",
		"3 Results":                 "Results",
	}
	for in, want := range tests {
		title, ok := matchDotted(newLine(in, 0))
		if !ok {
			t.Errorf("%q: expected dotted match", in)
			continue
		}
		if title != want {
			t.Errorf("%q: expected title %q, got %q", in, want, title)
		}
	}

	for _, in := range []string{"2.3 results are shown", "4 Cells, tissues.", "Figure 2.3 Overview"} {
		if _, ok := matchDotted(newLine(in, 0)); ok {
			t.Errorf("%q: expected no dotted match", in)
		}
	}
}

func TestRule_AllCaps(t *testing.T) {
	title, ok := matchAllCaps(newLine("LINEAR ALGEBRA BASICS", 0))
	if !ok || title != "Linear Algebra Basics" {
		t.Errorf("expected %q, got %q ok=%v", "Linear Algebra Basics", title, ok)
	}

	for _, in := range []string{
		"INTRODUCTION",    // one word
		"TABLE 2 RESULTS", // digits
		"AN",              // too short
		"THIS HEADING IS FAR TOO LONG TO BE A REAL HEADING IN ANY DOCUMENT",
	} {
		if _, ok := matchAllCaps(newLine(in, 0)); ok {
			t.Errorf("%q: expected no all-caps match", in)
		}
	}
}

func TestRule_TitleCase(t *testing.T) {
	title, ok := matchTitleCase(newLine("Principles Of Thermodynamics", 0))
	if !ok || title != "Principles Of Thermodynamics" {
		t.Errorf("expected unchanged title, got %q ok=%v", title, ok)
	}

	for _, in := range []string{"What Is Entropy?", "Cell Theory.", "Short", "Principles of Thermodynamics"} {
		if _, ok := matchTitleCase(newLine(in, 0)); ok {
			t.Errorf("%q: expected no title-case match", in)
		}
	}
}

func TestRule_ShortCapitalized(t *testing.T) {
	title, ok := matchShortCapitalized(newLine("The role of enzymes in digestion", 0))
	if !ok || title != "The role of enzymes in digestion" {
		t.Errorf("expected unchanged title, got %q ok=%v", title, ok)
	}

	for _, in := range []string{
		"The role of enzymes.",
		"Enzymes and their roles,",
		"Short one",
		"The committee reviewed the proposal carefully and agreed to revisit it",
	} {
		if _, ok := matchShortCapitalized(newLine(in, 0)); ok {
			t.Errorf("%q: expected no short-capitalized match", in)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	tests := []struct {
		text  string
		typ   outline.HeadingType
		score int
		title string
	}{
		{"INTRODUCTION", outline.TypeAcademic, 10, "Introduction"},
		{"CHAPTER 2 GENETICS", outline.TypeNumbered, 9, "Chapter 2 GENETICS"},
		{"1. Introduction to Graphs", outline.TypeDotted, 8, "Introduction to Graphs"},
		{"CORE DEFINITIONS HERE", outline.TypeAllCaps, 7, "Core Definitions Here"},
		{"Cell Structure And Function", outline.TypeTitleCase, 6, "Cell Structure And Function"},
		{"What Is Entropy?", outline.TypeShortCapitalized, 5, "What Is Entropy?"},
		{"TABLE 2 RESULTS", outline.TypeShortCapitalized, 5, "TABLE 2 RESULTS"},
	}
	for _, tt := range tests {
		c, ok := Classify(newLine(tt.text, 0))
		if !ok {
			t.Errorf("%q: expected a candidate", tt.text)
			continue
		}
		if c.Type != tt.typ || c.Score != tt.score || c.Title != tt.title {
			t.Errorf("%q: expected (%s, %d, %q), got (%s, %d, %q)",
				tt.text, tt.typ, tt.score, tt.title, c.Type, c.Score, c.Title)
		}
	}
}

func TestScore_SkipsBodyText(t *testing.T) {
	lines := []Line{
		newLine("Chapter 1", 0),
		newLine("Enzymes are proteins that speed up chemical reactions in living organisms without being consumed.", 1),
		newLine("they work at specific temperatures", 2),
		newLine("Chapter 2", 3),
	}
	cands := Score(lines)
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
	if cands[0].LineIndex != 0 || cands[1].LineIndex != 3 {
		t.Errorf("expected line indices 0 and 3, got %d and %d", cands[0].LineIndex, cands[1].LineIndex)
	}
}
