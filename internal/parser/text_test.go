package parser

import (
	"strings"
	"testing"
)

func TestTextParser_KeepsLines(t *testing.T) {
	input := "First paragraph line one.\r\nFirst paragraph line two.  \n\nSecond paragraph.\n\nThird paragraph."
	p := &TextParser{}
	got, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph.\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	got, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestTextParser_SingleLine(t *testing.T) {
	p := &TextParser{}
	got, err := p.Parse(strings.NewReader("Hello world"), "single.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello world\n" {
		t.Errorf("expected %q, got %q", "Hello world\n", got)
	}
}

func TestTextParser_MultipleBlankLines(t *testing.T) {
	// Consecutive blank or whitespace-only lines collapse to one.
	input := "\n\nPara one.\n\n   \n\t\nPara two."
	p := &TextParser{}
	got, err := p.Parse(strings.NewReader(input), "gaps.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Para one.\n\nPara two.\n" {
		t.Errorf("expected %q, got %q", "Para one.\n\nPara two.\n", got)
	}
}

func TestTextParser_PreservesPageMarkers(t *testing.T) {
	input := "[PAGE_1]\nIntroduction\n[PAGE_2]\nMore text"
	p := &TextParser{}
	got, err := p.Parse(strings.NewReader(input), "paged.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "[PAGE_1]\nIntroduction\n[PAGE_2]\n") {
		t.Errorf("expected page markers kept, got %q", got)
	}
}
