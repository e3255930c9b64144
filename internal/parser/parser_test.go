package parser

import (
	"fmt"
	"testing"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"notes.txt", "*parser.TextParser"},
		{"README.MD", "*parser.MarkdownParser"},
		{"guide.markdown", "*parser.MarkdownParser"},
		{"data.csv", "*parser.CSVParser"},
		{"page.htm", "*parser.HTMLParser"},
		{"book.pdf", "*parser.PDFParser"},
		{"essay.docx", "*parser.DOCXParser"},
		{"deck.pptx", "*parser.PPTXParser"},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.name, Options{})
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got := fmt.Sprintf("%T", p); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, got)
		}
		if !IsSupportedExtension(tt.name) {
			t.Errorf("%s: expected supported extension", tt.name)
		}
	}
}

func TestForFile_Rejected(t *testing.T) {
	for _, name := range []string{"old.ppt", "old.doc", "image.png", "noext"} {
		if _, err := ForFile(name, Options{}); err == nil {
			t.Errorf("%s: expected error", name)
		}
		if IsSupportedExtension(name) {
			t.Errorf("%s: expected unsupported extension", name)
		}
	}
}

func TestForFile_PDFOptions(t *testing.T) {
	p, err := ForFile("book.pdf", Options{PDFFallbackPdftotext: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.(*PDFParser).FallbackPdftotext {
		t.Error("expected pdftotext fallback to be enabled")
	}
}
