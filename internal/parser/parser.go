// Package parser recovers plain text from uploaded documents. Every parser
// emits newline-separated lines; structural markup such as heading styles
// is flattened so that headings sit on their own line.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Parser converts raw document bytes into plain text.
type Parser interface {
	Parse(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
	".pptx":     true,
}

// Options tunes parser behavior.
type Options struct {
	PDFFallbackPdftotext bool
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".pptx":
		return &PPTXParser{}, nil
	case ".ppt", ".doc":
		return nil, fmt.Errorf("legacy format %s is not supported, convert to %sx", ext, ext)
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// lines accumulates one output line per non-empty block.
type lines struct {
	b strings.Builder
}

// add writes s as a single line, collapsing interior whitespace.
func (l *lines) add(s string) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return
	}
	l.b.WriteString(s)
	l.b.WriteByte('\n')
}

// blank separates groups such as slides or pages.
func (l *lines) blank() {
	if l.b.Len() > 0 {
		l.b.WriteByte('\n')
	}
}

func (l *lines) String() string { return l.b.String() }
