package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Samrudhp/EduSummaryV2/internal/parser"
)

// readInput returns the text of path, or of stdin when path is "-".
// Files are parsed according to their extension.
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	p, err := parser.ForFile(path, parser.Options{PDFFallbackPdftotext: pdftotext})
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := p.Parse(f, path)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", path, err)
	}
	return text, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
