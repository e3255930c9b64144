package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// render writes v in the selected --format.
func render(w io.Writer, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return renderText(w, v)
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or text)", format)
	}
}

func renderText(w io.Writer, v any) error {
	switch out := v.(type) {
	case segmentOutput:
		fmt.Fprintf(w, "Strategy: %s\nSections: %d\n\n", out.Strategy, len(out.Sections))
		for _, s := range out.Sections {
			fmt.Fprintf(w, "[%s] %s (%s, confidence %d, %d chars)\n", s.ID, s.Title, s.Type, s.Confidence, len([]rune(s.Content)))
			if s.Preview != "" {
				fmt.Fprintf(w, "    %s\n", s.Preview)
			}
		}
	case chunkOutput:
		fmt.Fprintf(w, "Chunks: %d\n\n", len(out.Chunks))
		for _, c := range out.Chunks {
			where := c.SectionID
			if where == "" {
				where = "document"
			}
			fmt.Fprintf(w, "#%d %s %q (%d chars, %d overlap words)\n", c.ChunkID, where, c.SectionTitle, c.CharCount, c.OverlapWords)
			fmt.Fprintf(w, "    %s\n", excerpt(c.Text, 100))
		}
	default:
		return fmt.Errorf("no text rendering for %T", v)
	}
	return nil
}

// excerpt shortens s to at most n runes on one line.
func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
