package parser

import (
	"bufio"
	"io"
	"strings"
)

// TextParser handles plain text files. Lines are kept without trailing
// whitespace; runs of blank lines collapse to one.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out strings.Builder
	blank := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			if !blank {
				out.WriteByte('\n')
			}
			blank = true
			continue
		}
		out.WriteString(line)
		out.WriteByte('\n')
		blank = false
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return out.String(), nil
}
