package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVParser handles CSV files. Each data row becomes one line of
// "header: value" pairs, in blocks of rowBatch rows.
type CSVParser struct{}

const rowBatch = 20

func (p *CSVParser) Parse(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	// First row is headers.
	headers := records[0]
	var out lines
	out.add("Headers: " + strings.Join(headers, ", "))

	for i, row := range records[1:] {
		if i%rowBatch == 0 {
			out.blank()
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			if j < len(headers) {
				cells[j] = headers[j] + ": " + cell
			} else {
				cells[j] = cell
			}
		}
		out.add(strings.Join(cells, ", "))
	}
	return out.String(), nil
}
