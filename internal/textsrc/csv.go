package textsrc

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVExtractor handles CSV. The first row is a header and is skipped;
// every other row becomes one paragraph of space-joined cells.
type CSVExtractor struct{}

func (e *CSVExtractor) Extract(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	var paragraphs []string
	for _, row := range records[1:] {
		paragraphs = appendParagraph(paragraphs, strings.Join(row, " "))
	}
	return paragraphs, nil
}
