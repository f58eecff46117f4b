package textsrc

import (
	"bufio"
	"io"
	"strings"
)

// TextExtractor handles plain text. Blank lines separate paragraphs.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			paragraphs = appendParagraph(paragraphs, current.String())
			current.Reset()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return appendParagraph(paragraphs, current.String()), nil
}
