// Package textsrc turns in-memory documents into plain-text paragraphs.
package textsrc

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Kind identifies a document format.
type Kind int

const (
	Text Kind = iota
	Markdown
	HTML
	CSV
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Markdown:
		return "markdown"
	case HTML:
		return "html"
	case CSV:
		return "csv"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Extractor reads a document and returns its paragraphs in order.
type Extractor interface {
	Extract(r io.Reader) ([]string, error)
}

// KindFor returns the document kind for a filename.
func KindFor(name string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".txt":
		return Text, nil
	case ".md", ".markdown":
		return Markdown, nil
	case ".html", ".htm":
		return HTML, nil
	case ".csv":
		return CSV, nil
	default:
		return 0, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// ForKind returns the extractor for a document kind.
func ForKind(k Kind) (Extractor, error) {
	switch k {
	case Text:
		return &TextExtractor{}, nil
	case Markdown:
		return &MarkdownExtractor{}, nil
	case HTML:
		return &HTMLExtractor{}, nil
	case CSV:
		return &CSVExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported kind: %s", k)
	}
}

// Extract returns the trimmed, non-empty paragraphs of src.
func Extract(src []byte, k Kind) ([]string, error) {
	ex, err := ForKind(k)
	if err != nil {
		return nil, err
	}
	return ex.Extract(bytes.NewReader(src))
}

// appendParagraph trims p and appends it unless it is empty.
func appendParagraph(paras []string, p string) []string {
	p = strings.TrimSpace(p)
	if p == "" {
		return paras
	}
	return append(paras, p)
}
