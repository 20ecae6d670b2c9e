package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrProcessingFailed = errors.New("document processing failed")

const (
	// maxPages bounds extraction latency and memory on large uploads.
	maxPages = 20
	// snippetLimit caps the text handed to downstream prompts.
	snippetLimit = 5000
)

// ExtractResult carries the prompt-ready snippet plus the full extracted
// length so the UI can tell the user how much of the document was read.
type ExtractResult struct {
	TextSnippet    string `json:"textSnippet"`
	FullTextLength int    `json:"fullTextLength"`
}

// ExtractText pulls plain text from a PDF, processing at most maxPages
// pages. A corrupt or unsupported file fails whole; there is no
// partial-text fallback.
func ExtractText(fileBytes []byte) (*ExtractResult, error) {
	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessingFailed, err)
	}

	pages := reader.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %w", ErrProcessingFailed, i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	fullText := b.String()
	return &ExtractResult{
		TextSnippet:    Truncate(fullText, snippetLimit),
		FullTextLength: len(fullText),
	}, nil
}

// Truncate caps s at limit bytes.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
