// Package ingest turns a file on disk into cleaned document text plus
// chunks ready for summarization. Supported formats: plain text and PDF.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/document"
)

// Result is the extracted and chunked content of one file.
type Result struct {
	Filename string
	Text     string
	Chunks   []string
}

// File extracts text from path by extension, cleans it, and chunks it
// with the given maximum chunk size (0 means the default). Unsupported
// extensions and empty documents are validation errors.
func File(path string, chunkSize int) (*Result, error) {
	if chunkSize <= 0 {
		chunkSize = document.DefaultChunkSize
	}

	var raw string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		raw, err = extractTxt(path)
	case ".pdf":
		raw, err = extractPDF(path)
	default:
		return nil, apperr.Validation("unsupported file type %q, expected .txt or .pdf", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	text := document.CleanText(raw)
	if text == "" {
		return nil, apperr.Validation("document has no extractable text")
	}

	return &Result{
		Filename: filepath.Base(path),
		Text:     text,
		Chunks:   document.Chunk(text, chunkSize),
	}, nil
}

// extractTxt reads the file as UTF-8, dropping invalid byte sequences.
func extractTxt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

// extractPDF concatenates plain text page by page. Pages that cannot be
// decoded are skipped rather than failing the whole document.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var content strings.Builder
	for pageNum := 1; pageNum <= r.NumPage(); pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		content.WriteString(text)
		content.WriteString("\n\n")
	}
	return content.String(), nil
}
