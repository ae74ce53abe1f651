// Package extractor turns uploaded PDF bytes into plain text.
package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// PDFMimeType is the only content type accepted for uploads.
const PDFMimeType = "application/pdf"

var (
	ErrEmptyDocument     = errors.New("document is empty")
	ErrNoExtractableText = errors.New("no extractable text found in PDF")
)

// Result holds the output of a PDF text extraction.
type Result struct {
	Text      string
	PageCount int
	WordCount int
}

// TextExtractor extracts plain text from PDF content held in memory.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (*Result, error)
}

// PDFExtractor implements TextExtractor with ledongthuc/pdf.
type PDFExtractor struct{}

// New returns a PDFExtractor.
func New() *PDFExtractor {
	return &PDFExtractor{}
}

var _ TextExtractor = (*PDFExtractor)(nil)

// Extract reads every page and joins the page texts with a blank line.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte) (res *Result, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}
	// The reader panics on some malformed object graphs.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	pageCount := reader.NumPage()
	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i, err)
		}
		if text = SanitizeText(text); text != "" {
			pages = append(pages, text)
		}
	}

	text := strings.Join(pages, "\n\n")
	if text == "" {
		return nil, ErrNoExtractableText
	}
	return &Result{
		Text:      text,
		PageCount: pageCount,
		WordCount: len(strings.Fields(text)),
	}, nil
}

// IsPDF sniffs the content and reports whether it is a PDF document.
func IsPDF(data []byte) bool {
	return mimetype.Detect(data).Is(PDFMimeType)
}

// SanitizeText removes NUL bytes and non-printing control characters that
// some PDF producers leave in text runs. Newlines and tabs are kept.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if ch == '\n' || ch == '\r' || ch == '\t' {
			b.WriteRune(ch)
			continue
		}
		if ch < 0x20 || ch == 0x7f {
			continue
		}
		b.WriteRune(ch)
	}
	return strings.TrimSpace(b.String())
}
