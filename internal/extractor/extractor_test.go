package extractor

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a minimal single-font PDF with one text run per page.
func buildPDF(pages ...string) []byte {
	var objects []string
	objects = append(objects,
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // pages tree, filled below
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	kids := ""
	for i, text := range pages {
		pageObj := 4 + 2*i
		contentObj := pageObj + 1
		kids += fmt.Sprintf("%d 0 R ", pageObj)
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentObj),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestPDFExtractor_Extract(t *testing.T) {
	ctx := context.Background()
	ex := New()

	t.Run("single page", func(t *testing.T) {
		res, err := ex.Extract(ctx, buildPDF("Quarterly revenue grew by ten percent"))
		require.NoError(t, err)
		assert.Equal(t, "Quarterly revenue grew by ten percent", res.Text)
		assert.Equal(t, 1, res.PageCount)
		assert.Equal(t, 6, res.WordCount)
	})

	t.Run("pages joined with blank line", func(t *testing.T) {
		res, err := ex.Extract(ctx, buildPDF("First page", "Second page"))
		require.NoError(t, err)
		assert.Equal(t, "First page\n\nSecond page", res.Text)
		assert.Equal(t, 2, res.PageCount)
	})

	t.Run("no text", func(t *testing.T) {
		_, err := ex.Extract(ctx, buildPDF(""))
		assert.ErrorIs(t, err, ErrNoExtractableText)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ex.Extract(ctx, nil)
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("not a pdf", func(t *testing.T) {
		_, err := ex.Extract(ctx, bytes.Repeat([]byte("plain text "), 20))
		assert.ErrorContains(t, err, "open pdf")
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := ex.Extract(cctx, buildPDF("text"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF(buildPDF("hello")))
	assert.True(t, IsPDF([]byte("%PDF-1.7\n")))
	assert.False(t, IsPDF([]byte("hello world")))
	assert.False(t, IsPDF([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}))
	assert.False(t, IsPDF(nil))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "abcd\n\txy", SanitizeText("ab\x00cd\x01\x02\n\txy"))
	assert.Equal(t, "trimmed", SanitizeText("  trimmed \n"))
	assert.Equal(t, "", SanitizeText(""))
	assert.Equal(t, "del", SanitizeText("d\x7fel"))
}
