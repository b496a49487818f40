package extract_test

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/flashdeck/internal/extract"
)

func newExtractor() *extract.Extractor {
	return extract.NewExtractor(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// docxBytes builds a minimal DOCX archive containing the given paragraphs.
func docxBytes(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		require.NoError(t, xmlEscape(&body, p))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func xmlEscape(w io.Writer, s string) error {
	for _, r := range s {
		switch r {
		case '<':
			if _, err := io.WriteString(w, "&lt;"); err != nil {
				return err
			}
		case '&':
			if _, err := io.WriteString(w, "&amp;"); err != nil {
				return err
			}
		default:
			if _, err := io.WriteString(w, string(r)); err != nil {
				return err
			}
		}
	}
	return nil
}

// pdfBytes builds a one-page PDF containing the given text.
func pdfBytes(t *testing.T, text string) []byte {
	t.Helper()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 10, text)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return buf.Bytes()
}

func TestCombinePastedTextOnly(t *testing.T) {
	t.Parallel()

	res, err := newExtractor().Combine(context.Background(), "  Water boils at 100C.  ", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Water boils at 100C.", res.Text)
	assert.False(t, res.Unsupported)
}

func TestCombineTxtUpload(t *testing.T) {
	t.Parallel()

	res, err := newExtractor().Combine(
		context.Background(),
		"pasted notes",
		"notes.txt",
		[]byte("uploaded notes"),
	)
	require.NoError(t, err)
	assert.Equal(t, "pasted notes\nuploaded notes", res.Text)
}

func TestCombineTxtDropsInvalidUTF8(t *testing.T) {
	t.Parallel()

	data := append([]byte("valid"), 0xff, 0xfe)
	data = append(data, []byte(" text")...)

	res, err := newExtractor().Combine(context.Background(), "", "notes.txt", data)
	require.NoError(t, err)
	assert.Equal(t, "valid text", res.Text)
}

func TestCombineDocxUpload(t *testing.T) {
	t.Parallel()

	data := docxBytes(t, "First paragraph", "Second paragraph")

	res, err := newExtractor().Combine(context.Background(), "", "Lecture.DOCX", data)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nSecond paragraph", res.Text)
}

func TestCombineDocxMalformed(t *testing.T) {
	t.Parallel()

	_, err := newExtractor().Combine(
		context.Background(),
		"",
		"broken.docx",
		[]byte("not a zip archive"),
	)
	require.Error(t, err)
	assert.NotErrorIs(t, err, extract.ErrUnsupportedFileType)
}

func TestCombinePDFUpload(t *testing.T) {
	t.Parallel()

	data := pdfBytes(t, "Osmosis moves water across membranes.")

	res, err := newExtractor().Combine(context.Background(), "", "bio.pdf", data)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Osmosis moves water across membranes.")
}

func TestCombineUnsupportedExtension(t *testing.T) {
	t.Parallel()

	// Pasted text still counts even though the upload is rejected.
	res, err := newExtractor().Combine(
		context.Background(),
		"pasted",
		"notes.xyz",
		[]byte("ignored"),
	)
	require.NoError(t, err)
	assert.True(t, res.Unsupported)
	assert.Equal(t, "pasted", res.Text)
}

func TestCombineUnsupportedExtensionNoText(t *testing.T) {
	t.Parallel()

	res, err := newExtractor().Combine(context.Background(), "", "notes.xyz", []byte("ignored"))
	assert.ErrorIs(t, err, extract.ErrNoContent)
	assert.True(t, res.Unsupported)
}

func TestCombineEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := newExtractor().Combine(context.Background(), "   \n  ", "", nil)
	assert.ErrorIs(t, err, extract.ErrNoContent)
}
