package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Errors returned by the extraction step. Both are user-facing conditions the
// handler translates into flash messages.
var (
	// ErrNoContent is returned when neither pasted text nor the uploaded
	// file yields any usable text.
	ErrNoContent = errors.New("no content provided")

	// ErrUnsupportedFileType marks uploads whose extension is not one of
	// .pdf, .docx or .txt.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// Result is the outcome of combining pasted text with an uploaded document.
type Result struct {
	// Text is the combined blob: pasted text, a newline, then extracted
	// text, with surrounding whitespace trimmed.
	Text string

	// Unsupported is set when the upload had an unrecognized extension.
	// The upload contributed no text, but pasted text still counts; the
	// caller should warn the user either way.
	Unsupported bool
}

// Extractor combines pasted text with text extracted from an uploaded
// document. The zero value is not usable; construct with NewExtractor.
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates an Extractor that logs through the given logger.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Combine produces the single text blob used as generation input.
//
// If filename is non-empty, fileData is dispatched on the lowercased filename
// extension. Returns ErrNoContent when the combined text is empty; the
// returned Result is still meaningful in that case (Unsupported survives so
// the caller can show both warnings).
func (e *Extractor) Combine(
	ctx context.Context,
	rawText string,
	filename string,
	fileData []byte,
) (Result, error) {
	var res Result
	var extracted string

	if filename != "" {
		var err error
		extracted, err = e.fromFile(ctx, filename, fileData)
		switch {
		case errors.Is(err, ErrUnsupportedFileType):
			res.Unsupported = true
		case err != nil:
			return res, fmt.Errorf("failed to extract text from %s: %w", filename, err)
		}
	}

	res.Text = strings.TrimSpace(rawText + "\n" + extracted)
	if res.Text == "" {
		return res, ErrNoContent
	}

	return res, nil
}

// fromFile dispatches on the filename extension.
func (e *Extractor) fromFile(ctx context.Context, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	e.logger.DebugContext(ctx, "extracting uploaded file",
		"filename", filename,
		"extension", ext,
		"size_bytes", len(data))

	switch ext {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	case ".txt":
		// Decode as UTF-8, dropping undecodable bytes.
		return strings.ToValidUTF8(string(data), ""), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, ext)
	}
}
