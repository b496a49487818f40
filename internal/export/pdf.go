package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jstrand/flashdeck/internal/domain"
)

// PDF page geometry and typography, in millimeters / points on landscape A4.
const (
	pdfTitleY     = 35.0
	pdfTitleH     = 10.0
	pdfQuestionX  = 18.0
	pdfQuestionY  = 63.0
	pdfAnswerX    = 25.0
	pdfAnswerY    = 56.0
	pdfFontFamily = "Helvetica"

	pdfTitleQuestionSize = 24.0
	pdfTitleAnswerSize   = 20.0
	pdfQuestionSize      = 18.0
	pdfAnswerSize        = 14.0

	// Line heights approximate the font size plus 20% leading.
	pdfQuestionLineH = 7.6
	pdfAnswerLineH   = 5.9
)

// PDF renders the set as a paginated landscape-A4 document: for every card a
// question page followed by an answer page, 2N pages in card order.
func PDF(set *domain.FlashcardSet, layout Layout) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	// Core fonts are cp1252; the translator maps UTF-8 input (bullets,
	// dashes) into it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()

	centeredTitle := func(text string, size float64) {
		pdf.SetFont(pdfFontFamily, "B", size)
		pdf.SetXY(0, pdfTitleY)
		pdf.CellFormat(pageW, pdfTitleH, tr(text), "", 0, "C", false, 0, "")
	}

	bodyLines := func(lines []string, x, y, lineH float64) {
		for _, line := range lines {
			pdf.SetXY(x, y)
			pdf.CellFormat(0, lineH, tr(line), "", 0, "L", false, 0, "")
			y += lineH
		}
	}

	for i, card := range set.Cards {
		// Question page
		pdf.AddPage()
		centeredTitle(fmt.Sprintf("%s — Card %d", set.Title, i+1), pdfTitleQuestionSize)
		pdf.SetFont(pdfFontFamily, "", pdfQuestionSize)
		bodyLines(
			wrapText(card.Question, layout.QuestionWrapWidth),
			pdfQuestionX, pdfQuestionY, pdfQuestionLineH,
		)

		// Answer page
		pdf.AddPage()
		centeredTitle(fmt.Sprintf("%s — Card %d (Answer)", set.Title, i+1), pdfTitleAnswerSize)
		pdf.SetFont(pdfFontFamily, "", pdfAnswerSize)

		y := pdfAnswerY
		for _, segment := range card.AnswerLines() {
			wrapped := wrapText(segment, layout.AnswerWrapWidth)
			bodyLines(wrapped, pdfAnswerX, y, pdfAnswerLineH)
			y += float64(len(wrapped)) * pdfAnswerLineH
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}
