package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts the text of every page in document order. The
// row-ordered method runs first; when it yields nothing the simpler plain
// text stream extraction is tried before giving up.
func extractPDF(data []byte) (text string, err error) {
	// The pdf library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: pdf: %v", ErrParse, r)
		}
	}()

	reader, rerr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if rerr != nil {
		return "", fmt.Errorf("%w: pdf: %v", ErrParse, rerr)
	}

	text = pdfTextByRows(reader)
	if strings.TrimSpace(text) == "" {
		text = pdfPlainText(reader)
	}

	return strings.TrimSpace(text), nil
}

// pdfTextByRows walks the pages using the layout-aware row extraction.
func pdfTextByRows(reader *pdf.Reader) string {
	var b strings.Builder

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					b.WriteString(" ")
				}
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// pdfPlainText walks the pages using the content stream extraction.
func pdfPlainText(reader *pdf.Reader) string {
	var b strings.Builder

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}

	return b.String()
}
