package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF extracts per-page text and splits it into paragraphs. The PDF
// text layer carries no reliable role information, so paragraphs have no
// role hint; heading detection is left to content classification.
func extractPDF(content []byte) (*Result, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, wrapf("open PDF", err)
	}
	res := &Result{}
	numPages := r.NumPage()
	for i := 0; i < numPages; i++ {
		page := r.Page(i + 1)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, wrapf("extract page", err)
		}
		for _, p := range splitParagraphs(text) {
			res.Paragraphs = append(res.Paragraphs, Paragraph{Text: p})
		}
	}
	return res, nil
}

// splitParagraphs splits running text on blank lines; when there are none,
// each non-empty line becomes a paragraph.
func splitParagraphs(text string) []string {
	blocks := strings.Split(text, "\n\n")
	if len(blocks) == 1 {
		blocks = strings.Split(text, "\n")
	}
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if b != "" {
			out = append(out, b)
		}
	}
	return out
}
