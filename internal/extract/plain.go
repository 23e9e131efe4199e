package extract

import (
	"strings"
	"unicode/utf8"
)

// extractPlain splits plain text into paragraphs on blank lines.
// Invalid UTF-8 sequences are replaced with the replacement character.
func extractPlain(content []byte) (*Result, error) {
	text := string(content)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	res := &Result{}
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		res.Paragraphs = append(res.Paragraphs, Paragraph{Text: block})
	}
	return res, nil
}
