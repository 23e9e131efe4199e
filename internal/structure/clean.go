// Package structure turns raw layout-analysis output into classified
// elements, sections, and tables.
package structure

import (
	"regexp"
	"strings"
)

var (
	bulletRe       = regexp.MustCompile(`[•●▪∙◦]`)
	hspaceRe       = regexp.MustCompile(`[ \t]+`)
	blankRunRe     = regexp.MustCompile(`\n{4,}`)
	numberingRe    = regexp.MustCompile(`(\d+)\.(\s*)`)
	subNumberingRe = regexp.MustCompile(`(\d+\.\d+)\.(\s*)`)
)

// CleanText normalizes extracted text while preserving document structure:
// non-breaking spaces become regular spaces, bullet glyphs become "- ",
// runs of horizontal whitespace collapse, consecutive blank lines cap at 3,
// and ordinal numbering punctuation ("1." / "1.1.") gets a single trailing
// space. Applied at index time only, never to query text.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	txt := strings.ReplaceAll(text, " ", " ")
	txt = bulletRe.ReplaceAllString(txt, "- ")
	txt = hspaceRe.ReplaceAllString(txt, " ")
	txt = blankRunRe.ReplaceAllString(txt, "\n\n\n")
	txt = numberingRe.ReplaceAllString(txt, "$1. ")
	txt = subNumberingRe.ReplaceAllString(txt, "$1. ")
	return strings.TrimSpace(txt)
}
