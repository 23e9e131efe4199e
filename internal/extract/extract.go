// Package extract provides structural text extraction from document formats.
// Unlike a plain-text dump, extraction preserves paragraph boundaries, role
// hints for headings, and spreadsheet rows, so downstream classification and
// chunking can work on real document structure.
package extract

import (
	"fmt"
	"strings"
)

// Role hints attached to extracted paragraphs.
const (
	RoleTitle   = "title"
	RoleHeading = "heading"
)

// Paragraph is one extracted paragraph with an optional role hint.
type Paragraph struct {
	Text string
	Role string
}

// TableRows is one extracted table as ordered rows of cell strings.
type TableRows [][]string

// Result holds the structural extraction output for one document.
type Result struct {
	Paragraphs []Paragraph
	Tables     []TableRows
}

// Extract extracts structured content from document bytes based on the file
// extension (including the leading dot, e.g. ".pdf"). Unknown extensions are
// treated as plain text.
func Extract(content []byte, ext string) (*Result, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	case ".pptx":
		return extractPPTX(content)
	case ".xlsx":
		return extractExcel(content)
	case ".odp":
		return extractODP(content)
	case ".ods":
		return extractODS(content)
	case ".txt", ".md", ".rst", "":
		return extractPlain(content)
	default:
		return extractPlain(content)
	}
}

var supportedExtensions = []string{".pdf", ".docx", ".pptx", ".xlsx", ".odp", ".ods", ".txt", ".md", ".rst"}

// Supported reports whether ext maps to a dedicated extractor.
func Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range supportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the extensions with a dedicated extractor.
func SupportedExtensions() []string {
	return append([]string(nil), supportedExtensions...)
}

func wrapf(format string, err error) error {
	return fmt.Errorf(format+": %w", err)
}
