package extract

import (
	"archive/zip"
	"bytes"
	"regexp"
	"strings"
)

// docxDocumentXMLPath is the default path to the main document body inside a .docx zip.
const docxDocumentXMLPath = "word/document.xml"

// contentTypesPath is the path to [Content_Types].xml in OOXML packages.
const contentTypesPath = "[Content_Types].xml"

// docxMainContentType is the content type for the main document in DOCX files.
const docxMainContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"

var (
	// wpTag matches one <w:p>...</w:p> paragraph block, attributes included.
	wpTag = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	// wtTag matches <w:t>text</w:t> or <w:t xml:space="preserve">text</w:t>.
	wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
	// pStyleTag captures the paragraph style id (Heading1, Title, ...).
	pStyleTag = regexp.MustCompile(`<w:pStyle[^>]*w:val="([^"]+)"`)

	// partNameRe extracts PartName from Override elements in [Content_Types].xml.
	partNameRe = regexp.MustCompile(`<Override[^>]+PartName="([^"]+)"[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"`)
	// partNameRe2 handles the case where ContentType appears before PartName.
	partNameRe2 = regexp.MustCompile(`<Override[^>]+ContentType="` + regexp.QuoteMeta(docxMainContentType) + `"[^>]+PartName="([^"]+)"`)
)

// findDocxMainDocumentPath finds the main document path from [Content_Types].xml.
// Returns the path without leading slash, or empty string if not found.
func findDocxMainDocumentPath(zr *zip.Reader) string {
	for _, f := range zr.File {
		if f.Name != contentTypesPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ""
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return ""
		}
		_ = rc.Close()

		content := buf.String()
		if matches := partNameRe.FindStringSubmatch(content); len(matches) > 1 {
			return strings.TrimPrefix(matches[1], "/")
		}
		if matches := partNameRe2.FindStringSubmatch(content); len(matches) > 1 {
			return strings.TrimPrefix(matches[1], "/")
		}
		return ""
	}
	return ""
}

// extractDOCX extracts per-paragraph text from .docx bytes. DOCX is a ZIP
// containing word/document.xml (OOXML); each <w:p> block becomes one
// paragraph from its <w:t> runs, and the paragraph style maps to a role
// hint (Title -> title, HeadingN -> heading).
func extractDOCX(content []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, wrapf("extract DOCX: not a zip", err)
	}

	docPath := findDocxMainDocumentPath(zr)
	if docPath == "" {
		docPath = docxDocumentXMLPath
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name != docPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, wrapf("extract DOCX: open document", err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return nil, wrapf("extract DOCX: read document", err)
		}
		_ = rc.Close()
		docXML = buf.Bytes()
		break
	}
	if docXML == nil {
		return &Result{}, nil
	}

	res := &Result{}
	for _, block := range wpTag.FindAllString(string(docXML), -1) {
		var b strings.Builder
		for _, m := range wtTag.FindAllStringSubmatch(block, -1) {
			b.WriteString(m[1])
		}
		text := strings.TrimSpace(b.String())
		if text == "" {
			continue
		}
		res.Paragraphs = append(res.Paragraphs, Paragraph{
			Text: text,
			Role: docxStyleRole(block),
		})
	}
	return res, nil
}

// docxStyleRole maps a paragraph's style id to a role hint, or "".
func docxStyleRole(block string) string {
	m := pStyleTag.FindStringSubmatch(block)
	if len(m) < 2 {
		return ""
	}
	style := strings.ToLower(m[1])
	switch {
	case strings.Contains(style, "title"):
		return RoleTitle
	case strings.HasPrefix(style, "heading"):
		return RoleHeading
	}
	return ""
}
