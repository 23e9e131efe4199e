package extract

import (
	"archive/zip"
	"bytes"
	"regexp"
	"strings"
)

// odContentPath is the path to the main content inside OpenDocument zips.
const odContentPath = "content.xml"

var (
	odTextP = regexp.MustCompile(`<text:p[^>]*>(.*?)</text:p>`)
	odTextH = regexp.MustCompile(`<text:h[^>]*>(.*?)</text:h>`)
	odTag   = regexp.MustCompile(`<[^>]+>`)
)

// readODContent returns content.xml bytes from an OpenDocument zip.
func readODContent(content []byte, format string) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", wrapf("extract "+format+": not a zip", err)
	}
	for _, f := range zr.File {
		if f.Name != odContentPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", wrapf("extract "+format+": open content", err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return "", wrapf("extract "+format+": read content", err)
		}
		_ = rc.Close()
		return buf.String(), nil
	}
	return "", nil
}

// extractODP extracts paragraphs from .odp bytes (OpenDocument Presentation).
// text:h elements become heading-role paragraphs; text:p elements become
// plain paragraphs. Nested spans are flattened by stripping inner tags.
func extractODP(content []byte) (*Result, error) {
	xml, err := readODContent(content, "ODP")
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, m := range odTextH.FindAllStringSubmatch(xml, -1) {
		if text := odFlatten(m[1]); text != "" {
			res.Paragraphs = append(res.Paragraphs, Paragraph{Text: text, Role: RoleHeading})
		}
	}
	for _, m := range odTextP.FindAllStringSubmatch(xml, -1) {
		if text := odFlatten(m[1]); text != "" {
			res.Paragraphs = append(res.Paragraphs, Paragraph{Text: text})
		}
	}
	return res, nil
}

// odFlatten strips nested markup and trims the remaining text.
func odFlatten(s string) string {
	return strings.TrimSpace(odTag.ReplaceAllString(s, " "))
}
