package extract

import (
	"archive/zip"
	"bytes"
	"regexp"
	"sort"
	"strings"
)

// pptxSlidePathPrefix is the path prefix for slide XML files inside a .pptx zip.
const pptxSlidePathPrefix = "ppt/slides/slide"

var (
	// apTag matches one <a:p>...</a:p> paragraph block within a slide.
	apTag = regexp.MustCompile(`(?s)<a:p>.*?</a:p>`)
	// atTag matches <a:t>text</a:t> with any attributes.
	atTag = regexp.MustCompile(`<a:t[^>]*>([^<]*)</a:t>`)
	// titlePhTag marks a title placeholder shape.
	titlePhTag = regexp.MustCompile(`<p:ph[^>]*type="(?:title|ctrTitle)"`)
)

// extractPPTX extracts per-paragraph text from .pptx bytes, slide by slide
// in slide order. Paragraphs inside a title placeholder shape get a title
// role hint.
func extractPPTX(content []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, wrapf("extract PPTX: not a zip", err)
	}
	var slides []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, pptxSlidePathPrefix) && strings.HasSuffix(f.Name, ".xml") {
			slides = append(slides, f)
		}
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].Name < slides[j].Name })

	res := &Result{}
	for _, f := range slides {
		rc, err := f.Open()
		if err != nil {
			return nil, wrapf("extract PPTX: open slide", err)
		}
		var slideBuf bytes.Buffer
		if _, err := slideBuf.ReadFrom(rc); err != nil {
			_ = rc.Close()
			return nil, wrapf("extract PPTX: read slide", err)
		}
		_ = rc.Close()

		slide := slideBuf.String()
		hasTitle := titlePhTag.MatchString(slide)
		first := true
		for _, block := range apTag.FindAllString(slide, -1) {
			var b strings.Builder
			for _, m := range atTag.FindAllStringSubmatch(block, -1) {
				b.WriteString(m[1])
			}
			text := strings.TrimSpace(b.String())
			if text == "" {
				continue
			}
			role := ""
			if hasTitle && first {
				role = RoleTitle
			}
			first = false
			res.Paragraphs = append(res.Paragraphs, Paragraph{Text: text, Role: role})
		}
	}
	return res, nil
}
