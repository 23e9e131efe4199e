package layout

import (
	"context"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/extract"
)

// LocalAnalyzer runs in-process extraction instead of calling a layout
// service. Role hints are limited to what each format exposes (OOXML styles,
// placeholder types); the content classifier fills in the rest.
type LocalAnalyzer struct{}

// NewLocalAnalyzer returns an Analyzer backed by the extract package.
func NewLocalAnalyzer() *LocalAnalyzer {
	return &LocalAnalyzer{}
}

// Analyze extracts paragraphs and tables from the document bytes.
func (a *LocalAnalyzer) Analyze(ctx context.Context, content []byte, ext string) (*Result, error) {
	doc, err := extract.Extract(content, ext)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, p := range doc.Paragraphs {
		res.Paragraphs = append(res.Paragraphs, Paragraph{Content: p.Text, Role: p.Role})
	}
	for _, rows := range doc.Tables {
		var t Table
		for ri, row := range rows {
			for ci, cell := range row {
				t.Cells = append(t.Cells, Cell{RowIndex: ri, ColumnIndex: ci, Content: cell})
			}
		}
		res.Tables = append(res.Tables, t)
	}
	return res, nil
}
