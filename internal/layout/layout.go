// Package layout defines the layout-analysis collaborator: a service that
// turns raw document bytes into role-tagged paragraphs and table cells.
package layout

import "context"

// Paragraph is one paragraph returned by the layout service.
type Paragraph struct {
	Content string `json:"content"`
	Role    string `json:"role,omitempty"`
}

// Cell is a single table cell with its grid coordinates.
type Cell struct {
	RowIndex    int    `json:"rowIndex"`
	ColumnIndex int    `json:"columnIndex"`
	Content     string `json:"content"`
}

// Table is one table as a flat list of cells.
type Table struct {
	Cells []Cell `json:"cells"`
}

// Result is the raw analysis output for one document.
type Result struct {
	Paragraphs []Paragraph `json:"paragraphs"`
	Tables     []Table     `json:"tables"`
}

// Analyzer analyzes document bytes. ext is the lowercase file extension
// including the leading dot (e.g. ".pdf"); implementations may ignore it.
// Callers treat any error as "nothing extracted", never as fatal.
type Analyzer interface {
	Analyze(ctx context.Context, content []byte, ext string) (*Result, error)
}
