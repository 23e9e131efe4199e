package models

import "time"

// DocumentInfo describes a stored raw document (a blob in the document store).
type DocumentInfo struct {
	Key          string    `json:"key"`
	DisplayName  string    `json:"display_name,omitempty"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// StructuralElement is one classified unit of extracted content. Elements are
// produced and consumed within a single indexing pass; they are never persisted.
type StructuralElement struct {
	Content    string
	Type       ContentType
	Role       string // hint from the layout service, may be empty
	Position   int    // document order
	TokenCount int
}

// Section groups consecutive elements under one logical header.
type Section struct {
	Header      string
	Type        ContentType
	Elements    []StructuralElement
	SectionID   int // monotonic per document
	TotalTokens int
}

// Table holds rows reconstructed from layout-service cells. Content is the
// rows joined with newlines, each row's cells joined with " | ".
type Table struct {
	Content    string
	Headers    []string // row 0
	TableID    int
	TokenCount int
}

// DocumentStructure is the full structural extraction result for one document.
type DocumentStructure struct {
	Sections []Section
	Tables   []Table
	Elements []StructuralElement // flat view in document order
}

// Empty reports whether extraction produced nothing usable.
func (d *DocumentStructure) Empty() bool {
	return len(d.Sections) == 0 && len(d.Tables) == 0
}
