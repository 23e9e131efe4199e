// Package models defines core data structures for documents, structural
// elements, sections, tables, and chunks.
package models

// ContentType is the semantic tag assigned to a piece of extracted content.
type ContentType string

const (
	ContentTypeTitle            ContentType = "title"
	ContentTypeHeading          ContentType = "heading"
	ContentTypeSectionHeader    ContentType = "section_header"
	ContentTypeSubsectionHeader ContentType = "subsection_header"
	ContentTypeTableOfContents  ContentType = "table_of_contents"
	ContentTypeChapter          ContentType = "chapter"
	ContentTypeAppendix         ContentType = "appendix"
	ContentTypePurposeStatement ContentType = "purpose_statement"
	ContentTypeDetailedContent  ContentType = "detailed_content"
	ContentTypeTableContent     ContentType = "table_content"
	ContentTypeTable            ContentType = "table"
	ContentTypeContent          ContentType = "content"
)

// IsHeading reports whether the content type opens a new section.
func (c ContentType) IsHeading() bool {
	switch c {
	case ContentTypeTitle, ContentTypeHeading, ContentTypeSectionHeader,
		ContentTypeChapter, ContentTypeSubsectionHeader:
		return true
	}
	return false
}
