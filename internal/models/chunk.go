package models

// Metadata field names persisted with each chunk. The index schema is not
// guaranteed, so deletion bookkeeping treats MetaSource as the primary field
// with fallbacks (see pipeline.DeleteDocument).
const (
	MetaSource            = "source"
	MetaChunkIndex        = "chunk_index"
	MetaContentType       = "content_type"
	MetaTokenCount        = "token_count"
	MetaTotalChunks       = "total_chunks"
	MetaSectionHeader     = "section_header"
	MetaSectionID         = "section_id"
	MetaIsCompleteSection = "is_complete_section"
	MetaIsPartialSection  = "is_partial_section"
	MetaChunkPart         = "chunk_part"
	MetaTableID           = "table_id"
	MetaTableHeaders      = "headers"
	MetaIsPartialTable    = "is_partial_table"
	MetaTablePart         = "part"
)

// Chunk is the unit persisted to the search index.
type Chunk struct {
	ID          string                 `json:"id"`
	Content     string                 `json:"content"`
	Type        ContentType            `json:"type"`
	Metadata    map[string]interface{} `json:"metadata"`
	TokenCount  int                    `json:"token_count"`
	ContentHash string                 `json:"content_hash"`
}

// IsCompleteSection reports whether the chunk covers a whole section.
func (c *Chunk) IsCompleteSection() bool {
	v, ok := c.Metadata[MetaIsCompleteSection].(bool)
	return ok && v
}

// SectionHeader returns the section header metadata, or "" when absent.
func (c *Chunk) SectionHeader() string {
	s, _ := c.Metadata[MetaSectionHeader].(string)
	return s
}

// Source returns the source document key metadata, or "" when absent.
func (c *Chunk) Source() string {
	s, _ := c.Metadata[MetaSource].(string)
	return s
}

// RetrievedChunk is a chunk plus its query-time relevance score.
type RetrievedChunk struct {
	Chunk
	Score float64 `json:"score"`
}
