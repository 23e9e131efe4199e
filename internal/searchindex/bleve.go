package searchindex

import (
	"context"
	"fmt"
	"os"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/search"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/chunker"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/docstore"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// indexedChunk is the flat document shape stored in Bleve. All fields are
// stored so hits can be rebuilt into chunks without a side lookup.
type indexedChunk struct {
	Content         string `json:"content"`
	Source          string `json:"source"`
	Type            string `json:"type"`
	SectionHeader   string `json:"section_header"`
	ChunkIndex      int    `json:"chunk_index"`
	TokenCount      int    `json:"token_count"`
	CompleteSection bool   `json:"complete_section"`
}

// BleveIndex implements Index using Bleve.
type BleveIndex struct {
	index bleve.Index
}

// NewBleveIndex creates or opens a Bleve chunk index at path. An existing
// index is reused so incremental reindexing keeps working across restarts;
// remove the directory to force a rebuild after a mapping change.
func NewBleveIndex(path string) (*BleveIndex, error) {
	if _, err := os.Stat(path); err == nil {
		index, openErr := bleve.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("open index: %w", openErr)
		}
		return &BleveIndex{index: index}, nil
	}

	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	// Standard analyzer (lowercase + tokenize, no stemming) keeps exact
	// Indonesian and English terms matchable.
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("content", textFieldMapping)
	docMapping.AddFieldMappingsAt("section_header", textFieldMapping)

	// Keyword fields support exact filtering for deletion bookkeeping.
	keywordFieldMapping := bleve.NewKeywordFieldMapping()
	docMapping.AddFieldMappingsAt("source", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("type", keywordFieldMapping)

	im.AddDocumentMapping("chunk", docMapping)
	im.DefaultType = "chunk"
	im.DefaultMapping = docMapping

	index, err := bleve.New(path, im)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &BleveIndex{index: index}, nil
}

func (b *BleveIndex) Upsert(ctx context.Context, chunk models.Chunk) error {
	doc := indexedChunk{
		Content:    chunk.Content,
		Type:       string(chunk.Type),
		TokenCount: chunk.TokenCount,
	}
	if v, ok := chunk.Metadata[models.MetaSource].(string); ok {
		doc.Source = v
	}
	if v, ok := chunk.Metadata[models.MetaSectionHeader].(string); ok {
		doc.SectionHeader = v
	}
	if v, ok := chunk.Metadata[models.MetaChunkIndex].(int); ok {
		doc.ChunkIndex = v
	}
	if v, ok := chunk.Metadata[models.MetaIsCompleteSection].(bool); ok {
		doc.CompleteSection = v
	}
	if err := b.index.Index(chunk.ID, doc); err != nil {
		return fmt.Errorf("index chunk %s: %w", chunk.ID, err)
	}
	return nil
}

func (b *BleveIndex) Query(ctx context.Context, text string, topK int) ([]models.RetrievedChunk, error) {
	q := bleve.NewMatchQuery(text)
	req := bleve.NewSearchRequest(q)
	req.Size = topK
	req.Fields = []string{"*"}
	results, err := b.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	out := make([]models.RetrievedChunk, 0, len(results.Hits))
	for _, hit := range results.Hits {
		out = append(out, models.RetrievedChunk{
			Chunk: chunkFromHit(hit),
			Score: hit.Score,
		})
	}
	return out, nil
}

// chunkFromHit rebuilds a chunk from the stored fields of a search hit.
func chunkFromHit(hit *search.DocumentMatch) models.Chunk {
	chunk := models.Chunk{
		ID:       hit.ID,
		Metadata: make(map[string]interface{}),
	}
	if v, ok := hit.Fields["content"].(string); ok {
		chunk.Content = v
	}
	if v, ok := hit.Fields["type"].(string); ok {
		chunk.Type = models.ContentType(v)
		chunk.Metadata[models.MetaContentType] = v
	}
	if v, ok := hit.Fields["source"].(string); ok {
		chunk.Metadata[models.MetaSource] = v
	}
	if v, ok := hit.Fields["section_header"].(string); ok {
		chunk.Metadata[models.MetaSectionHeader] = v
	}
	// Bleve stores numerics as float64.
	if v, ok := hit.Fields["chunk_index"].(float64); ok {
		chunk.Metadata[models.MetaChunkIndex] = int(v)
	}
	if v, ok := hit.Fields["token_count"].(float64); ok {
		chunk.TokenCount = int(v)
	}
	if v, ok := hit.Fields["complete_section"].(bool); ok {
		chunk.Metadata[models.MetaIsCompleteSection] = v
	}
	return chunk
}

func (b *BleveIndex) DeleteByIDs(ctx context.Context, ids []string) error {
	batch := b.index.NewBatch()
	for _, id := range ids {
		batch.Delete(id)
	}
	if err := b.index.Batch(batch); err != nil {
		return fmt.Errorf("delete chunks: %w", err)
	}
	return nil
}

// findBySourceLimit bounds candidate collection per document. A single
// document never produces anywhere near this many chunks.
const findBySourceLimit = 10000

func (b *BleveIndex) FindBySource(ctx context.Context, key string) ([]string, error) {
	q := bleve.NewTermQuery(key)
	q.SetField("source")
	req := bleve.NewSearchRequest(q)
	req.Size = findBySourceLimit
	results, err := b.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("find chunks for %s: %w", key, err)
	}
	ids := make([]string, 0, len(results.Hits))
	for _, hit := range results.Hits {
		ids = append(ids, hit.ID)
	}
	if len(ids) > 0 {
		return ids, nil
	}
	return b.findByContent(ctx, key)
}

// findByContent is the fallback for documents indexed before the source
// field existed: search content for the display name and keep hits whose
// chunk ID decodes back to the key.
func (b *BleveIndex) findByContent(ctx context.Context, key string) ([]string, error) {
	q := bleve.NewMatchQuery(docstore.DisplayName(key))
	q.SetField("content")
	req := bleve.NewSearchRequest(q)
	req.Size = findBySourceLimit
	results, err := b.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("content fallback for %s: %w", key, err)
	}
	var ids []string
	for _, hit := range results.Hits {
		parsed, _, err := chunker.ParseChunkID(hit.ID)
		if err == nil && parsed == key {
			ids = append(ids, hit.ID)
		}
	}
	return ids, nil
}

func (b *BleveIndex) Count() (uint64, error) {
	return b.index.DocCount()
}

func (b *BleveIndex) Close() error {
	return b.index.Close()
}
