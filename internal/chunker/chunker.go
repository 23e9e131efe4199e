// Package chunker slices sections and tables into bounded-size chunks for
// cost-efficient retrieval, deduplicating identical content within a run.
package chunker

import (
	"fmt"
	"strings"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/token"
)

// Reference chunk sizing. Larger chunks reduce index entry count, which
// dominates storage and query cost.
const (
	DefaultTargetTokens        = 3500
	DefaultTableSplitThreshold = 3500
	DefaultTableChunkTarget    = 3000
)

const tableMarker = "=== TABLE ==="

// Builder builds chunks from sections and tables. Deterministic for a fixed
// token budget and counter.
type Builder struct {
	counter             token.Counter
	targetTokens        int
	tableSplitThreshold int
	tableChunkTarget    int
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithTargetTokens overrides the per-chunk token budget.
func WithTargetTokens(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.targetTokens = n
		}
	}
}

// WithTableSplit overrides the table split threshold and per-chunk target.
func WithTableSplit(threshold, target int) BuilderOption {
	return func(b *Builder) {
		if threshold > 0 {
			b.tableSplitThreshold = threshold
		}
		if target > 0 {
			b.tableChunkTarget = target
		}
	}
}

// NewBuilder creates a chunk builder with reference defaults.
func NewBuilder(counter token.Counter, opts ...BuilderOption) *Builder {
	b := &Builder{
		counter:             counter,
		targetTokens:        DefaultTargetTokens,
		tableSplitThreshold: DefaultTableSplitThreshold,
		tableChunkTarget:    DefaultTableChunkTarget,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildChunks converts sections and tables into chunks. Content hashes are
// computed here; run-level deduplication is the Deduper's job so identical
// chunks across documents in one run are also caught.
func (b *Builder) BuildChunks(sections []models.Section, tables []models.Table) []models.Chunk {
	var chunks []models.Chunk
	for _, section := range sections {
		chunks = append(chunks, b.sectionChunks(section)...)
	}
	for _, table := range tables {
		if table.TokenCount > b.tableSplitThreshold {
			chunks = append(chunks, b.splitTable(table)...)
		} else {
			chunks = append(chunks, models.Chunk{
				Content: fmt.Sprintf("%s\n%s", tableMarker, table.Content),
				Type:    models.ContentTypeTable,
				Metadata: map[string]interface{}{
					models.MetaTableID:      table.TableID,
					models.MetaTableHeaders: table.Headers,
				},
				TokenCount: table.TokenCount,
			})
		}
	}
	for i := range chunks {
		chunks[i].ContentHash = HashContent(chunks[i].Content)
	}
	return chunks
}

// sectionHeaderMarker renders the header line prepended to section chunks.
func sectionHeaderMarker(header string) string {
	return fmt.Sprintf("=== %s ===\n", header)
}

// sectionChunks emits one chunk for a section within budget, else greedily
// packs elements first-fit into successive chunks. An element larger than
// the budget on its own is emitted oversized rather than split mid-element:
// atomic semantic units are never torn.
func (b *Builder) sectionChunks(section models.Section) []models.Chunk {
	marker := sectionHeaderMarker(section.Header)

	if section.TotalTokens <= b.targetTokens {
		return []models.Chunk{{
			Content: marker + joinElements(section.Elements),
			Type:    section.Type,
			Metadata: map[string]interface{}{
				models.MetaSectionHeader:     section.Header,
				models.MetaSectionID:         section.SectionID,
				models.MetaIsCompleteSection: true,
			},
			TokenCount: section.TotalTokens,
		}}
	}

	var chunks []models.Chunk
	markerTokens := b.counter.Count(marker)
	var current []models.StructuralElement
	currentTokens := markerTokens

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, models.Chunk{
			Content: marker + joinElements(current),
			Type:    section.Type,
			Metadata: map[string]interface{}{
				models.MetaSectionHeader:    section.Header,
				models.MetaSectionID:        section.SectionID,
				models.MetaIsPartialSection: true,
				models.MetaChunkPart:        len(chunks) + 1,
			},
			TokenCount: currentTokens,
		})
	}

	for _, el := range section.Elements {
		if currentTokens+el.TokenCount > b.targetTokens {
			flush()
			current = []models.StructuralElement{el}
			currentTokens = markerTokens + el.TokenCount
		} else {
			current = append(current, el)
			currentTokens += el.TokenCount
		}
	}
	flush()
	return chunks
}

func joinElements(elements []models.StructuralElement) string {
	parts := make([]string, len(elements))
	for i, el := range elements {
		parts[i] = el.Content
	}
	return strings.Join(parts, "\n\n")
}

// splitTable splits a large table by row, repeating the header row as the
// first line of every chunk so each chunk is interpretable on its own.
func (b *Builder) splitTable(table models.Table) []models.Chunk {
	lines := strings.Split(table.Content, "\n")
	if len(lines) == 0 {
		return nil
	}
	header := lines[0]
	headerTokens := b.counter.Count(header)

	var chunks []models.Chunk
	currentLines := []string{header}
	currentTokens := headerTokens

	flush := func() {
		if len(currentLines) <= 1 {
			return
		}
		content := fmt.Sprintf("=== TABLE (Part %d) ===\n%s", len(chunks)+1, strings.Join(currentLines, "\n"))
		chunks = append(chunks, models.Chunk{
			Content: content,
			Type:    models.ContentTypeTable,
			Metadata: map[string]interface{}{
				models.MetaTableID:        table.TableID,
				models.MetaTableHeaders:   table.Headers,
				models.MetaIsPartialTable: true,
				models.MetaTablePart:      len(chunks) + 1,
			},
			TokenCount: currentTokens,
		})
	}

	for _, line := range lines[1:] {
		lineTokens := b.counter.Count(line)
		if currentTokens+lineTokens > b.tableChunkTarget {
			flush()
			currentLines = []string{header, line}
			currentTokens = headerTokens + lineTokens
		} else {
			currentLines = append(currentLines, line)
			currentTokens += lineTokens
		}
	}
	flush()
	return chunks
}
