// Package searchindex defines the chunk index surface used by the pipeline
// and retrieval engine.
package searchindex

import (
	"context"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// Index stores chunks and answers full-text queries over them. Chunk IDs
// are stable, so indexing the same ID again replaces the previous entry.
type Index interface {
	// Upsert adds a chunk or replaces the existing chunk with the same ID.
	Upsert(ctx context.Context, chunk models.Chunk) error
	// Query returns up to topK chunks matching the query text, best first.
	Query(ctx context.Context, text string, topK int) ([]models.RetrievedChunk, error)
	// DeleteByIDs removes the chunks with the given IDs. Missing IDs are
	// not an error.
	DeleteByIDs(ctx context.Context, ids []string) error
	// FindBySource returns the IDs of every chunk whose source document is
	// key, falling back to a content search when the source field yields
	// nothing.
	FindBySource(ctx context.Context, key string) ([]string, error)
	// Count returns the number of indexed chunks.
	Count() (uint64, error)
	// Close releases the index.
	Close() error
}
