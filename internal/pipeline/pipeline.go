// Package pipeline orchestrates the ingestion path from the document store
// through extraction and chunking into the search index, plus the matching
// deletion workflow. Documents are processed sequentially; a bad document
// is recorded and skipped, never allowed to halt a run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/catalog"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/chunker"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/docstore"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/metrics"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/searchindex"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/structure"
)

// DefaultDocumentDelay is the pause between documents during a reindex
// run. It is a rate-limit courtesy to the index, not a correctness
// requirement.
const DefaultDocumentDelay = 100 * time.Millisecond

// Pipeline wires the ingestion collaborators together.
type Pipeline struct {
	store     docstore.Store
	extractor *structure.Extractor
	builder   *chunker.Builder
	index     searchindex.Index
	catalog   *catalog.Catalog
	delay     time.Duration
	logger    *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithCatalog enables incremental reindexing backed by a document catalog.
// Without one, every run reprocesses every document.
func WithCatalog(c *catalog.Catalog) Option {
	return func(p *Pipeline) { p.catalog = c }
}

// WithDocumentDelay overrides the pause between documents.
func WithDocumentDelay(d time.Duration) Option {
	return func(p *Pipeline) {
		if d >= 0 {
			p.delay = d
		}
	}
}

// New creates an ingestion pipeline.
func New(store docstore.Store, extractor *structure.Extractor, builder *chunker.Builder, index searchindex.Index, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:     store,
		extractor: extractor,
		builder:   builder,
		index:     index,
		delay:     DefaultDocumentDelay,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reindex processes every document under prefix and returns a run summary.
// With force false, documents whose size and modification time match the
// catalog record are skipped. Partial failures land in the report's error
// list; only a store listing failure aborts the run.
func (p *Pipeline) Reindex(ctx context.Context, prefix string, force bool) (*models.IndexReport, error) {
	docs, err := p.store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	runID := uuid.NewString()
	logger := p.logger.With(zap.String("run_id", runID))
	logger.Info("reindex started",
		zap.String("prefix", prefix),
		zap.Int("documents", len(docs)),
		zap.Bool("force", force))

	report := &models.IndexReport{}
	deduper := chunker.NewDeduper()

	for i, doc := range docs {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		if i > 0 && p.delay > 0 {
			time.Sleep(p.delay)
		}

		if !force && p.upToDate(ctx, doc) {
			report.Skipped++
			metrics.DocumentsIndexedTotal.WithLabelValues("skipped").Inc()
			logger.Debug("document unchanged", zap.String("key", doc.Key))
			continue
		}

		count, err := p.indexDocument(ctx, doc, deduper)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", doc.Key, err))
			metrics.DocumentsIndexedTotal.WithLabelValues("error").Inc()
			logger.Warn("document failed",
				zap.String("key", doc.Key),
				zap.Error(err))
			continue
		}
		if count == 0 {
			report.Skipped++
			metrics.DocumentsIndexedTotal.WithLabelValues("skipped").Inc()
			continue
		}
		report.Indexed++
		report.TotalChunks += count
		metrics.DocumentsIndexedTotal.WithLabelValues("indexed").Inc()
	}

	if report.Indexed > 0 {
		report.AvgChunksPerDoc = float64(report.TotalChunks) / float64(report.Indexed)
	}
	logger.Info("reindex finished",
		zap.Int("indexed", report.Indexed),
		zap.Int("skipped", report.Skipped),
		zap.Int("errors", len(report.Errors)),
		zap.Int("total_chunks", report.TotalChunks))
	return report, nil
}

func (p *Pipeline) upToDate(ctx context.Context, doc models.DocumentInfo) bool {
	if p.catalog == nil {
		return false
	}
	ok, err := p.catalog.UpToDate(ctx, doc.Key, doc.Size, doc.LastModified)
	if err != nil {
		p.logger.Warn("catalog lookup failed",
			zap.String("key", doc.Key),
			zap.Error(err))
		return false
	}
	return ok
}

// indexDocument runs one document through extraction, chunking and upsert.
// Returns the number of chunks indexed; zero means the document produced
// no indexable content.
func (p *Pipeline) indexDocument(ctx context.Context, doc models.DocumentInfo, deduper *chunker.Deduper) (int, error) {
	start := time.Now()

	content, err := p.store.Get(ctx, doc.Key)
	if err != nil {
		return 0, fmt.Errorf("download: %w", err)
	}

	ds := p.extractor.Extract(ctx, content, doc.Key)
	if len(ds.Sections) == 0 && len(ds.Tables) == 0 {
		p.logger.Debug("no extractable content", zap.String("key", doc.Key))
		return 0, nil
	}

	chunks := deduper.Filter(p.builder.BuildChunks(ds.Sections, ds.Tables))
	if len(chunks) == 0 {
		p.logger.Debug("no chunks after dedup", zap.String("key", doc.Key))
		return 0, nil
	}
	finalizeChunks(chunks, doc.Key)

	indexed := 0
	for _, chunk := range chunks {
		if err := p.index.Upsert(ctx, chunk); err != nil {
			// A single chunk failure leaves the document partially
			// indexed; the run carries on.
			p.logger.Warn("chunk upsert failed",
				zap.String("key", doc.Key),
				zap.String("chunk_id", chunk.ID),
				zap.Error(err))
			continue
		}
		indexed++
		metrics.ChunksIndexedTotal.Inc()
	}

	if p.catalog != nil && indexed > 0 {
		if err := p.catalog.Put(ctx, catalog.Record{
			Key:          doc.Key,
			Size:         doc.Size,
			LastModified: doc.LastModified,
			ChunkCount:   indexed,
		}); err != nil {
			p.logger.Warn("catalog update failed",
				zap.String("key", doc.Key),
				zap.Error(err))
		}
	}

	metrics.IndexingDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("document indexed",
		zap.String("key", doc.Key),
		zap.Int("chunks", indexed),
		zap.Duration("elapsed", time.Since(start)))
	return indexed, nil
}

// finalizeChunks assigns IDs and merges the document-level metadata every
// chunk carries.
func finalizeChunks(chunks []models.Chunk, key string) {
	total := len(chunks)
	for i := range chunks {
		chunks[i].ID = chunker.ChunkID(key, i)
		if chunks[i].Metadata == nil {
			chunks[i].Metadata = make(map[string]interface{})
		}
		chunks[i].Metadata[models.MetaSource] = key
		chunks[i].Metadata[models.MetaChunkIndex] = i
		chunks[i].Metadata[models.MetaContentType] = string(chunks[i].Type)
		chunks[i].Metadata[models.MetaTokenCount] = chunks[i].TokenCount
		chunks[i].Metadata[models.MetaTotalChunks] = total
	}
}
