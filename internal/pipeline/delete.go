package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/docstore"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/metrics"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// DeleteDocument removes a document from the index and the store, reporting
// partial success distinctly from total failure. Index chunks go first so a
// blob deletion failure leaves no orphaned index entries.
func (p *Pipeline) DeleteDocument(ctx context.Context, key string) *models.DeleteReport {
	report := &models.DeleteReport{Key: key}

	ids, err := p.index.FindBySource(ctx, key)
	if err != nil {
		p.logger.Warn("chunk lookup failed",
			zap.String("key", key),
			zap.Error(err))
	}
	report.ChunksFound = len(ids)

	for _, id := range ids {
		if err := p.index.DeleteByIDs(ctx, []string{id}); err != nil {
			report.DeletionErrors = append(report.DeletionErrors, id)
			p.logger.Warn("chunk deletion failed",
				zap.String("chunk_id", id),
				zap.Error(err))
			continue
		}
		report.ChunksDeleted++
	}

	err = p.store.Delete(ctx, key)
	switch {
	case err == nil:
		report.BlobDeleted = true
	case errors.Is(err, docstore.ErrNotFound):
		p.logger.Warn("blob missing on delete", zap.String("key", key))
	default:
		p.logger.Warn("blob deletion failed",
			zap.String("key", key),
			zap.Error(err))
	}

	if p.catalog != nil {
		if err := p.catalog.Delete(ctx, key); err != nil {
			p.logger.Warn("catalog cleanup failed",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	switch {
	case report.BlobDeleted && (report.ChunksDeleted == report.ChunksFound || report.ChunksFound == 0):
		report.Success = true
		if report.ChunksFound == 0 {
			report.Message = "Blob file deleted, but no indexed content found (file may not have been indexed yet)."
		} else {
			report.Message = fmt.Sprintf("Document successfully deleted. Removed %d indexed chunks and 1 blob file.", report.ChunksDeleted)
		}
		metrics.DocumentsDeletedTotal.WithLabelValues("success").Inc()
	case report.BlobDeleted && report.ChunksDeleted > 0:
		report.Success = true
		report.Message = fmt.Sprintf("Document partially deleted. Removed %d/%d indexed chunks and 1 blob file.", report.ChunksDeleted, report.ChunksFound)
		metrics.DocumentsDeletedTotal.WithLabelValues("partial").Inc()
	default:
		report.Success = false
		report.Message = "Failed to delete document from blob storage."
		metrics.DocumentsDeletedTotal.WithLabelValues("error").Inc()
	}

	p.logger.Info("document deletion finished",
		zap.String("key", key),
		zap.Bool("success", report.Success),
		zap.Int("chunks_deleted", report.ChunksDeleted))
	return report
}

// DeleteDocuments deletes several documents and aggregates the outcomes.
func (p *Pipeline) DeleteDocuments(ctx context.Context, keys []string) *models.BatchDeleteReport {
	batch := &models.BatchDeleteReport{TotalRequested: len(keys)}
	for _, key := range keys {
		report := p.DeleteDocument(ctx, key)
		batch.Details = append(batch.Details, report)
		if report.Success {
			batch.Deleted++
		} else {
			batch.Failed++
		}
	}
	return batch
}
