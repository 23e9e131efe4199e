package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/catalog"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/chunker"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/docstore"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/layout"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/structure"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/token"
)

// fakeStore is an in-memory document store.
type fakeStore struct {
	docs      map[string][]byte
	listErr   error
	getErrs   map[string]error
	deleteErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]byte), getErrs: make(map[string]error)}
}

func (f *fakeStore) List(ctx context.Context, prefix string) ([]models.DocumentInfo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.DocumentInfo
	for key, content := range f.docs {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			continue
		}
		out = append(out, models.DocumentInfo{
			Key:          key,
			DisplayName:  docstore.DisplayName(key),
			Size:         int64(len(content)),
			LastModified: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := f.getErrs[key]; err != nil {
		return nil, err
	}
	content, ok := f.docs[key]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return content, nil
}

func (f *fakeStore) Put(ctx context.Context, key string, content []byte, contentType string) error {
	f.docs[key] = content
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.docs[key]; !ok {
		return docstore.ErrNotFound
	}
	delete(f.docs, key)
	return nil
}

// fakeSearchIndex records upserts and deletions in memory.
type fakeSearchIndex struct {
	mu         sync.Mutex
	chunks     map[string]models.Chunk
	upsertErr  error
	findErr    error
	deleteErr  error
	upsertByID map[string]int
}

func newFakeSearchIndex() *fakeSearchIndex {
	return &fakeSearchIndex{chunks: make(map[string]models.Chunk), upsertByID: make(map[string]int)}
}

func (f *fakeSearchIndex) Upsert(ctx context.Context, chunk models.Chunk) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.chunks[chunk.ID] = chunk
	f.upsertByID[chunk.ID]++
	return nil
}

func (f *fakeSearchIndex) Query(ctx context.Context, text string, topK int) ([]models.RetrievedChunk, error) {
	return nil, nil
}

func (f *fakeSearchIndex) DeleteByIDs(ctx context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for _, id := range ids {
		delete(f.chunks, id)
	}
	return nil
}

func (f *fakeSearchIndex) FindBySource(ctx context.Context, key string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	var ids []string
	for id, chunk := range f.chunks {
		if chunk.Source() == key {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeSearchIndex) Count() (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.chunks)), nil
}

func (f *fakeSearchIndex) Close() error { return nil }

// textAnalyzer turns each line of the input into a paragraph, treating
// lines prefixed with "# " as headings.
type textAnalyzer struct {
	err error
}

func (a *textAnalyzer) Analyze(ctx context.Context, content []byte, ext string) (*layout.Result, error) {
	if a.err != nil {
		return nil, a.err
	}
	result := &layout.Result{}
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p := layout.Paragraph{Content: line}
		if strings.HasPrefix(line, "# ") {
			p.Content = strings.TrimPrefix(line, "# ")
			p.Role = "heading"
		}
		result.Paragraphs = append(result.Paragraphs, p)
	}
	return result, nil
}

func newTestPipeline(store *fakeStore, index *fakeSearchIndex, opts ...Option) *Pipeline {
	counter := token.NewEstimator()
	extractor := structure.NewExtractor(&textAnalyzer{}, counter)
	builder := chunker.NewBuilder(counter)
	opts = append([]Option{WithDocumentDelay(0)}, opts...)
	return New(store, extractor, builder, index, opts...)
}

const sampleDoc = `# Kebijakan Cuti
Setiap karyawan berhak atas cuti tahunan sebanyak dua belas hari kerja.
Pengajuan cuti dilakukan melalui sistem internal paling lambat tiga hari sebelumnya.`

func TestReindexIndexesDocuments(t *testing.T) {
	store := newFakeStore()
	store.docs["hr/cuti.txt"] = []byte(sampleDoc)
	index := newFakeSearchIndex()
	p := newTestPipeline(store, index)

	report, err := p.Reindex(context.Background(), "", false)
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if report.Indexed != 1 {
		t.Errorf("Indexed = %d, want 1", report.Indexed)
	}
	if report.TotalChunks == 0 {
		t.Error("TotalChunks should be > 0")
	}
	if len(report.Errors) != 0 {
		t.Errorf("Errors = %v", report.Errors)
	}
	if report.AvgChunksPerDoc != float64(report.TotalChunks) {
		t.Errorf("AvgChunksPerDoc = %f with one document", report.AvgChunksPerDoc)
	}

	count, _ := index.Count()
	if int(count) != report.TotalChunks {
		t.Errorf("index holds %d chunks, report says %d", count, report.TotalChunks)
	}
	for id, chunk := range index.chunks {
		if chunk.Source() != "hr/cuti.txt" {
			t.Errorf("chunk %s source = %q", id, chunk.Source())
		}
		if _, ok := chunk.Metadata[models.MetaTotalChunks]; !ok {
			t.Errorf("chunk %s missing total_chunks metadata", id)
		}
		key, _, err := chunker.ParseChunkID(id)
		if err != nil || key != "hr/cuti.txt" {
			t.Errorf("chunk id %q does not decode to the document key", id)
		}
	}
}

func TestReindexIdempotent(t *testing.T) {
	store := newFakeStore()
	store.docs["doc.txt"] = []byte(sampleDoc)
	index := newFakeSearchIndex()
	p := newTestPipeline(store, index)
	ctx := context.Background()

	if _, err := p.Reindex(ctx, "", false); err != nil {
		t.Fatalf("first Reindex: %v", err)
	}
	first, _ := index.Count()
	if _, err := p.Reindex(ctx, "", false); err != nil {
		t.Fatalf("second Reindex: %v", err)
	}
	second, _ := index.Count()
	if first != second {
		t.Errorf("index grew from %d to %d on reindex of unchanged document", first, second)
	}
	for id, n := range index.upsertByID {
		if n != 2 {
			t.Errorf("chunk %s upserted %d times, want 2 (replace-by-id)", id, n)
		}
	}
}

func TestReindexBadDocumentDoesNotHaltRun(t *testing.T) {
	store := newFakeStore()
	store.docs["bad.txt"] = []byte(sampleDoc)
	store.docs["good.txt"] = []byte(sampleDoc)
	store.getErrs["bad.txt"] = errors.New("read timeout")
	index := newFakeSearchIndex()
	p := newTestPipeline(store, index)

	report, err := p.Reindex(context.Background(), "", false)
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if report.Indexed != 1 {
		t.Errorf("Indexed = %d, want 1", report.Indexed)
	}
	if len(report.Errors) != 1 || !strings.HasPrefix(report.Errors[0], "bad.txt: ") {
		t.Errorf("Errors = %v", report.Errors)
	}
}

func TestReindexEmptyDocumentSkipped(t *testing.T) {
	store := newFakeStore()
	store.docs["empty.txt"] = []byte("   \n  \n")
	index := newFakeSearchIndex()
	p := newTestPipeline(store, index)

	report, err := p.Reindex(context.Background(), "", false)
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if report.Skipped != 1 || report.Indexed != 0 {
		t.Errorf("report = %+v, want 1 skipped", report)
	}
}

func TestReindexChunkUpsertFailureTolerated(t *testing.T) {
	store := newFakeStore()
	store.docs["doc.txt"] = []byte(sampleDoc)
	index := newFakeSearchIndex()
	index.upsertErr = errors.New("index unavailable")
	p := newTestPipeline(store, index)

	report, err := p.Reindex(context.Background(), "", false)
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	// Every upsert failed, so the document counts as producing nothing.
	if len(report.Errors) != 0 {
		t.Errorf("chunk-level failures should not appear as document errors: %v", report.Errors)
	}
	if report.TotalChunks != 0 {
		t.Errorf("TotalChunks = %d, want 0", report.TotalChunks)
	}
}

func TestReindexPrefixFilter(t *testing.T) {
	store := newFakeStore()
	store.docs["hr/a.txt"] = []byte(sampleDoc)
	store.docs["finance/b.txt"] = []byte(sampleDoc)
	index := newFakeSearchIndex()
	p := newTestPipeline(store, index)

	report, err := p.Reindex(context.Background(), "hr/", false)
	if err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	if report.Indexed != 1 {
		t.Errorf("Indexed = %d, want 1", report.Indexed)
	}
	for _, chunk := range index.chunks {
		if chunk.Source() != "hr/a.txt" {
			t.Errorf("unexpected chunk from %q", chunk.Source())
		}
	}
}

func TestDeleteDocumentFullSuccess(t *testing.T) {
	store := newFakeStore()
	store.docs["doc.txt"] = []byte(sampleDoc)
	index := newFakeSearchIndex()
	p := newTestPipeline(store, index)
	ctx := context.Background()

	if _, err := p.Reindex(ctx, "", false); err != nil {
		t.Fatalf("Reindex: %v", err)
	}
	chunksBefore, _ := index.Count()
	if chunksBefore == 0 {
		t.Fatal("setup produced no chunks")
	}

	report := p.DeleteDocument(ctx, "doc.txt")
	if !report.Success {
		t.Errorf("report = %+v", report)
	}
	if !report.BlobDeleted {
		t.Error("blob should be deleted")
	}
	if report.ChunksDeleted != int(chunksBefore) {
		t.Errorf("ChunksDeleted = %d, want %d", report.ChunksDeleted, chunksBefore)
	}
	if after, _ := index.Count(); after != 0 {
		t.Errorf("index still holds %d chunks", after)
	}
	if _, ok := store.docs["doc.txt"]; ok {
		t.Error("blob still present")
	}
}

func TestDeleteDocumentNoIndexedContent(t *testing.T) {
	store := newFakeStore()
	store.docs["unindexed.txt"] = []byte("raw")
	index := newFakeSearchIndex()
	p := newTestPipeline(store, index)

	report := p.DeleteDocument(context.Background(), "unindexed.txt")
	if !report.Success {
		t.Errorf("report = %+v", report)
	}
	if report.ChunksFound != 0 {
		t.Errorf("ChunksFound = %d", report.ChunksFound)
	}
	if !strings.Contains(report.Message, "no indexed content found") {
		t.Errorf("Message = %q", report.Message)
	}
}

func TestDeleteDocumentBlobFailure(t *testing.T) {
	store := newFakeStore()
	index := newFakeSearchIndex()
	store.deleteErr = errors.New("storage offline")
	store.docs["doc.txt"] = []byte("raw")
	p := newTestPipeline(store, index)

	report := p.DeleteDocument(context.Background(), "doc.txt")
	if report.Success {
		t.Errorf("deletion should fail when the blob survives: %+v", report)
	}
	if !strings.Contains(report.Message, "Failed to delete document") {
		t.Errorf("Message = %q", report.Message)
	}
}

func TestReindexIncrementalSkipAndForce(t *testing.T) {
	store := newFakeStore()
	store.docs["doc.txt"] = []byte(sampleDoc)
	index := newFakeSearchIndex()
	cat, err := catalog.Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	defer cat.Close()
	p := newTestPipeline(store, index, WithCatalog(cat))
	ctx := context.Background()

	report, err := p.Reindex(ctx, "", false)
	if err != nil {
		t.Fatalf("first Reindex: %v", err)
	}
	if report.Indexed != 1 {
		t.Fatalf("first run Indexed = %d", report.Indexed)
	}

	report, err = p.Reindex(ctx, "", false)
	if err != nil {
		t.Fatalf("second Reindex: %v", err)
	}
	if report.Skipped != 1 || report.Indexed != 0 {
		t.Errorf("unchanged document should be skipped, got %+v", report)
	}

	report, err = p.Reindex(ctx, "", true)
	if err != nil {
		t.Fatalf("forced Reindex: %v", err)
	}
	if report.Indexed != 1 {
		t.Errorf("force should reprocess, got %+v", report)
	}
}

func TestDeleteDocuments(t *testing.T) {
	store := newFakeStore()
	store.docs["a.txt"] = []byte("raw")
	index := newFakeSearchIndex()
	p := newTestPipeline(store, index)

	batch := p.DeleteDocuments(context.Background(), []string{"a.txt", "missing.txt"})
	if batch.TotalRequested != 2 || batch.Deleted != 1 || batch.Failed != 1 {
		t.Errorf("batch = %+v", batch)
	}
	if len(batch.Details) != 2 {
		t.Errorf("Details = %d entries", len(batch.Details))
	}
}
