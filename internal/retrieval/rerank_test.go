package retrieval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

func retrieved(id, content string, ctype models.ContentType, complete bool, score float64) models.RetrievedChunk {
	return models.RetrievedChunk{
		Chunk: models.Chunk{
			ID:      id,
			Content: content,
			Type:    ctype,
			Metadata: map[string]interface{}{
				models.MetaIsCompleteSection: complete,
			},
		},
		Score: score,
	}
}

func TestRerankWordMatchBonus(t *testing.T) {
	chunks := []models.RetrievedChunk{
		retrieved("a", "nothing relevant here", models.ContentTypeContent, false, 1.0),
		retrieved("b", "cuti tahunan dan cuti sakit", models.ContentTypeContent, false, 1.0),
	}
	ranked := Rerank(chunks, "cuti", DefaultWeights())
	if ranked[0].Chunk.ID != "b" {
		t.Errorf("chunk with query word occurrences should rank first, got %q", ranked[0].Chunk.ID)
	}
	// Two occurrences of "cuti" at weight 10; the index score does not
	// contribute.
	if want := 20.0; ranked[0].Score != want {
		t.Errorf("score = %f, want %f", ranked[0].Score, want)
	}
}

func TestRerankIgnoresIndexScore(t *testing.T) {
	// A huge raw index score must not outrank a heuristic bonus; the raw
	// ordering only breaks ties.
	plain := retrieved("plain", "x", models.ContentTypeContent, false, 25.0)
	long := retrieved("long", strings.Repeat("kata ", 150), models.ContentTypeContent, false, 0.1)
	ranked := Rerank([]models.RetrievedChunk{plain, long}, "zzz", DefaultWeights())
	if ranked[0].Chunk.ID != "long" {
		t.Errorf("long-content bonus should outrank raw index score, got %q", ranked[0].Chunk.ID)
	}
	if ranked[0].Score != 20.0 {
		t.Errorf("score = %f, want 20", ranked[0].Score)
	}
	if ranked[1].Score != 0.0 {
		t.Errorf("bonus-free chunk score = %f, want 0", ranked[1].Score)
	}
}

func TestRerankCountsQueryWordsOnce(t *testing.T) {
	chunks := []models.RetrievedChunk{
		retrieved("a", "cuti tahunan dan cuti sakit", models.ContentTypeContent, false, 0),
	}
	ranked := Rerank(chunks, "cuti cuti cuti", DefaultWeights())
	// Still two content occurrences at weight 10; the repeated query word
	// counts once.
	if want := 20.0; ranked[0].Score != want {
		t.Errorf("score = %f, want %f", ranked[0].Score, want)
	}
}

func TestRerankCompleteSectionBonus(t *testing.T) {
	chunks := []models.RetrievedChunk{
		retrieved("partial", "policy detail", models.ContentTypeContent, false, 2.0),
		retrieved("complete", "policy detail", models.ContentTypeContent, true, 1.0),
	}
	ranked := Rerank(chunks, "unrelated", DefaultWeights())
	if ranked[0].Chunk.ID != "complete" {
		t.Errorf("complete section should outrank higher raw score, got %q", ranked[0].Chunk.ID)
	}
}

func TestRerankTOCIntent(t *testing.T) {
	toc := retrieved("toc", "1. Pendahuluan  2. Kebijakan", models.ContentTypeTableOfContents, false, 1.0)
	body := retrieved("body", "isi kebijakan perusahaan tentang pendahuluan", models.ContentTypeContent, true, 5.0)

	tests := []struct {
		name      string
		query     string
		wantFirst string
	}{
		{name: "toc query indonesian", query: "daftar isi dokumen", wantFirst: "toc"},
		{name: "toc query english", query: "show the contents", wantFirst: "toc"},
		{name: "plain query", query: "kebijakan perusahaan", wantFirst: "body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := Rerank([]models.RetrievedChunk{body, toc}, tt.query, DefaultWeights())
			if ranked[0].Chunk.ID != tt.wantFirst {
				t.Errorf("first = %q, want %q", ranked[0].Chunk.ID, tt.wantFirst)
			}
		})
	}
}

func TestRerankTableIntent(t *testing.T) {
	table := retrieved("table", "Gaji | Tunjangan", models.ContentTypeTable, false, 1.0)
	text := retrieved("text", "penjelasan umum", models.ContentTypeContent, false, 1.0)
	ranked := Rerank([]models.RetrievedChunk{text, table}, "tabel gaji", DefaultWeights())
	if ranked[0].Chunk.ID != "table" {
		t.Errorf("table chunk should rank first for a table query, got %q", ranked[0].Chunk.ID)
	}
}

func TestRerankTableIntentMatchesTableTypes(t *testing.T) {
	// Any content type containing "table" earns the bonus, including the
	// table of contents.
	tests := []struct {
		name  string
		ctype models.ContentType
		want  float64
	}{
		{name: "table", ctype: models.ContentTypeTable, want: 30},
		{name: "table content", ctype: models.ContentTypeTableContent, want: 30},
		{name: "table of contents", ctype: models.ContentTypeTableOfContents, want: 30},
		{name: "plain content", ctype: models.ContentTypeContent, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := []models.RetrievedChunk{retrieved("c", "x", tt.ctype, false, 0)}
			ranked := Rerank(chunks, "show data", DefaultWeights())
			if ranked[0].Score != tt.want {
				t.Errorf("score = %f, want %f", ranked[0].Score, tt.want)
			}
		})
	}
}

func TestRerankLongContentBonus(t *testing.T) {
	long := retrieved("long", strings.Repeat("kata ", 150), models.ContentTypeContent, false, 1.0)
	short := retrieved("short", "kata", models.ContentTypeContent, false, 1.0)
	ranked := Rerank([]models.RetrievedChunk{short, long}, "zzz", DefaultWeights())
	if ranked[0].Chunk.ID != "long" {
		t.Errorf("long chunk should rank first, got %q", ranked[0].Chunk.ID)
	}
}

func TestRerankStableOnTies(t *testing.T) {
	a := retrieved("a", "same", models.ContentTypeContent, false, 1.0)
	b := retrieved("b", "same", models.ContentTypeContent, false, 1.0)
	ranked := Rerank([]models.RetrievedChunk{a, b}, "zzz", DefaultWeights())
	if ranked[0].Chunk.ID != "a" || ranked[1].Chunk.ID != "b" {
		t.Errorf("tie should keep index order, got %q then %q", ranked[0].Chunk.ID, ranked[1].Chunk.ID)
	}
}

func TestOverfetch(t *testing.T) {
	tests := []struct {
		maxDocs int
		want    int
	}{
		{maxDocs: 3, want: 5},
		{maxDocs: 5, want: 7},
		{maxDocs: 13, want: 15},
		{maxDocs: 20, want: 15},
	}
	for _, tt := range tests {
		if got := overfetch(tt.maxDocs); got != tt.want {
			t.Errorf("overfetch(%d) = %d, want %d", tt.maxDocs, got, tt.want)
		}
	}
}

// fakeIndex returns canned results or a canned error.
type fakeIndex struct {
	results []models.RetrievedChunk
	err     error
	gotTopK int
}

func (f *fakeIndex) Upsert(ctx context.Context, chunk models.Chunk) error { return nil }
func (f *fakeIndex) Query(ctx context.Context, text string, topK int) ([]models.RetrievedChunk, error) {
	f.gotTopK = topK
	return f.results, f.err
}
func (f *fakeIndex) DeleteByIDs(ctx context.Context, ids []string) error { return nil }
func (f *fakeIndex) FindBySource(ctx context.Context, key string) ([]string, error) {
	return nil, nil
}
func (f *fakeIndex) Count() (uint64, error) { return 0, nil }
func (f *fakeIndex) Close() error           { return nil }

func TestEngineTruncatesToMaxDocs(t *testing.T) {
	var results []models.RetrievedChunk
	for i := 0; i < 7; i++ {
		results = append(results, retrieved(string(rune('a'+i)), "text", models.ContentTypeContent, false, float64(7-i)))
	}
	idx := &fakeIndex{results: results}
	engine := NewEngine(idx, WithMaxDocs(5))

	got := engine.Retrieve(context.Background(), "query")
	if len(got) != 5 {
		t.Fatalf("got %d chunks, want 5", len(got))
	}
	if idx.gotTopK != 7 {
		t.Errorf("index queried with topK = %d, want 7", idx.gotTopK)
	}
}

func TestEngineIndexFailureReturnsEmpty(t *testing.T) {
	idx := &fakeIndex{err: errors.New("index corrupted")}
	engine := NewEngine(idx)
	if got := engine.Retrieve(context.Background(), "query"); len(got) != 0 {
		t.Errorf("expected empty result on index failure, got %d", len(got))
	}
}
