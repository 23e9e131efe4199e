package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// wordCounter counts whitespace-separated words, giving tests exact control
// over token totals.
type wordCounter struct{}

func (wordCounter) Count(text string) int { return len(strings.Fields(text)) }

func element(words int, seed string) models.StructuralElement {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s%d", seed, i)
	}
	return models.StructuralElement{
		Content:    strings.Join(parts, " "),
		Type:       models.ContentTypeContent,
		TokenCount: words,
	}
}

func section(header string, id int, elements ...models.StructuralElement) models.Section {
	s := models.Section{Header: header, Type: models.ContentTypeContent, SectionID: id}
	for _, el := range elements {
		s.Elements = append(s.Elements, el)
		s.TotalTokens += el.TokenCount
	}
	return s
}

func TestBuildChunks_CompleteSection(t *testing.T) {
	b := NewBuilder(wordCounter{}, WithTargetTokens(100))
	sec := section("1. Overview", 0, element(10, "a"), element(20, "b"))
	chunks := b.BuildChunks([]models.Section{sec}, nil)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	c := chunks[0]
	if !c.IsCompleteSection() {
		t.Error("chunk should be marked complete section")
	}
	if !strings.HasPrefix(c.Content, "=== 1. Overview ===\n") {
		t.Errorf("chunk content should start with header marker, got %q", c.Content[:30])
	}
	if c.ContentHash == "" {
		t.Error("content hash should be set")
	}
}

func TestBuildChunks_SplitsLargeSection(t *testing.T) {
	b := NewBuilder(wordCounter{}, WithTargetTokens(50))
	elements := make([]models.StructuralElement, 0, 10)
	for i := 0; i < 10; i++ {
		elements = append(elements, element(20, fmt.Sprintf("w%d_", i)))
	}
	sec := section("2. Details", 0, elements...)
	chunks := b.BuildChunks([]models.Section{sec}, nil)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if v, _ := c.Metadata[models.MetaIsPartialSection].(bool); !v {
			t.Errorf("chunk %d should be partial", i)
		}
		if part, _ := c.Metadata[models.MetaChunkPart].(int); part != i+1 {
			t.Errorf("chunk %d part = %v, want %d", i, c.Metadata[models.MetaChunkPart], i+1)
		}
		if c.TokenCount > 50 {
			t.Errorf("chunk %d exceeds budget: %d tokens", i, c.TokenCount)
		}
	}
}

// Concatenating split-section chunks (minus header markers) must reproduce
// the original elements in order.
func TestBuildChunks_SplitPreservesOrder(t *testing.T) {
	b := NewBuilder(wordCounter{}, WithTargetTokens(50))
	var elements []models.StructuralElement
	var want []string
	for i := 0; i < 10; i++ {
		el := element(20, fmt.Sprintf("p%d_", i))
		elements = append(elements, el)
		want = append(want, el.Content)
	}
	sec := section("2. Details", 0, elements...)
	chunks := b.BuildChunks([]models.Section{sec}, nil)

	var got []string
	for _, c := range chunks {
		body := strings.TrimPrefix(c.Content, "=== 2. Details ===\n")
		for _, part := range strings.Split(body, "\n\n") {
			if part != "" {
				got = append(got, part)
			}
		}
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("reassembled elements differ:\ngot  %v\nwant %v", got, want)
	}
}

// An element alone above the budget is emitted oversized, never split
// mid-element.
func TestBuildChunks_OversizedElementNotSplit(t *testing.T) {
	b := NewBuilder(wordCounter{}, WithTargetTokens(10))
	big := element(40, "big")
	sec := section("3. Huge", 0, big)
	chunks := b.BuildChunks([]models.Section{sec}, nil)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 oversized chunk, got %d", len(chunks))
	}
	if !strings.Contains(chunks[0].Content, big.Content) {
		t.Error("oversized element content should be intact")
	}
}

func TestBuildChunks_SmallTable(t *testing.T) {
	b := NewBuilder(wordCounter{})
	tbl := models.Table{
		Content:    "Item | Qty\nWidget | 3",
		Headers:    []string{"Item", "Qty"},
		TableID:    0,
		TokenCount: 6,
	}
	chunks := b.BuildChunks(nil, []models.Table{tbl})

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if !strings.HasPrefix(chunks[0].Content, "=== TABLE ===\n") {
		t.Errorf("table chunk should carry table marker, got %q", chunks[0].Content)
	}
	if chunks[0].Type != models.ContentTypeTable {
		t.Errorf("table chunk type = %q", chunks[0].Type)
	}
}

// Every chunk of a split table must repeat the header row as its first
// content line.
func TestBuildChunks_SplitTableKeepsHeader(t *testing.T) {
	b := NewBuilder(wordCounter{}, WithTableSplit(20, 15))
	var lines []string
	lines = append(lines, "Item | Qty")
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("Widget%d | %d", i, i))
	}
	tbl := models.Table{
		Content:    strings.Join(lines, "\n"),
		Headers:    []string{"Item", "Qty"},
		TokenCount: 100,
	}
	chunks := b.BuildChunks(nil, []models.Table{tbl})

	if len(chunks) < 2 {
		t.Fatalf("expected split table, got %d chunks", len(chunks))
	}
	for i, c := range chunks {
		contentLines := strings.Split(c.Content, "\n")
		if len(contentLines) < 2 {
			t.Fatalf("chunk %d too short", i)
		}
		if contentLines[0] != fmt.Sprintf("=== TABLE (Part %d) ===", i+1) {
			t.Errorf("chunk %d marker = %q", i, contentLines[0])
		}
		if contentLines[1] != "Item | Qty" {
			t.Errorf("chunk %d first content line = %q, want header row", i, contentLines[1])
		}
	}
}

func TestDeduper_DropsIdenticalContent(t *testing.T) {
	b := NewBuilder(wordCounter{}, WithTargetTokens(100))
	sec1 := section("Document Content", 0, element(10, "same"))
	sec2 := section("Document Content", 1, element(10, "same"))
	sec2.SectionID = 0 // same header marker and body -> identical content
	chunks := b.BuildChunks([]models.Section{sec1, sec2}, nil)

	d := NewDeduper()
	unique := d.Filter(chunks)
	if len(unique) != 1 {
		t.Fatalf("expected 1 unique chunk, got %d", len(unique))
	}
}

func TestDeduper_SpansDocuments(t *testing.T) {
	d := NewDeduper()
	a := []models.Chunk{{Content: "identical", ContentHash: HashContent("identical")}}
	b := []models.Chunk{{Content: "identical", ContentHash: HashContent("identical")}}
	if got := d.Filter(a); len(got) != 1 {
		t.Fatalf("first document: got %d", len(got))
	}
	if got := d.Filter(b); len(got) != 0 {
		t.Fatalf("second document should dedupe against the run, got %d", len(got))
	}
}

// The §8-style scenario: a small section stays whole, a large one splits
// with incrementing parts.
func TestBuildChunks_MixedSections(t *testing.T) {
	b := NewBuilder(wordCounter{}, WithTargetTokens(3500))
	overview := section("1. Overview", 0, element(80, "ov"))
	var detailElements []models.StructuralElement
	for i := 0; i < 10; i++ {
		detailElements = append(detailElements, element(500, fmt.Sprintf("d%d_", i)))
	}
	details := section("2. Details", 1, detailElements...)
	chunks := b.BuildChunks([]models.Section{overview, details}, nil)

	if !chunks[0].IsCompleteSection() {
		t.Error("overview should be one complete-section chunk")
	}
	detailChunks := chunks[1:]
	if len(detailChunks) < 2 {
		t.Fatalf("details should split into >= 2 chunks, got %d", len(detailChunks))
	}
	for i, c := range detailChunks {
		if part, _ := c.Metadata[models.MetaChunkPart].(int); part != i+1 {
			t.Errorf("detail chunk %d part = %v", i, c.Metadata[models.MetaChunkPart])
		}
		if c.TokenCount > 3500 {
			t.Errorf("detail chunk %d over budget: %d", i, c.TokenCount)
		}
	}
}
