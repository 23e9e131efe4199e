package retrieval

import (
	"sort"
	"strings"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// Weights tunes the rerank bonuses that make up a chunk's final score.
type Weights struct {
	WordMatch       float64 `yaml:"word_match"`
	CompleteSection float64 `yaml:"complete_section"`
	TOCIntent       float64 `yaml:"toc_intent"`
	TableIntent     float64 `yaml:"table_intent"`
	LongContent     float64 `yaml:"long_content"`
}

// DefaultWeights returns the reference rerank weights.
func DefaultWeights() Weights {
	return Weights{
		WordMatch:       10,
		CompleteSection: 50,
		TOCIntent:       100,
		TableIntent:     30,
		LongContent:     20,
	}
}

// longContentThreshold is the content length in bytes above which a chunk
// earns the long-content bonus.
const longContentThreshold = 500

var (
	tocIntentTerms   = []string{"daftar", "isi", "contents"}
	tableIntentTerms = []string{"tabel", "table", "data"}
)

func containsAny(haystack string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(haystack, t) {
			return true
		}
	}
	return false
}

// Rerank rescores retrieved chunks against the query and sorts best first.
// The heuristic bonuses replace the index score entirely; the raw index
// ordering survives only as the tie-break, since the sort is stable.
func Rerank(chunks []models.RetrievedChunk, query string, w Weights) []models.RetrievedChunk {
	queryLower := strings.ToLower(query)
	queryWords := uniqueWords(queryLower)
	wantsTOC := containsAny(queryLower, tocIntentTerms)
	wantsTable := containsAny(queryLower, tableIntentTerms)

	out := make([]models.RetrievedChunk, len(chunks))
	copy(out, chunks)
	for i := range out {
		out[i].Score = bonus(out[i].Chunk, queryWords, wantsTOC, wantsTable, w)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// uniqueWords splits the query into words, keeping each word once in first
// appearance order so repeated words do not multiply the match bonus.
func uniqueWords(query string) []string {
	fields := strings.Fields(query)
	seen := make(map[string]struct{}, len(fields))
	words := fields[:0]
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		words = append(words, f)
	}
	return words
}

func bonus(chunk models.Chunk, queryWords []string, wantsTOC, wantsTable bool, w Weights) float64 {
	contentLower := strings.ToLower(chunk.Content)

	var score float64
	for _, word := range queryWords {
		score += float64(strings.Count(contentLower, word)) * w.WordMatch
	}
	if chunk.IsCompleteSection() {
		score += w.CompleteSection
	}
	if wantsTOC && chunk.Type == models.ContentTypeTableOfContents {
		score += w.TOCIntent
	}
	if wantsTable && strings.Contains(string(chunk.Type), "table") {
		score += w.TableIntent
	}
	if len(chunk.Content) > longContentThreshold {
		score += w.LongContent
	}
	return score
}
