package chunker

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// HashContent returns the hex MD5 of chunk content. Used only for duplicate
// detection, not for integrity.
func HashContent(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Deduper drops chunks whose content hash was already seen. One Deduper
// spans one indexing run; cross-run duplicate prevention relies on the
// index's replace-by-id semantics instead.
type Deduper struct {
	seen map[string]struct{}
}

// NewDeduper returns an empty run-scoped deduplicator.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// Filter returns the chunks whose hash has not been seen in this run,
// preserving order.
func (d *Deduper) Filter(chunks []models.Chunk) []models.Chunk {
	out := make([]models.Chunk, 0, len(chunks))
	for _, c := range chunks {
		hash := c.ContentHash
		if hash == "" {
			hash = HashContent(c.Content)
		}
		if _, ok := d.seen[hash]; ok {
			continue
		}
		d.seen[hash] = struct{}{}
		out = append(out, c)
	}
	return out
}
