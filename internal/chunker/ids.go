package chunker

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// ChunkID derives the persisted chunk id from the source document key and
// the chunk's index within that document. The id is URL-safe and reversible
// so deletion bookkeeping can recover the source key, and stable across
// reindexing so the index replaces rather than duplicates.
func ChunkID(documentKey string, index int) string {
	return base64.URLEncoding.EncodeToString([]byte(documentKey)) + "_" + strconv.Itoa(index)
}

// ParseChunkID recovers the source document key and chunk index from an id.
func ParseChunkID(id string) (documentKey string, index int, err error) {
	// The index segment is digits only, so the last underscore is always
	// the separator even when the base64url key segment contains "_".
	sep := strings.LastIndex(id, "_")
	if sep < 0 {
		return "", 0, fmt.Errorf("malformed chunk id %q", id)
	}
	keyBytes, err := base64.URLEncoding.DecodeString(id[:sep])
	if err != nil {
		return "", 0, fmt.Errorf("decode chunk id %q: %w", id, err)
	}
	index, err = strconv.Atoi(id[sep+1:])
	if err != nil {
		return "", 0, fmt.Errorf("chunk index in id %q: %w", id, err)
	}
	return string(keyBytes), index, nil
}
