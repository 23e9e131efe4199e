// Package docstore abstracts the blob store holding source documents. The
// filesystem backend serves local deployments, the S3 backend serves shared
// ones; the indexing pipeline only sees the Store interface.
package docstore

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// ErrNotFound is returned when the requested document key does not exist.
var ErrNotFound = errors.New("document not found")

// Store is the blob-store surface the pipeline depends on. Keys are
// slash-separated paths relative to the store root.
type Store interface {
	// List returns metadata for every document under prefix. A non-empty
	// prefix is treated as a folder whether or not it ends in a slash.
	List(ctx context.Context, prefix string) ([]models.DocumentInfo, error)
	// Get returns the full content of the document at key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores content under key, replacing any existing document.
	Put(ctx context.Context, key string, content []byte, contentType string) error
	// Delete removes the document at key. Deleting a missing key returns
	// ErrNotFound.
	Delete(ctx context.Context, key string) error
}

// contentTypes maps file extensions to the MIME type recorded on upload.
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xls":  "application/vnd.ms-excel",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".ppt":  "application/vnd.ms-powerpoint",
	".odp":  "application/vnd.oasis.opendocument.presentation",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".csv":  "text/csv",
	".json": "application/json",
	".html": "text/html",
}

// ContentTypeFor returns the MIME type for a document key based on its
// extension, defaulting to application/octet-stream.
func ContentTypeFor(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// normalizePrefix gives a folder prefix a single trailing slash so it never
// matches sibling keys that merely share a name prefix.
func normalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	return strings.TrimSuffix(prefix, "/") + "/"
}

// DisplayName returns the key's final path element, shown in listings and
// cited in answers.
func DisplayName(key string) string {
	if i := strings.LastIndex(key, "/"); i >= 0 {
		return key[i+1:]
	}
	return key
}
