package docstore

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
)

// FSStore serves documents from a directory tree on the local filesystem.
type FSStore struct {
	root   string
	logger *zap.Logger
}

// FSOption configures an FSStore.
type FSOption func(*FSStore)

// WithFSLogger sets the logger used by the store.
func WithFSLogger(logger *zap.Logger) FSOption {
	return func(s *FSStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFSStore creates a filesystem-backed store rooted at dir, creating the
// directory if needed.
func NewFSStore(dir string, opts ...FSOption) (*FSStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve store root %q: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create store root %q: %w", abs, err)
	}
	s := &FSStore{root: abs, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// resolve maps a store key onto a path under the root, rejecting keys that
// escape it.
func (s *FSStore) resolve(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty document key")
	}
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if !strings.HasPrefix(path, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("document key %q escapes store root", key)
	}
	return path, nil
}

func (s *FSStore) List(ctx context.Context, prefix string) ([]models.DocumentInfo, error) {
	prefix = normalizePrefix(prefix)
	var docs []models.DocumentInfo
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		docs = append(docs, models.DocumentInfo{
			Key:          key,
			DisplayName:  DisplayName(key),
			Size:         info.Size(),
			ContentType:  ContentTypeFor(key),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list documents under %q: %w", prefix, err)
	}
	return docs, nil
}

func (s *FSStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return content, nil
}

func (s *FSStore) Put(ctx context.Context, key string, content []byte, contentType string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	s.logger.Debug("stored document",
		zap.String("key", key),
		zap.Int("size", len(content)))
	return nil
}

func (s *FSStore) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	s.logger.Debug("deleted document", zap.String("key", key))
	return nil
}
