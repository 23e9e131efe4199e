// Package config provides configuration loading and structs for the
// assistant server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/docstore"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/llm"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/retrieval"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Language  string          `yaml:"language"`
	Server    ServerConfig    `yaml:"server"`
	Docstore  DocstoreConfig  `yaml:"docstore"`
	Storage   StorageConfig   `yaml:"storage"`
	Layout    LayoutConfig    `yaml:"layout"`
	LLM       llm.Config      `yaml:"llm"`
	Chunking  ChunkingConfig  `yaml:"chunking"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Indexing  IndexingConfig  `yaml:"indexing"`
	Watch     WatchConfig     `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DocstoreConfig selects and configures the document store backend.
type DocstoreConfig struct {
	Backend string            `yaml:"backend"` // "fs" or "s3"
	Path    string            `yaml:"path"`    // fs root directory
	S3      docstore.S3Config `yaml:"s3"`
}

// StorageConfig holds paths for the catalog database and the search index.
type StorageConfig struct {
	CatalogPath    string `yaml:"catalog_path"`
	BleveIndexPath string `yaml:"bleve_index_path"`
}

// LayoutConfig selects the layout analysis provider. The "rest" provider
// calls a Document Intelligence compatible service; "local" extracts
// structure from the file formats directly.
type LayoutConfig struct {
	Provider  string `yaml:"provider"` // "local" or "rest"
	Endpoint  string `yaml:"endpoint"`
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	PageRange string `yaml:"page_range"`
}

// ChunkingConfig holds chunk sizing budgets and the token encoding.
type ChunkingConfig struct {
	TargetTokens        int    `yaml:"target_tokens"`
	TableSplitThreshold int    `yaml:"table_split_threshold"`
	TableChunkTarget    int    `yaml:"table_chunk_target"`
	Encoding            string `yaml:"encoding"`
}

// RetrievalConfig holds retrieval sizing and rerank weights.
type RetrievalConfig struct {
	MaxDocs int               `yaml:"max_docs"`
	Weights retrieval.Weights `yaml:"weights"`
}

// IndexingConfig holds reindex run settings.
type IndexingConfig struct {
	Prefix          string `yaml:"prefix"`
	DocumentDelayMS int    `yaml:"document_delay_ms"`
}

// WatchConfig holds auto-reindex settings for the filesystem backend.
type WatchConfig struct {
	Enabled    bool `yaml:"enabled"`
	DebounceMS int  `yaml:"debounce_ms"`
}

// Load reads and parses the config file at path, expands paths, and
// applies defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Docstore.Path = expandPath(cfg.Docstore.Path, configDir)
	cfg.Storage.CatalogPath = expandPath(cfg.Storage.CatalogPath, configDir)
	cfg.Storage.BleveIndexPath = expandPath(cfg.Storage.BleveIndexPath, configDir)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Docstore.Backend {
	case "fs", "s3":
	default:
		return fmt.Errorf("unknown docstore backend %q", cfg.Docstore.Backend)
	}
	if cfg.Docstore.Backend == "s3" && cfg.Docstore.S3.Bucket == "" {
		return fmt.Errorf("s3 docstore requires a bucket")
	}
	switch cfg.Layout.Provider {
	case "local", "rest":
	default:
		return fmt.Errorf("unknown layout provider %q", cfg.Layout.Provider)
	}
	if cfg.Layout.Provider == "rest" && cfg.Layout.Endpoint == "" {
		return fmt.Errorf("rest layout provider requires an endpoint")
	}
	switch cfg.Language {
	case "id", "en":
	default:
		return fmt.Errorf("unsupported language %q", cfg.Language)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
