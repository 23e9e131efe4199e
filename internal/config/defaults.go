package config

import (
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/chunker"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/retrieval"
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Language == "" {
		cfg.Language = "id"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Docstore.Backend == "" {
		cfg.Docstore.Backend = "fs"
	}
	if cfg.Docstore.Path == "" {
		cfg.Docstore.Path = "/usr/local/var/assistant/documents"
	}
	if cfg.Storage.CatalogPath == "" {
		cfg.Storage.CatalogPath = "/usr/local/var/assistant/data/catalog.db"
	}
	if cfg.Storage.BleveIndexPath == "" {
		cfg.Storage.BleveIndexPath = "/usr/local/var/assistant/data/indices/chunks.bleve"
	}
	if cfg.Layout.Provider == "" {
		cfg.Layout.Provider = "local"
	}
	if cfg.Layout.Model == "" {
		cfg.Layout.Model = "prebuilt-layout"
	}
	if cfg.Layout.PageRange == "" {
		cfg.Layout.PageRange = "1-15"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o-mini"
	}
	if cfg.Chunking.TargetTokens == 0 {
		cfg.Chunking.TargetTokens = chunker.DefaultTargetTokens
	}
	if cfg.Chunking.TableSplitThreshold == 0 {
		cfg.Chunking.TableSplitThreshold = chunker.DefaultTableSplitThreshold
	}
	if cfg.Chunking.TableChunkTarget == 0 {
		cfg.Chunking.TableChunkTarget = chunker.DefaultTableChunkTarget
	}
	if cfg.Chunking.Encoding == "" {
		cfg.Chunking.Encoding = "cl100k_base"
	}
	if cfg.Retrieval.MaxDocs == 0 {
		cfg.Retrieval.MaxDocs = retrieval.DefaultMaxDocs
	}
	if cfg.Retrieval.Weights == (retrieval.Weights{}) {
		cfg.Retrieval.Weights = retrieval.DefaultWeights()
	}
	if cfg.Indexing.DocumentDelayMS == 0 {
		cfg.Indexing.DocumentDelayMS = 100
	}
	if cfg.Watch.DebounceMS == 0 {
		cfg.Watch.DebounceMS = 2000
	}
}
