// Package main is the assistant CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/answer"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/catalog"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/chunker"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/config"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/docstore"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/extract"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/layout"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/llm"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/metrics"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/pipeline"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/retrieval"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/searchindex"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/server"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/structure"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/token"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/watcher"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/assistant/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used, so that "assistant server" from the project dir uses the
// project's config. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "ask":
		runAsk()
	case "reindex":
		runReindex()
	case "upload":
		runUpload()
	case "delete":
		runDelete()
	case "list":
		runList()
	case "status":
		runStatus()
	case "version", "--version", "-v":
		fmt.Printf("assistant version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (document extraction, chunking, retrieval)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	metrics.Register()

	components, err := initializeComponents(context.Background(), cfg, logger, debugMode)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	oracle, err := llm.NewClient(cfg.LLM, llm.WithLogger(logger))
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	synth := answer.NewSynthesizer(components.Retriever, oracle,
		answer.WithLogger(logger),
		answer.WithLanguage(cfg.Language),
	)

	var watchSvc *watcher.Watcher
	if cfg.Watch.Enabled && cfg.Docstore.Backend == "fs" {
		pipe := components.Pipeline
		watchOpts := []watcher.Option{
			watcher.WithDebounce(time.Duration(cfg.Watch.DebounceMS) * time.Millisecond),
		}
		if debugMode {
			watchOpts = append(watchOpts, watcher.WithLogger(logger))
		}
		watchSvc = watcher.New(
			cfg.Docstore.Path,
			extract.SupportedExtensions(),
			func(key string) {
				// Incremental run: the catalog skips everything except the
				// changed document.
				if _, err := pipe.Reindex(context.Background(), cfg.Indexing.Prefix, false); err != nil {
					logger.Warn("watch reindex failed", zap.String("key", key), zap.Error(err))
				}
			},
			func(key string) {
				report := pipe.DeleteDocument(context.Background(), key)
				if !report.Success {
					logger.Warn("watch delete failed", zap.String("key", key), zap.String("message", report.Message))
				}
			},
			watchOpts...,
		)
		watchCtx, watchCancel := context.WithCancel(context.Background())
		defer watchCancel()
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer watchSvc.Stop()
	}

	srv := server.NewServer(synth, components.Pipeline, components.Store, components.Catalog, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// buildQuery joins all positional args with spaces so multi-word questions
// work the same with or without shell quoting.
func buildQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func runAsk() {
	fs := flag.NewFlagSet("ask", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = answer directly without a running server)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: assistant ask [flags] <question>")
		os.Exit(1)
	}
	question := buildQuery(fs.Args())
	if question == "" {
		fmt.Println("Usage: assistant ask [flags] <question>")
		os.Exit(1)
	}

	if *serverURL != "" {
		body, _ := json.Marshal(map[string]string{"question": question})
		resp, err := http.Post(*serverURL+"/api/v1/ask", "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			fmt.Fprintf(os.Stderr, "Ask failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		var out struct {
			Answer string `json:"answer"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(out.Answer)
		return
	}

	// Direct mode (no running server). Opens the index read-write, so it
	// conflicts with a running server over the same Bleve path.
	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(context.Background(), cfg, logger, cfg.Debug)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer components.Close()

	oracle, err := llm.NewClient(cfg.LLM, llm.WithLogger(logger))
	if err != nil {
		logger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	synth := answer.NewSynthesizer(components.Retriever, oracle,
		answer.WithLogger(logger),
		answer.WithLanguage(cfg.Language),
	)
	result, err := synth.Answer(context.Background(), question)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Answer failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result)
}

func runReindex() {
	fs := flag.NewFlagSet("reindex", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = reindex directly without a running server)")
	prefix := fs.String("prefix", "", "only reindex documents under this key prefix")
	force := fs.Bool("force", false, "reprocess documents even when unchanged")
	_ = fs.Parse(os.Args[2:])

	var report *models.IndexReport
	if *serverURL != "" {
		body, _ := json.Marshal(map[string]interface{}{"prefix": *prefix, "force": *force})
		resp, err := http.Post(*serverURL+"/api/v1/reindex", "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			fmt.Fprintf(os.Stderr, "Reindex failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		report = &models.IndexReport{}
		if err := json.NewDecoder(resp.Body).Decode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		components, err := initializeComponents(context.Background(), cfg, logger, cfg.Debug)
		if err != nil {
			logger.Fatal("Failed to initialize", zap.Error(err))
		}
		defer components.Close()

		runPrefix := *prefix
		if runPrefix == "" {
			runPrefix = cfg.Indexing.Prefix
		}
		report, err = components.Pipeline.Reindex(context.Background(), runPrefix, *force)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Reindex failed: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Indexed %d document(s), skipped %d, %d chunk(s) total\n",
		report.Indexed, report.Skipped, report.TotalChunks)
	for _, e := range report.Errors {
		fmt.Printf("  error: %s\n", e)
	}
	if len(report.Errors) > 0 {
		os.Exit(1)
	}
}

func runUpload() {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	prefix := fs.String("prefix", "", "store the document under this key prefix")
	key := fs.String("key", "", "store the document under this exact key (overrides the filename)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: assistant upload [flags] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build request: %v\n", err)
		os.Exit(1)
	}
	if _, err := io.Copy(fw, f); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file: %v\n", err)
		os.Exit(1)
	}
	if *key != "" {
		_ = mw.WriteField("key", *key)
	}
	if *prefix != "" {
		_ = mw.WriteField("prefix", *prefix)
	}
	mw.Close()

	resp, err := http.Post(*serverURL+"/api/v1/documents", mw.FormDataContentType(), &buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "Upload failed (%d): %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	var out struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Uploaded: %s\n", out.Key)
	fmt.Println("Run \"assistant reindex\" to make it searchable.")
}

func runDelete() {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = delete directly without a running server)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: assistant delete [flags] <document-key>")
		os.Exit(1)
	}
	key := fs.Arg(0)

	var report models.DeleteReport
	if *serverURL != "" {
		// Key segments may contain characters that need escaping; the path
		// itself keeps its slashes.
		escaped := url.PathEscape(key)
		escaped = strings.ReplaceAll(escaped, "%2F", "/")
		req, _ := http.NewRequest(http.MethodDelete, *serverURL+"/api/v1/documents/"+escaped, nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
			fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()

		components, err := initializeComponents(context.Background(), cfg, logger, cfg.Debug)
		if err != nil {
			logger.Fatal("Failed to initialize", zap.Error(err))
		}
		defer components.Close()
		report = *components.Pipeline.DeleteDocument(context.Background(), key)
	}

	fmt.Println(report.Message)
	if !report.Success {
		os.Exit(1)
	}
}

func runList() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	prefix := fs.String("prefix", "", "only list documents under this key prefix")
	_ = fs.Parse(os.Args[2:])

	u := *serverURL + "/api/v1/documents"
	if *prefix != "" {
		u += "?prefix=" + url.QueryEscape(*prefix)
	}
	resp, err := http.Get(u)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		fmt.Fprintf(os.Stderr, "List failed (%d): %s\n", resp.StatusCode, string(b))
		os.Exit(1)
	}
	var out struct {
		Documents []models.DocumentInfo `json:"documents"`
		Count     int                   `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
		os.Exit(1)
	}
	for _, d := range out.Documents {
		fmt.Printf("%-60s %10d  %s\n", d.Key, d.Size, d.LastModified.Format("2006-01-02 15:04"))
	}
	fmt.Printf("%d document(s)\n", out.Count)
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "http://localhost:8080", "server URL (empty = read storage directly)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	status := map[string]interface{}{}
	if *serverURL != "" {
		resp, err := http.Get(*serverURL + "/status")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			fmt.Fprintf(os.Stderr, "Status failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
			fmt.Fprintf(os.Stderr, "Parse failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cat, err := catalog.Open(cfg.Storage.CatalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open catalog: %v\n", err)
			os.Exit(1)
		}
		defer cat.Close()
		stats, err := cat.Stats(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read catalog: %v\n", err)
			os.Exit(1)
		}
		status["documents"] = stats.Documents
		status["chunks"] = stats.TotalChunks
		if !stats.LastIndexed.IsZero() {
			status["last_indexed"] = stats.LastIndexed
		}
		status["supported_extensions"] = extract.SupportedExtensions()
	}

	switch *outputFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(status); err != nil {
			fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
			os.Exit(1)
		}
	case "text":
		for _, k := range []string{"documents", "chunks", "last_indexed"} {
			if v, ok := status[k]; ok {
				fmt.Printf("%-14s %v\n", k+":", v)
			}
		}
		if v, ok := status["supported_extensions"]; ok {
			fmt.Printf("%-14s %v\n", "extensions:", v)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q; use text or json\n", *outputFormat)
		os.Exit(1)
	}
}

// Components holds initialized services.
type Components struct {
	Store     docstore.Store
	Catalog   *catalog.Catalog
	Index     searchindex.Index
	Retriever *retrieval.Engine
	Pipeline  *pipeline.Pipeline
}

func (c *Components) Close() {
	if c.Index != nil {
		_ = c.Index.Close()
	}
	if c.Catalog != nil {
		_ = c.Catalog.Close()
	}
}

func initializeComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger, debug bool) (*Components, error) {
	var store docstore.Store
	switch cfg.Docstore.Backend {
	case "s3":
		s3Store, err := docstore.NewS3Store(ctx, cfg.Docstore.S3, docstore.WithS3Logger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize s3 docstore: %w", err)
		}
		store = s3Store
	default:
		fsStore, err := docstore.NewFSStore(cfg.Docstore.Path, docstore.WithFSLogger(logger))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize fs docstore: %w", err)
		}
		store = fsStore
	}

	var counter token.Counter
	tk, err := token.NewTiktokenCounter(cfg.Chunking.Encoding)
	if err != nil {
		logger.Warn("tiktoken encoding unavailable, using estimator",
			zap.String("encoding", cfg.Chunking.Encoding), zap.Error(err))
		counter = token.NewEstimator()
	} else {
		counter = tk
	}

	var analyzer layout.Analyzer
	if cfg.Layout.Provider == "rest" {
		analyzer = layout.NewRESTAnalyzer(&layout.RESTConfig{
			Endpoint:  cfg.Layout.Endpoint,
			APIKey:    cfg.Layout.APIKey,
			Model:     cfg.Layout.Model,
			PageRange: cfg.Layout.PageRange,
			Logger:    logger,
		})
	} else {
		analyzer = layout.NewLocalAnalyzer()
	}

	extractorOpts := []structure.ExtractorOption{}
	if debug {
		extractorOpts = append(extractorOpts, structure.WithLogger(logger))
	}
	extractor := structure.NewExtractor(analyzer, counter, extractorOpts...)

	builder := chunker.NewBuilder(counter,
		chunker.WithTargetTokens(cfg.Chunking.TargetTokens),
		chunker.WithTableSplit(cfg.Chunking.TableSplitThreshold, cfg.Chunking.TableChunkTarget),
	)

	index, err := searchindex.NewBleveIndex(cfg.Storage.BleveIndexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize search index: %w", err)
	}

	cat, err := catalog.Open(cfg.Storage.CatalogPath)
	if err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	retriever := retrieval.NewEngine(index,
		retrieval.WithLogger(logger),
		retrieval.WithWeights(cfg.Retrieval.Weights),
		retrieval.WithMaxDocs(cfg.Retrieval.MaxDocs),
	)

	pipe := pipeline.New(store, extractor, builder, index,
		pipeline.WithLogger(logger),
		pipeline.WithCatalog(cat),
		pipeline.WithDocumentDelay(time.Duration(cfg.Indexing.DocumentDelayMS)*time.Millisecond),
	)

	return &Components{
		Store:     store,
		Catalog:   cat,
		Index:     index,
		Retriever: retriever,
		Pipeline:  pipe,
	}, nil
}

func printUsage() {
	fmt.Println(`assistant - Internal document assistant (RAG over company documents)

Usage:
  assistant server [flags]            Start the HTTP server
  assistant ask [flags] <question>    Ask a question against the document base
  assistant reindex [flags]           Extract, chunk and index documents
  assistant upload [flags] <file>     Upload a document to the store
  assistant delete [flags] <key>      Delete a document and its indexed chunks
  assistant list [flags]              List stored documents
  assistant status [flags]            Show catalog and index status
  assistant version                   Show version
  assistant help                      Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/assistant/config.yaml)
  --debug            Enable debug logging (document extraction, chunking, retrieval)

Ask / Reindex / Delete Flags:
  --config string    Config file path (used in direct mode)
  --server string    Server URL (default: http://localhost:8080). Use empty (--server "")
                     to work on storage directly when the server is not running.

Reindex Flags:
  --prefix string    Only reindex documents under this key prefix
  --force            Reprocess documents even when unchanged

Upload Flags:
  --server string    Server URL (default: http://localhost:8080)
  --prefix string    Store the document under this key prefix
  --key string       Store the document under this exact key

Examples:
  assistant server
  assistant ask "berapa hari cuti tahunan?"
  assistant reindex --prefix hr/ --force
  assistant upload --prefix hr/ handbook.pdf
  assistant delete hr/handbook.pdf
  assistant list --prefix hr/
  assistant status --output json`)
}
