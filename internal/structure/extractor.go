package structure

import (
	"context"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/layout"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/models"
	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/internal/token"
)

// minContentLength filters out fragments too short to be content
// (page numbers, stray glyphs).
const minContentLength = 10

// Extractor converts raw document bytes into classified elements, sections,
// and tables using a layout Analyzer as its only I/O dependency.
type Extractor struct {
	analyzer  layout.Analyzer
	counter   token.Counter
	minLength int
	logger    *zap.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithLogger sets a logger for debug output.
func WithLogger(l *zap.Logger) ExtractorOption {
	return func(e *Extractor) { e.logger = l }
}

// WithMinContentLength overrides the minimum cleaned-paragraph length.
func WithMinContentLength(n int) ExtractorOption {
	return func(e *Extractor) { e.minLength = n }
}

// NewExtractor creates an extractor with the given layout analyzer and
// token counter.
func NewExtractor(analyzer layout.Analyzer, counter token.Counter, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		analyzer:  analyzer,
		counter:   counter,
		minLength: minContentLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract analyzes the document bytes and builds the structural
// representation. A failed or empty analysis yields an empty structure,
// never an error: callers treat "nothing extracted" as a skip, not a
// fatal indexing failure. key is used only to derive the file extension
// and for logging.
func (e *Extractor) Extract(ctx context.Context, content []byte, key string) *models.DocumentStructure {
	ext := strings.ToLower(filepath.Ext(key))
	res, err := e.analyzer.Analyze(ctx, content, ext)
	if err != nil {
		if e.logger != nil {
			e.logger.Warn("layout analysis failed", zap.String("key", key), zap.Error(err))
		}
		return &models.DocumentStructure{}
	}
	if res == nil {
		return &models.DocumentStructure{}
	}

	doc := &models.DocumentStructure{}
	acc := sectionAccumulator{}
	position := 0
	for _, para := range res.Paragraphs {
		text := CleanText(para.Content)
		if text == "" || len(text) < e.minLength {
			continue
		}
		el := models.StructuralElement{
			Content:    text,
			Type:       Classify(text, para.Role),
			Role:       para.Role,
			Position:   position,
			TokenCount: e.counter.Count(text),
		}
		position++
		acc.add(el)
		doc.Elements = append(doc.Elements, el)
	}
	doc.Sections = acc.finish()

	for i, t := range res.Tables {
		table := e.reconstructTable(t.Cells, i)
		if table.Content == "" {
			continue
		}
		doc.Tables = append(doc.Tables, table)
	}
	return doc
}
